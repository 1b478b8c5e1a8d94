// Package values holds the value types exposed to flag libraries when
// parameters are rendered or bound outside the engine.
package values

// Value is the interface to a parameter value, compatible with pflag.Value.
type Value interface {
	String() string
	Set(string) error
	Type() string
}

// Text is a raw string value. Its type name is empty, so that
// help messages never show a type placeholder for parameters.
type Text string

// NewText returns a text value holding def.
func NewText(def string) *Text {
	text := Text(def)
	return &text
}

func (t *Text) String() string { return string(*t) }

// Set replaces the value.
func (t *Text) Set(s string) error {
	*t = Text(s)
	return nil
}

// Type returns an empty type name.
func (t *Text) Type() string { return "" }
