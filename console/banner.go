package console

import (
	"strings"
	"time"
)

const bannerWidth = 60

// Header prints the banner opening a program run, and
// records the start time used by the footer.
func (p *Printer) Header(commandLine string) {
	p.started = p.now()

	p.Print("%s", strings.Repeat("=", bannerWidth))
	p.Print("START: %s", commandLine)
	p.Print("%s", strings.Repeat("=", bannerWidth))
}

// Footer prints the banner closing a program run, with
// the time elapsed since the header and the exit status.
func (p *Printer) Footer(status int) {
	var elapsed time.Duration
	if !p.started.IsZero() {
		elapsed = p.now().Sub(p.started).Round(time.Millisecond)
	}

	p.Print("%s", strings.Repeat("=", bannerWidth))
	p.Print("END: status %d, elapsed %s", status, elapsed)
	p.Print("%s", strings.Repeat("=", bannerWidth))
}
