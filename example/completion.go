package main

import (
	"github.com/rsteube/carapace"
)

// carapaceFiles completes configuration files.
func carapaceFiles() carapace.Action {
	return carapace.ActionFiles(".conf", ".toml", ".yaml")
}
