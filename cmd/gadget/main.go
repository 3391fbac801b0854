package main

import (
	"os"

	"github.com/go-gadget/gadget/cmd/gadget/cmd"
)

// Version information set at build time via ldflags.
var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
