package main

import (
	"github.com/bnema/tinybrowser/internal/cli/cmd"
	"github.com/bnema/tinybrowser/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.NewInfo(version, commit, buildDate))
	cmd.Execute()
}
