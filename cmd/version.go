// Package cmd holds build metadata injected with -ldflags -X.
package cmd

// Set at link time, e.g.
// -X github.com/thoreinstein/testswitch/cmd.Version=v1.2.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
