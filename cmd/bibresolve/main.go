// Package main provides the entry point for the bibresolve CLI tool.
package main

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	Execute(version, commit, date)
}
