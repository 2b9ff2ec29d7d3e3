package main

import (
	"fmt"
	"os"

	"github.com/sleuth-query/sleuth/internal/cli"
	"github.com/sleuth-query/sleuth/internal/config"
)

// version, commit and date are injected at build time via
// -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
