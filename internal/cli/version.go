package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleuth-query/sleuth/internal/config"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sleuth",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sleuth %s\n", config.Version)
			if config.Commit != "unknown" {
				fmt.Printf("commit: %s\n", config.Commit)
			}
			if config.Date != "unknown" {
				fmt.Printf("built:  %s\n", config.Date)
			}
		},
	}
}
