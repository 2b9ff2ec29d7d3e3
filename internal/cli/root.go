package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleuth-query/sleuth/internal/app"
	"github.com/sleuth-query/sleuth/internal/config"
)

// contextKey is the type for context keys stored on a cobra command.
type contextKey string

const appKey contextKey = "app"

// NewRootCmd creates the root command for the sleuth CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sleuth",
		Short: "Compile Sleuth queries into ABI-described Yul contracts",
		Long: `Sleuth compiles a small SQL-like query language into an Ethereum
ABI tuple type and a Yul contract that materializes that query on-chain.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			application, err := app.InitApp(v, cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, application))
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddGroup(&cobra.Group{ID: "main", Title: "Main Commands"})

	compileCmd := NewCompileCmd()
	compileCmd.GroupID = "main"
	rootCmd.AddCommand(compileCmd)

	sourcesCmd := NewSourcesCmd()
	sourcesCmd.GroupID = "main"
	rootCmd.AddCommand(sourcesCmd)

	replCmd := NewReplCmd()
	replCmd.GroupID = "main"
	rootCmd.AddCommand(replCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the wired App instance from the command context.
func getApp(cmd *cobra.Command) (*app.App, error) {
	instance := cmd.Context().Value(appKey)
	if instance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := instance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
