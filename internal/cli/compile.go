package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewCompileCmd creates the compile command: the direct CLI analogue
// of the compiler's Compile entry point.
func NewCompileCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "compile <query-file|->",
		Short: "Compile a Sleuth query into its ABI type and Yul source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := getApp(cmd)
			if err != nil {
				return err
			}

			program, err := readProgramArg(args[0])
			if err != nil {
				return err
			}

			var stop func()
			if !application.Config.NonInteractive && !application.Config.JSON {
				stop = startSpinner("compiling...")
			}

			if explain {
				out, err := application.ExplainQuery.Dump(cmd.Context(), program)
				if stop != nil {
					stop()
				}
				if err != nil {
					red := color.New(color.FgRed)
					_, _ = red.Fprintf(os.Stderr, "error: %s\n", describeError(err))
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			result, err := application.CompileQuery.Run(cmd.Context(), program)
			if stop != nil {
				stop()
			}
			if err != nil {
				red := color.New(color.FgRed)
				_, _ = red.Fprintf(os.Stderr, "error: %s\n", describeError(err))
				return err
			}

			green := color.New(color.FgGreen)
			_, _ = green.Fprintln(cmd.OutOrStdout(), result.ABI)
			fmt.Fprintln(cmd.OutOrStdout(), result.Yul)

			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Dump the resolved Resolution list as YAML instead of compiling")

	return cmd
}

// readProgramArg reads the query source from a file path, or from
// stdin when arg is "-".
func readProgramArg(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return string(data), nil
}

// startSpinner shows a short status spinner around a unit of CLI work
// and returns a func that stops it.
func startSpinner(label string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + label
	s.Start()
	return s.Stop
}
