package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sleuth-query/sleuth/internal/codegen/abi"
	"github.com/sleuth-query/sleuth/internal/codegen/yul"
	"github.com/sleuth-query/sleuth/internal/domain"
	"github.com/sleuth-query/sleuth/internal/parser"
	"github.com/sleuth-query/sleuth/internal/registry"
	"github.com/sleuth-query/sleuth/internal/resolver"
)

// NewReplCmd creates the repl command: an interactive loop that reads
// one statement-terminated program at a time, compiles it against a
// registry that persists across the session, and prints the result or
// error. A REGISTER entered on its own is remembered for every later
// SELECT in the same session, the same way the configured presets are.
func NewReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively compile Sleuth queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := getApp(cmd)
			if err != nil {
				return err
			}

			presets := append([]domain.RegisterQuery{}, application.Config.Presets...)
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), presets)
		},
	}
}

func runRepl(in io.Reader, out io.Writer, presets []domain.RegisterQuery) error {
	prompt := promptui.Prompt{Label: "sleuth"}
	prompt.Stdin = io.NopCloser(in)

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	for {
		line, err := prompt.Run()
		if err != nil {
			// io.EOF (Ctrl-D) or promptui.ErrInterrupt (Ctrl-C) both end
			// the session cleanly.
			return nil
		}
		if line == "" {
			continue
		}

		queries, err := parser.Parse(line)
		if err != nil {
			_, _ = red.Fprintf(out, "error: %s\n", describeError(err))
			continue
		}

		var selects []domain.Query
		registeredThisLine := false
		for _, q := range queries {
			if rq, ok := q.(domain.RegisterQuery); ok {
				presets = append(presets, rq)
				registeredThisLine = true
				continue
			}
			selects = append(selects, q)
		}

		if registeredThisLine {
			_, _ = green.Fprintln(out, "ok")
		}
		if len(selects) == 0 {
			continue
		}

		result, err := compileSelects(selects, presets)
		if err != nil {
			_, _ = red.Fprintf(out, "error: %s\n", describeError(err))
			continue
		}
		_, _ = green.Fprintln(out, result)
	}
}

// compileSelects resolves and generates code for already-parsed SELECT
// queries against presets, mirroring compiler.Compile without
// re-parsing (the REPL has already split REGISTER from SELECT on this
// line).
func compileSelects(selects []domain.Query, presets []domain.RegisterQuery) (string, error) {
	registryQueries := make([]domain.Query, 0, len(presets)+len(selects))
	for _, p := range presets {
		registryQueries = append(registryQueries, p)
	}
	registryQueries = append(registryQueries, selects...)

	sources, err := registry.GetAllSources(registryQueries)
	if err != nil {
		return "", err
	}

	resolutions, err := resolver.Resolve(selects, sources)
	if err != nil {
		return "", err
	}

	abiStr := abi.Synthesize(resolutions)

	yulStr, err := yul.Generate(resolutions)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s;%s", abiStr, yulStr), nil
}
