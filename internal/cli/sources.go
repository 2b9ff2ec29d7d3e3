package cli

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewSourcesCmd creates the sources command: a read-only introspection
// companion to compile that prints every known source and mapping in
// a query's registry without resolving or generating code.
func NewSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources <query-file|->",
		Short: "List the sources and mappings a query's registry resolves",
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

			rows, err := application.ListSources.Run(cmd.Context(), program)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Source", "Mapping", "Type"})
			for _, row := range rows {
				t.AppendRow(table.Row{row.Source, row.Mapping, row.Type})
			}
			t.Render()

			return nil
		},
	}
}
