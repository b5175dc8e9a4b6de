package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/journali/pkg/commands/options"
	"tableflip.dev/journali/pkg/runner/grid"
)

func addGrid(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the year grid.",
		Example: `
journali grid
journali grid --year 2023
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, cfg, err := newJournal()
			if err != nil {
				return err
			}
			g := &grid.Grid{
				Year:    jo.Year,
				User:    resolveUser(jo.User, cfg),
				Journal: j,
			}
			return g.Do(cmd.Context())
		},
	}
	options.AddYearArg(cmd, jo)
	options.AddUserArg(cmd, jo)

	topLevel.AddCommand(cmd)
}
