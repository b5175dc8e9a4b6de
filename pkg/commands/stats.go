package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/journali/pkg/commands/options"
	"tableflip.dev/journali/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	oo := &options.OutputOptions{}
	list := false
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show entry count, streak and days elapsed.",
		Example: `
journali stats
journali stats --list
journali stats --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, cfg, err := newJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			s := &stats.Stats{
				Year:    jo.Year,
				User:    resolveUser(jo.User, cfg),
				List:    list,
				JSON:    oo.JSON,
				Journal: j,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddYearArg(cmd, jo)
	options.AddUserArg(cmd, jo)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&list, "list", false, "Also list the entries.")

	topLevel.AddCommand(cmd)
}
