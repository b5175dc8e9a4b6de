package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/journali/pkg/commands/options"
	"tableflip.dev/journali/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse and edit the year grid interactively.",
		Example: `
journali ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, cfg, err := newJournal()
			if err != nil {
				return err
			}
			u := &ui.UI{
				Year:    jo.Year,
				User:    resolveUser(jo.User, cfg),
				Journal: j,
			}
			return u.Do(cmd.Context())
		},
	}
	options.AddYearArg(cmd, jo)
	options.AddUserArg(cmd, jo)

	topLevel.AddCommand(cmd)
}
