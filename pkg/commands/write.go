package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/journali/pkg/commands/options"
	"tableflip.dev/journali/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	date := ""
	cmd := &cobra.Command{
		Use:   "write [message]",
		Short: "Write today's entry, or another day's with --date.",
		Example: `
journali write woke up early, long walk by the river
journali write --date 2024-03-10 dinner with friends
journali write --date 2024-03-10 ""   # clears the entry
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, cfg, err := newJournal()
			if err != nil {
				return err
			}
			w := &write.Write{
				Date:    date,
				Content: strings.Join(args, " "),
				User:    resolveUser(jo.User, cfg),
				Journal: j,
			}
			return w.Do(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "",
		"Date to write, YYYY-MM-DD. Defaults to today.")
	options.AddUserArg(cmd, jo)

	topLevel.AddCommand(cmd)
}
