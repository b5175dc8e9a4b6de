package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/journali/pkg/remote"
	"tableflip.dev/journali/pkg/remote/diskstore"
	"tableflip.dev/journali/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a line whenever the local store changes.",
		Example: `
journali watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := remote.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.APIURL() != "" {
				return errors.New("watch only works with the local store")
			}
			w := &watch.Watch{Store: diskstore.New(cfg.BasePath())}
			return w.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
