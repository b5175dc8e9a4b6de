package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/journali/pkg/journal"
	"tableflip.dev/journali/pkg/remote"
	"tableflip.dev/journali/pkg/remote/api"
	"tableflip.dev/journali/pkg/remote/diskstore"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "journali",
		Short: base.Wrap80("A year of days on one screen; every day gets a line or two."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGrid(topLevel)
	addWrite(topLevel)
	addStats(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

// newJournal resolves config and wires the journal over the configured
// backend: the hosted API when an URL is set, the local disk store otherwise.
func newJournal() (*journal.Journal, remote.Config, error) {
	cfg, err := remote.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var store remote.Store
	if cfg.APIURL() != "" {
		store = api.New(cfg.APIURL())
	} else {
		store = diskstore.New(cfg.BasePath())
	}
	return journal.New(store), cfg, nil
}

// resolveUser prefers the flag override, then the configured user.
func resolveUser(flag string, cfg remote.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.User()
}
