// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// JournalOptions captures the year/user selection shared by most commands.
type JournalOptions struct {
	Year int
	User string
}

// AddYearArg wires the year selection flag on the provided command.
func AddYearArg(cmd *cobra.Command, o *JournalOptions) {
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0,
		"Journal year to operate on. Defaults to the current year.")
}

// AddUserArg wires the user override flag on the provided command.
func AddUserArg(cmd *cobra.Command, o *JournalOptions) {
	cmd.Flags().StringVarP(&o.User, "user", "u", "",
		"Act as this user. Defaults to the configured user.")
}
