package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects machine-readable output for commands that support
// it. With JSON enabled, errors are rendered as a JSON object too, so
// scripted callers always get parseable output on both paths.
type OutputOptions struct {
	JSON bool
}

// AddOutputArg wires the JSON output flag on the provided command.
func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Output as JSON.")
}

// HandleError renders err as JSON when JSON output is on, consuming the
// error; otherwise it passes the error through for cobra to report.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, marshalErr := json.Marshal(out)
		if marshalErr != nil {
			return marshalErr
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
