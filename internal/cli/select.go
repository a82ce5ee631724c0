package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type SelectOptions struct {
	*RootOptions
	window windowFlags
	all    bool
}

func NewSelectCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	opts := &SelectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "select [scope-id]",
		Short: "Print the merged sensor events of a participant, study or researcher",
		Long: `Print the merged sensor events visible to a scope, one JSON object per line,
ordered by timestamp.

Example:
  lampctl select UGFydGljaXBhbnQ6VTEyMzQ --from 1700000000000 --to 1700086400000
  lampctl select --all`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := opts.window.window()
			if err != nil {
				return err
			}

			var scopeID *string
			switch {
			case len(args) == 1 && !opts.all:
				scopeID = &args[0]
			case len(args) == 0 && opts.all:
			default:
				return fmt.Errorf("give either a scope id or --all")
			}

			store, release, err := connect(cmd.Context(), opts.RootOptions)
			if err != nil {
				return err
			}
			defer release()

			events, err := store.Select(cmd.Context(), scopeID, window)
			if err != nil {
				return fmt.Errorf("select: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, e := range events {
				if err := enc.Encode(e); err != nil {
					return err
				}
			}
			if opts.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d events\n", len(events))
			}
			return nil
		},
	}

	opts.window.register(cmd)
	cmd.Flags().BoolVar(&opts.all, "all", false, "select across all participants")

	return cmd
}
