package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type RetractOptions struct {
	*RootOptions
	window windowFlags
}

func NewRetractCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	opts := &RetractOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "retract <participant-id>",
		Short: "Soft-delete a participant's health metrics and locations",
		Long: `Soft-delete a participant's health metrics and location records within the
window. Events stored through insert are not affected.

Example:
  lampctl retract UGFydGljaXBhbnQ6VTEyMzQ --from 1700000000000`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := opts.window.window()
			if err != nil {
				return err
			}

			store, release, err := connect(cmd.Context(), opts.RootOptions)
			if err != nil {
				return err
			}
			defer release()

			if err := store.Retract(cmd.Context(), args[0], window); err != nil {
				return fmt.Errorf("retract: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "retracted")
			return nil
		},
	}

	opts.window.register(cmd)

	return cmd
}
