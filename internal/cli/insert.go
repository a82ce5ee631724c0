package cli

import (
	"encoding/json"
	"fmt"

	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"

	"github.com/spf13/cobra"
)

type InsertOptions struct {
	*RootOptions
	Sensor    string
	Timestamp int64
	Data      string
}

func NewInsertCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	opts := &InsertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "insert <participant-id>",
		Short: "Store one sensor event for a participant",
		Long: `Store one sensor event for a participant in the custom events store.

Example:
  lampctl insert UGFydGljaXBhbnQ6VTEyMzQ --sensor lamp.accelerometer \
    --timestamp 1700000000000 --data '{"x":0.1,"y":0.2,"z":9.8}'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := sensor.Kind(opts.Sensor)
			data, err := sensor.DecodeData(kind, json.RawMessage(opts.Data))
			if err != nil {
				return fmt.Errorf("invalid --data: %w", err)
			}
			event := sensor.Event{
				Timestamp: opts.Timestamp,
				Sensor:    kind,
				Data:      data,
			}
			if data != nil {
				event.Raw = json.RawMessage(opts.Data)
			}
			if err := event.Validate(); err != nil {
				return err
			}

			store, release, err := connect(cmd.Context(), opts.RootOptions)
			if err != nil {
				return err
			}
			defer release()

			if err := store.Insert(cmd.Context(), args[0], event); err != nil {
				return fmt.Errorf("insert: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "inserted")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Sensor, "sensor", "", "sensor kind, e.g. lamp.accelerometer")
	cmd.Flags().Int64Var(&opts.Timestamp, "timestamp", 0, "event time, epoch milliseconds")
	cmd.Flags().StringVar(&opts.Data, "data", "{}", "event payload as JSON")
	_ = cmd.MarkFlagRequired("sensor")
	_ = cmd.MarkFlagRequired("timestamp")

	return cmd
}
