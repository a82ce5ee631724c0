package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mintra-ruensuk/LAMP-server/internal/crypt"
	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"

	"github.com/spf13/cobra"
)

// EventStore is the part of the events service the CLI drives.
type EventStore interface {
	Select(ctx context.Context, scopeID *string, window sensor.Window) ([]sensor.Event, error)
	Insert(ctx context.Context, participantID string, event sensor.Event) error
	Retract(ctx context.Context, participantID string, window sensor.Window) error
}

// Connector opens an EventStore for the selected environment. The returned
// func releases it.
type Connector func(ctx context.Context, opts *RootOptions) (EventStore, func(), error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Env        string
	ConfigPath string
	Secret     string
	Verbose    bool
}

func (o *RootOptions) cipher() (*crypt.FieldCipher, error) {
	secret := o.Secret
	if secret == "" {
		secret = os.Getenv("LAMP_DB_KEY")
	}
	return crypt.NewFieldCipher(secret)
}

// NewRootCommand creates the lampctl root command.
func NewRootCommand(connect Connector) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lampctl",
		Short: "Operate on LAMP sensor events",
		Long:  "Read, write and retract normalized sensor events directly against the LAMP database.",
	}

	cmd.PersistentFlags().StringVar(&opts.Env, "env", "development", "environment [prod | production | dev | development]")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "./config.toml", "path for the TOML config file")
	cmd.PersistentFlags().StringVar(&opts.Secret, "secret", "", "field encryption secret (defaults to LAMP_DB_KEY)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewSelectCommand(opts, connect))
	cmd.AddCommand(NewInsertCommand(opts, connect))
	cmd.AddCommand(NewRetractCommand(opts, connect))
	cmd.AddCommand(NewEncryptCommand(opts))
	cmd.AddCommand(NewDecryptCommand(opts))

	return cmd
}

// windowFlags binds --from / --to (epoch milliseconds) to a window.
type windowFlags struct {
	from string
	to   string
}

func (w *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&w.from, "from", "", "window start, epoch milliseconds (inclusive)")
	cmd.Flags().StringVar(&w.to, "to", "", "window end, epoch milliseconds (inclusive)")
}

func (w *windowFlags) window() (sensor.Window, error) {
	from, err := parseMillis("from", w.from)
	if err != nil {
		return sensor.Window{}, err
	}
	to, err := parseMillis("to", w.to)
	if err != nil {
		return sensor.Window{}, err
	}
	return sensor.Window{From: from, To: to}, nil
}

func parseMillis(name, raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return &ms, nil
}
