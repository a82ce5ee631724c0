package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mintra-ruensuk/LAMP-server/internal/config"
	"github.com/mintra-ruensuk/LAMP-server/internal/db"
	"github.com/mintra-ruensuk/LAMP-server/internal/events"
	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// PostgresConnector opens the events service against the database configured
// for the selected environment.
func PostgresConnector(ctx context.Context, opts *RootOptions) (EventStore, func(), error) {
	cfg, err := config.Load(opts.Env, opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	cipher, err := opts.cipher()
	if err != nil {
		return nil, nil, err
	}

	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("LAMP_DB_PASS"),
		MaxConns:   4,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping db: %w", err)
	}
	log.Debugf("connected to %s:%s/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName)

	service := events.NewPostgresService(
		pool,
		cipher,
		metrics.NewManager("lamp", "cli", prometheus.NewRegistry()),
		cfg.UserKeyCacheSizeMB,
	)
	return service, pool.Close, nil
}
