package events

import (
	"github.com/mintra-ruensuk/LAMP-server/internal/annotation"
	"github.com/mintra-ruensuk/LAMP-server/internal/codec"
	"github.com/mintra-ruensuk/LAMP-server/internal/crypt"
	"github.com/mintra-ruensuk/LAMP-server/internal/customevents"
	"github.com/mintra-ruensuk/LAMP-server/internal/healthmetrics"
	"github.com/mintra-ruensuk/LAMP-server/internal/locations"
	"github.com/mintra-ruensuk/LAMP-server/internal/scope"
	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/metrics"
	"github.com/mintra-ruensuk/LAMP-server/internal/users"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresService wires the service to the postgres backed sources, all
// sharing one pool.
func NewPostgresService(
	db *pgxpool.Pool,
	cipher crypt.Cipher,
	metricsManager *metrics.Manager,
	userCacheSizeMB int,
) *Service {
	return NewService(NewServiceParams{
		Resolver:      scope.NewPackedResolver(),
		Cipher:        cipher,
		Users:         users.NewRepo(db, userCacheSizeMB),
		HealthMetrics: healthmetrics.NewRepo(db, codec.NewRegistry(cipher)),
		Locations:     locations.NewRepo(db, cipher, annotation.NewParser(cipher)),
		CustomEvents:  customevents.NewRepo(db),
		Metrics:       metricsManager,
	})
}
