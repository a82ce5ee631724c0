package events

import (
	"context"
	"fmt"
	"time"

	"github.com/mintra-ruensuk/LAMP-server/internal/crypt"
	"github.com/mintra-ruensuk/LAMP-server/internal/db"
	"github.com/mintra-ruensuk/LAMP-server/internal/scope"
	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"
	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/metrics"
	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/tracing"
	"github.com/mintra-ruensuk/LAMP-server/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=events_test

type healthMetricsRepo interface {
	List(ctx context.Context, filter scope.Filter, window sensor.Window) ([]sensor.Event, error)
	Retract(ctx context.Context, userID int64, window sensor.Window) (int64, error)
}

type locationsRepo interface {
	List(ctx context.Context, filter scope.Filter, window sensor.Window) ([]sensor.Event, error)
	Retract(ctx context.Context, userID int64, window sensor.Window) (int64, error)
}

type customEventsRepo interface {
	List(ctx context.Context, filter scope.Filter, window sensor.Window) ([]sensor.Event, error)
	Add(ctx context.Context, userID int64, event sensor.Event) (int64, error)
}

type usersRepo interface {
	UserID(ctx context.Context, participantKey string) (int64, error)
}

const (
	sourceHealthMetrics = "health_metrics"
	sourceLocations     = "locations"
	sourceCustom        = "custom"
)

type NewServiceParams struct {
	Resolver      scope.Resolver
	Cipher        crypt.Cipher
	Users         usersRepo
	HealthMetrics healthMetricsRepo
	Locations     locationsRepo
	CustomEvents  customEventsRepo
	Metrics       *metrics.Manager
}

// Service merges the three event sources into one canonical stream and
// implements the write and retraction paths.
type Service struct {
	resolver      scope.Resolver
	cipher        crypt.Cipher
	users         usersRepo
	healthMetrics healthMetricsRepo
	locations     locationsRepo
	customEvents  customEventsRepo
	metrics       *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		resolver:      params.Resolver,
		cipher:        params.Cipher,
		users:         params.Users,
		healthMetrics: params.HealthMetrics,
		locations:     params.Locations,
		customEvents:  params.CustomEvents,
		metrics:       params.Metrics,
	}
}

// Select returns all events visible to the scope within the window, ordered
// by ascending timestamp. A nil scopeID reads everything and must only be
// used by callers holding an all-access grant.
func (s *Service) Select(ctx context.Context, scopeID *string, window sensor.Window) (_ []sensor.Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.events.select")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	defer func(begin time.Time) {
		s.metrics.HistSelectDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())

	filter := scope.Filter{}
	if scopeID != nil {
		filter, err = s.resolveFilter(*scopeID)
		if err != nil {
			return nil, err
		}
	}
	span.SetAttributes(attribute.Bool("unfiltered", filter.IsUnfiltered()))

	var healthMetrics, locations, custom []sensor.Event
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		healthMetrics, err = s.healthMetrics.List(gCtx, filter, window)
		if err != nil {
			return fmt.Errorf("list health metrics: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		locations, err = s.locations.List(gCtx, filter, window)
		if err != nil {
			return fmt.Errorf("list locations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		custom, err = s.customEvents.List(gCtx, filter, window)
		if err != nil {
			return fmt.Errorf("list custom events: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.CounterSourceEvents.WithLabelValues(sourceHealthMetrics).Add(float64(len(healthMetrics)))
	s.metrics.CounterSourceEvents.WithLabelValues(sourceLocations).Add(float64(len(locations)))
	s.metrics.CounterSourceEvents.WithLabelValues(sourceCustom).Add(float64(len(custom)))

	// concatenation order is fixed, so the stable sort gives the same result
	// whichever reader finished first
	merged := make([]sensor.Event, 0, len(healthMetrics)+len(locations)+len(custom))
	merged = append(merged, healthMetrics...)
	merged = append(merged, locations...)
	merged = append(merged, custom...)
	sensor.SortByTimestamp(merged)

	span.SetAttributes(attribute.Int("events", len(merged)))
	return merged, nil
}

func (s *Service) resolveFilter(scopeID string) (scope.Filter, error) {
	id, err := s.resolver.Resolve(scopeID)
	if err != nil {
		return scope.Filter{}, err
	}
	return scope.FilterFor(id, s.cipher)
}

// Insert stores one canonical event for the participant in the custom events
// store, as is.
func (s *Service) Insert(ctx context.Context, participantID string, event sensor.Event) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.events.insert")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := event.Validate(); err != nil {
		return err
	}

	userID, err := s.userID(ctx, participantID)
	if err != nil {
		return err
	}

	id, err := s.customEvents.Add(ctx, userID, event)
	if err != nil {
		// the user row is gone while its key was still cached
		if db.IsForeignKeyViolationError(err) {
			return fmt.Errorf("add custom event: %w", users.ErrUnknownParticipant)
		}
		return fmt.Errorf("add custom event: %w", err)
	}

	s.metrics.CounterInsertedEvents.Inc()
	log.Tracef("sensor event %d [%s] added for user %d", id, event.Sensor, userID)
	return nil
}

// Retract soft-deletes the participant's health metrics and locations within
// the window. Events in the custom events store are left untouched.
func (s *Service) Retract(ctx context.Context, participantID string, window sensor.Window) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.events.retract")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	userID, err := s.userID(ctx, participantID)
	if err != nil {
		return err
	}

	// TODO: retract sensor_event rows as well once clients stop relying on
	// custom events surviving a delete
	healthMetrics, err := s.healthMetrics.Retract(ctx, userID, window)
	if err != nil {
		return fmt.Errorf("retract health metrics: %w", err)
	}
	locations, err := s.locations.Retract(ctx, userID, window)
	if err != nil {
		return fmt.Errorf("retract locations: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("retracted-health-metrics", healthMetrics),
		attribute.Int64("retracted-locations", locations),
	)
	log.Debugf("retracted %d health metrics and %d locations for user %d", healthMetrics, locations, userID)
	return nil
}

func (s *Service) userID(ctx context.Context, participantID string) (int64, error) {
	id, err := s.resolver.Resolve(participantID)
	if err != nil {
		return 0, err
	}
	if id.Kind != scope.KindParticipant {
		return 0, fmt.Errorf("%w: %s id given", users.ErrUnknownParticipant, id.Kind)
	}

	userKey := s.cipher.Encrypt(id.ParticipantID)
	userID, err := s.users.UserID(ctx, userKey)
	if err != nil {
		return 0, fmt.Errorf("resolve participant: %w", err)
	}
	return userID, nil
}
