package customevents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mintra-ruensuk/LAMP-server/internal/scope"
	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"
	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/tracing"
	"github.com/mintra-ruensuk/LAMP-server/internal/users"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Repo stores sensor events that are already in canonical shape. No codec is
// applied on either path.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, filter scope.Filter, window sensor.Window) (_ []sensor.Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.customevents.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Bool("unfiltered", filter.IsUnfiltered()))

	rows, err := r.db.Query(ctx, `
		SELECT e.timestamp, e.sensor, e.data
		FROM sensor_event e
		JOIN users u ON u.user_id = e.user_id
		WHERE u.is_deleted = false
		  AND ($1::text IS NULL OR u.study_id = $1)
		  AND ($2::bigint IS NULL OR u.admin_id = $2)
		  AND ($3::bigint IS NULL OR e.timestamp >= $3)
		  AND ($4::bigint IS NULL OR e.timestamp <= $4)
	`,
		filter.UserKey, filter.OwnerKey,
		window.From, window.To,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]sensor.Event, 0)
	for rows.Next() {
		var timestamp int64
		var kind string
		var data []byte
		if err := rows.Scan(&timestamp, &kind, &data); err != nil {
			return nil, err
		}
		event, err := toEvent(timestamp, sensor.Kind(kind), data)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("events", len(events)))
	return events, nil
}

// toEvent gives stored payloads the variant their kind dictates. Rows that
// do not fit the shape stay documents.
func toEvent(timestamp int64, kind sensor.Kind, data []byte) (sensor.Event, error) {
	parsed, err := sensor.DecodeData(kind, data)
	if err != nil {
		return sensor.Event{}, fmt.Errorf("decode custom event [%s]: %w", kind, err)
	}
	if parsed == nil {
		parsed = sensor.Document("null")
	}
	return sensor.Event{
		Timestamp: timestamp,
		Sensor:    kind,
		Data:      parsed,
		Raw:       data,
	}, nil
}

// Add appends one event for the given user. The payload is stored as the
// caller sent it (event.Raw), falling back to the encoded Data. Deleted users
// get users.ErrUnknownParticipant, even when their key is still cached.
func (r *Repo) Add(ctx context.Context, userID int64, event sensor.Event) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.customevents.add")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("sensor", event.Sensor.String()))

	data := []byte(event.Raw)
	if len(data) == 0 {
		if data, err = json.Marshal(event.Data); err != nil {
			return 0, fmt.Errorf("marshal event data: %w", err)
		}
	}

	var id int64
	err = r.db.
		QueryRow(ctx, `
			INSERT INTO sensor_event (user_id, timestamp, sensor, data)
			SELECT $1::bigint, $2::bigint, $3::text, $4::jsonb
			WHERE EXISTS (
				SELECT 1 FROM users WHERE user_id = $1 AND is_deleted = false
			)
			RETURNING event_id
		`,
			userID,
			event.Timestamp,
			event.Sensor.String(),
			data,
		).
		Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, users.ErrUnknownParticipant
		}
		return 0, err
	}
	return id, nil
}
