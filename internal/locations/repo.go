package locations

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/mintra-ruensuk/LAMP-server/internal/annotation"
	"github.com/mintra-ruensuk/LAMP-server/internal/crypt"
	"github.com/mintra-ruensuk/LAMP-server/internal/scope"
	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"
	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// accuracyNotLookedUp is reported for fixes whose coordinates were stored
// directly rather than resolved through the address lookup.
const accuracyNotLookedUp = 1

// Row is a location row as read from storage.
type Row struct {
	CreatedOn    time.Time
	Coordinates  *string
	LocationName *string
	LookedUp     bool
}

type Repo struct {
	db     *pgxpool.Pool
	cipher crypt.Cipher
	parser *annotation.Parser
}

func NewRepo(db *pgxpool.Pool, cipher crypt.Cipher, parser *annotation.Parser) *Repo {
	return &Repo{
		db:     db,
		cipher: cipher,
		parser: parser,
	}
}

func (r *Repo) List(ctx context.Context, filter scope.Filter, window sensor.Window) (_ []sensor.Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.locations.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Bool("unfiltered", filter.IsUnfiltered()))

	rows, err := r.db.Query(ctx, `
		SELECT l.created_on, l.coordinates,
		       COALESCE(g.location_name, l.location_name),
		       g.coordinates IS NOT NULL
		FROM location l
		JOIN users u ON u.user_id = l.user_id
		LEFT JOIN gps_lookup g ON g.coordinates = l.coordinates
		WHERE l.is_edited = false
		  AND u.is_deleted = false
		  AND ($1::text IS NULL OR u.study_id = $1)
		  AND ($2::bigint IS NULL OR u.admin_id = $2)
		  AND ($3::timestamptz IS NULL OR l.created_on >= $3)
		  AND ($4::timestamptz IS NULL OR l.created_on < $4::timestamptz + interval '1 millisecond')
	`,
		filter.UserKey, filter.OwnerKey,
		window.FromTime(), window.ToTime(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]sensor.Event, 0)
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.CreatedOn, &row.Coordinates, &row.LocationName, &row.LookedUp); err != nil {
			return nil, err
		}
		events = append(events, r.ToEvent(row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("events", len(events)))
	return events, nil
}

// ToEvent converts a stored location row into a contextual location event.
func (r *Repo) ToEvent(row Row) sensor.Event {
	var data sensor.ContextualLocation
	if row.Coordinates != nil {
		data.Latitude, data.Longitude = parseCoordinates(crypt.DecryptOrRaw(r.cipher, *row.Coordinates))
	}
	if data.Latitude != nil && data.Longitude != nil && !row.LookedUp {
		accuracy := float64(accuracyNotLookedUp)
		data.Accuracy = &accuracy
	}

	pair := r.parser.Parse(row.LocationName)
	data.LocationContext = pair.Location
	data.SocialContext = pair.Social

	return sensor.Event{
		Timestamp: row.CreatedOn.UnixMilli(),
		Sensor:    sensor.KindContextualLocation,
		Data:      data,
	}
}

// parseCoordinates splits a "latitude,longitude" string.
func parseCoordinates(s string) (lat, long *float64) {
	latStr, longStr, found := strings.Cut(s, ",")
	if !found {
		return nil, nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64); err == nil {
		lat = &f
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(longStr), 64); err == nil {
		long = &f
	}
	return lat, long
}

// Retract marks the user's locations within the window as edited out.
func (r *Repo) Retract(ctx context.Context, userID int64, window sensor.Window) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.locations.retract")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE location
		SET is_edited = true
		WHERE user_id = $1 AND is_edited = false
		  AND ($2::timestamptz IS NULL OR created_on >= $2)
		  AND ($3::timestamptz IS NULL OR created_on < $3::timestamptz + interval '1 millisecond')
	`, userID, window.FromTime(), window.ToTime())
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("retracted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}
