package healthmetrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mintra-ruensuk/LAMP-server/internal/codec"
	"github.com/mintra-ruensuk/LAMP-server/internal/scope"
	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"
	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// pivotColumns are the columns of health_kit_daily_value, each holding one
// parameter's value for the row.
var pivotColumns = []struct {
	Parameter string
	Column    string
}{
	{"Height", "height"},
	{"Weight", "weight"},
	{"HeartRate", "heart_rate"},
	{"BloodPressure", "blood_pressure"},
	{"RespiratoryRate", "respiratory_rate"},
	{"Sleep", "sleep"},
	{"Steps", "steps"},
	{"FlightClimbed", "flights_climbed"},
	{"Segment", "segment"},
	{"Distance", "distance"},
}

// listQuery unpivots the daily values table into (created_on, param_name,
// param_value) rows and unions it with the long parameter values table.
var listQuery = fmt.Sprintf(`
	SELECT v.created_on, v.param_name, v.param_value
	FROM (
		SELECT d.user_id, d.created_on, p.param_name, p.param_value
		FROM health_kit_daily_value d
		CROSS JOIN LATERAL (VALUES %s) AS p(param_name, param_value)
		WHERE d.is_edited = false AND p.param_value IS NOT NULL
		UNION ALL
		SELECT pv.user_id, pv.created_on, hp.param_name, pv.param_value
		FROM health_kit_param_value pv
		JOIN health_kit_parameter hp ON hp.param_id = pv.param_id
		WHERE pv.is_edited = false AND pv.param_value IS NOT NULL
	) AS v
	JOIN users u ON u.user_id = v.user_id
	WHERE u.is_deleted = false
	  AND ($1::text IS NULL OR u.study_id = $1)
	  AND ($2::bigint IS NULL OR u.admin_id = $2)
	  AND ($3::timestamptz IS NULL OR v.created_on >= $3)
	  AND ($4::timestamptz IS NULL OR v.created_on < $4::timestamptz + interval '1 millisecond')
`, pivotValues())

func pivotValues() string {
	values := make([]string, 0, len(pivotColumns))
	for _, c := range pivotColumns {
		values = append(values, fmt.Sprintf("('%s', d.%s)", c.Parameter, c.Column))
	}
	return strings.Join(values, ", ")
}

type Repo struct {
	db     *pgxpool.Pool
	codecs *codec.Registry
}

func NewRepo(db *pgxpool.Pool, codecs *codec.Registry) *Repo {
	return &Repo{
		db:     db,
		codecs: codecs,
	}
}

// List reads both health metric shapes within the scope and window and
// decodes them into reading events. An upstream parameter with no known
// sensor kind fails the whole batch.
func (r *Repo) List(ctx context.Context, filter scope.Filter, window sensor.Window) (_ []sensor.Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthmetrics.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Bool("unfiltered", filter.IsUnfiltered()))

	rows, err := r.db.Query(ctx, listQuery,
		filter.UserKey, filter.OwnerKey,
		window.FromTime(), window.ToTime(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]sensor.Event, 0)
	for rows.Next() {
		var createdOn time.Time
		var paramName, paramValue string
		if err := rows.Scan(&createdOn, &paramName, &paramValue); err != nil {
			return nil, err
		}

		kind, reading, err := r.codecs.DecodeParameter(paramName, paramValue)
		if err != nil {
			return nil, fmt.Errorf("decode health metric: %w", err)
		}
		events = append(events, sensor.Event{
			Timestamp: createdOn.UnixMilli(),
			Sensor:    kind,
			Data:      reading,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("events", len(events)))
	return events, nil
}

// Retract marks the user's daily and parameter values within the window as
// edited out. Rows are never physically deleted.
func (r *Repo) Retract(ctx context.Context, userID int64, window sensor.Window) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthmetrics.retract")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var retracted int64
	err = r.db.
		QueryRow(ctx, `
			WITH daily AS (
				UPDATE health_kit_daily_value
				SET is_edited = true
				WHERE user_id = $1 AND is_edited = false
				  AND ($2::timestamptz IS NULL OR created_on >= $2)
				  AND ($3::timestamptz IS NULL OR created_on < $3::timestamptz + interval '1 millisecond')
				RETURNING 1
			), params AS (
				UPDATE health_kit_param_value
				SET is_edited = true
				WHERE user_id = $1 AND is_edited = false
				  AND ($2::timestamptz IS NULL OR created_on >= $2)
				  AND ($3::timestamptz IS NULL OR created_on < $3::timestamptz + interval '1 millisecond')
				RETURNING 1
			)
			SELECT (SELECT COUNT(*) FROM daily) + (SELECT COUNT(*) FROM params)
		`, userID, window.FromTime(), window.ToTime()).
		Scan(&retracted)
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("retracted", retracted))
	return retracted, nil
}
