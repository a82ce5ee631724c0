package testing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/mintra-ruensuk/LAMP-server/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestDBName = "lamp_test"

// GetDBPool connects to the test database on POSTGRES_HOST (localhost by
// default), creates the schema if missing and truncates all event tables.
// Packages sharing the database must not run in parallel (go test -p 1).
func GetDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postgres host: %s", host)

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     "5432",
		DBName:     TestDBName,
		DBPassword: os.Getenv("POSTGRES_PASS"),
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	_, err = dbPool.Exec(ctx, db.Schema)
	require.NoError(t, err)
	_, err = dbPool.Exec(ctx, `
		TRUNCATE sensor_event, location, gps_lookup, health_kit_param_value,
		         health_kit_parameter, health_kit_daily_value, users
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)

	return dbPool
}

// InsertUser adds a participant owned by adminID. studyKey is stored as is,
// so callers pass it already encrypted.
func InsertUser(t *testing.T, dbPool *pgxpool.Pool, studyKey string, adminID int64, deleted bool) int64 {
	t.Helper()

	var userID int64
	err := dbPool.
		QueryRow(context.Background(), `
			INSERT INTO users (study_id, admin_id, is_deleted)
			VALUES ($1, $2, $3)
			RETURNING user_id
		`, studyKey, adminID, deleted).
		Scan(&userID)
	require.NoError(t, err)
	return userID
}
