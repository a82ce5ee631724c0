package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrUnknownParticipant = errors.New("participant not found")

const (
	megabyte           = 1024 * 1024
	userKeyCacheExpiry = 300 // seconds
)

// Repo resolves participants to internal user keys.
type Repo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

func NewRepo(db *pgxpool.Pool, cacheSizeMegabytes int) *Repo {
	if cacheSizeMegabytes <= 0 {
		cacheSizeMegabytes = 1
	}
	return &Repo{
		db:    db,
		cache: freecache.NewCache(cacheSizeMegabytes * megabyte),
	}
}

// UserID returns the user key owning the given (encrypted) participant id.
// Deleted users are not resolved.
func (r *Repo) UserID(ctx context.Context, participantKey string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.userid")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	cacheKey := []byte(participantKey)
	if cached, cacheErr := r.cache.Get(cacheKey); cacheErr == nil {
		if userID, parseErr := strconv.ParseInt(string(cached), 10, 64); parseErr == nil {
			span.SetAttributes(attribute.Bool("cache-hit", true))
			return userID, nil
		}
		log.Warnf("invalid cached user key for participant, dropping it")
		r.cache.Del(cacheKey)
	}
	span.SetAttributes(attribute.Bool("cache-hit", false))

	var userID int64
	err = r.db.
		QueryRow(ctx, `
			SELECT user_id
			FROM users
			WHERE study_id = $1 AND is_deleted = false
		`, participantKey).
		Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUnknownParticipant
		}
		return 0, fmt.Errorf("query user id: %w", err)
	}

	if err := r.cache.Set(cacheKey, strconv.AppendInt(nil, userID, 10), userKeyCacheExpiry); err != nil {
		log.Warnf("cache user key: %s", err)
	}

	return userID, nil
}
