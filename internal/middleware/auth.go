package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const apiTokenHeader = "Authorization"

// TokenAuth gates every route behind a single shared API token, sent as
// "Authorization: Bearer <token>". Open paths skip the check.
type TokenAuth struct {
	apiToken  []byte
	openPaths map[string]bool
}

func NewTokenAuth(apiToken string, openPaths ...string) *TokenAuth {
	ta := &TokenAuth{
		apiToken:  []byte(apiToken),
		openPaths: make(map[string]bool, len(openPaths)),
	}
	for _, p := range openPaths {
		ta.openPaths[p] = true
	}
	return ta
}

func (ta *TokenAuth) Check() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions || ta.openPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "open")
				next.ServeHTTP(w, r)
				return
			}

			token, found := strings.CutPrefix(r.Header.Get(apiTokenHeader), "Bearer ")
			if !found || token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "missing api token", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if len(ta.apiToken) == 0 || subtle.ConstantTimeCompare([]byte(token), ta.apiToken) != 1 {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "invalid api token", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
