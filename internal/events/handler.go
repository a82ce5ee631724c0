package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/mintra-ruensuk/LAMP-server/internal/scope"
	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"
	"github.com/mintra-ruensuk/LAMP-server/internal/telemetry/tracing"
	"github.com/mintra-ruensuk/LAMP-server/internal/users"
	"github.com/mintra-ruensuk/LAMP-server/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type service interface {
	Select(ctx context.Context, scopeID *string, window sensor.Window) ([]sensor.Event, error)
	Insert(ctx context.Context, participantID string, event sensor.Event) error
	Retract(ctx context.Context, participantID string, window sensor.Window) error
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/participant/{id}/sensor_event", h.HandleSelect).Methods("GET", "OPTIONS").Name("participant-events")
	r.HandleFunc("/study/{id}/sensor_event", h.HandleSelect).Methods("GET", "OPTIONS").Name("study-events")
	r.HandleFunc("/researcher/{id}/sensor_event", h.HandleSelect).Methods("GET", "OPTIONS").Name("researcher-events")
	r.HandleFunc("/sensor_event", h.HandleSelectAll).Methods("GET", "OPTIONS").Name("all-events")
	r.HandleFunc("/participant/{id}/sensor_event", h.HandleInsert).Methods("POST", "OPTIONS").Name("insert-event")
	r.HandleFunc("/participant/{id}/sensor_event", h.HandleRetract).Methods("DELETE", "OPTIONS").Name("retract-events")
}

func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.select")
	defer span.End()

	scopeID := mux.Vars(r)["id"]
	h.writeSelect(ctx, w, r, &scopeID)
}

func (h *Handler) HandleSelectAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.select.all")
	defer span.End()

	h.writeSelect(ctx, w, r, nil)
}

func (h *Handler) writeSelect(ctx context.Context, w http.ResponseWriter, r *http.Request, scopeID *string) {
	window, err := windowFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	events, err := h.service.Select(ctx, scopeID, window)
	if err != nil {
		log.Errorf("select sensor events: %s", err)
		http.Error(w, "select sensor events failed", statusFor(err))
		return
	}

	if kind := r.URL.Query().Get("sensor"); kind != "" {
		events = filterByKind(events, sensor.Kind(kind))
	}

	eventsJson, err := json.Marshal(events)
	if err != nil {
		log.Errorf("marshal sensor events: %s", err)
		http.Error(w, "marshal sensor events failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, eventsJson)
}

func (h *Handler) HandleInsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.insert")
	defer span.End()

	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var event sensor.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Errorf("insert sensor event, unmarshal json: %s", err)
		http.Error(w, "invalid sensor event", http.StatusBadRequest)
		return
	}

	participantID := mux.Vars(r)["id"]
	if err := h.service.Insert(ctx, participantID, event); err != nil {
		log.Errorf("insert sensor event: %s", err)
		http.Error(w, "insert sensor event failed", statusFor(err))
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, "created", http.StatusCreated)
}

func (h *Handler) HandleRetract(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.retract")
	defer span.End()

	window, err := windowFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	participantID := mux.Vars(r)["id"]
	if err := h.service.Retract(ctx, participantID, window); err != nil {
		log.Errorf("retract sensor events: %s", err)
		http.Error(w, "retract sensor events failed", statusFor(err))
		return
	}

	pkg.WriteTextResponseOK(w, "retracted")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, scope.ErrUnresolvedScope):
		return http.StatusBadRequest
	case errors.Is(err, users.ErrUnknownParticipant):
		return http.StatusNotFound
	case sensor.IsInvalidEvent(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func windowFromQuery(r *http.Request) (sensor.Window, error) {
	var window sensor.Window
	var err error
	if window.From, err = msParam(r, "from"); err != nil {
		return sensor.Window{}, err
	}
	if window.To, err = msParam(r, "to"); err != nil {
		return sensor.Window{}, err
	}
	return window, nil
}

func msParam(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s param: %s", name, raw)
	}
	return &ms, nil
}

func filterByKind(events []sensor.Event, kind sensor.Kind) []sensor.Event {
	filtered := make([]sensor.Event, 0, len(events))
	for _, e := range events {
		if e.Sensor == kind {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
