// Package webhooks runs the callback side of Strava push subscriptions: a
// small HTTP server that answers the service's subscription validation
// request and forwards event notifications, plus a helper that manages the
// subscription lifecycle through the API client.
package webhooks

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Event is one push notification delivered to the callback URL.
type Event struct {
	ObjectType     string         `json:"object_type"`
	ObjectID       int64          `json:"object_id"`
	AspectType     string         `json:"aspect_type"`
	OwnerID        int64          `json:"owner_id"`
	SubscriptionID int64          `json:"subscription_id"`
	EventTime      int64          `json:"event_time"`
	Updates        map[string]any `json:"updates"`
}

// EventFunc handles one delivered event. It runs on the server's request
// goroutine; the service expects a prompt 200, so hand off long work.
type EventFunc func(event Event)

// Server answers subscription validation requests and event deliveries.
type Server struct {
	server      *http.Server
	verifyToken string
	onEvent     EventFunc
	log         *zap.SugaredLogger
}

// NewServer returns a callback server bound to addr. The verify token must
// match the one used when creating the subscription. onEvent may be nil if
// only validation is needed.
func NewServer(addr string, verifyToken string, onEvent EventFunc, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{
		server:      &http.Server{Addr: addr},
		verifyToken: verifyToken,
		onEvent:     onEvent,
		log:         log,
	}
}

// Serve blocks serving callback requests until Shutdown.
func (s *Server) Serve() error {
	s.log.Infow("webhooks: starting callback server", "addr", s.server.Addr)
	s.server.Handler = s.handler()
	return s.server.ListenAndServe()
}

// Shutdown stops the callback server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			s.handleValidation(w, r)
		case http.MethodPost:
			s.handleEvent(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

type validationResponse struct {
	Challenge string `json:"hub.challenge"`
}

// handleValidation answers the GET the service sends before confirming a
// subscription, echoing hub.challenge when the verify token matches.
func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("hub.mode") != "subscribe" {
		w.WriteHeader(http.StatusBadRequest)
		s.log.Warnw("webhooks: validation request with invalid hub.mode", "mode", q.Get("hub.mode"))
		return
	}
	if q.Get("hub.verify_token") != s.verifyToken {
		w.WriteHeader(http.StatusBadRequest)
		s.log.Warnw("webhooks: validation request with incorrect hub.verify_token")
		return
	}
	if !q.Has("hub.challenge") {
		w.WriteHeader(http.StatusBadRequest)
		s.log.Warnw("webhooks: validation request with no hub.challenge")
		return
	}

	respBody, err := json.Marshal(validationResponse{Challenge: q.Get("hub.challenge")})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.log.Errorw("webhooks: failed to marshal validation response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(respBody)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		s.log.Warnw("webhooks: failed to decode event", "error", err)
		return
	}
	s.log.Debugw("webhooks: event received",
		"object_type", event.ObjectType,
		"object_id", event.ObjectID,
		"aspect_type", event.AspectType,
	)
	if s.onEvent != nil {
		s.onEvent(event)
	}
	w.WriteHeader(http.StatusOK)
}
