package webhooks

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kwoodhouse93/strava-client/strava"
)

// Subscription is a live push subscription. Call Close to remove it from
// the service and stop the callback server.
type Subscription struct {
	id     int64
	creds  strava.AppCredentials
	client *strava.Client
	server *Server
	log    *zap.SugaredLogger
}

// SubscriptionConfig wires up a subscription.
type SubscriptionConfig struct {
	Credentials strava.AppCredentials
	// CallbackURL is the externally reachable URL routed to Addr.
	CallbackURL string
	// Addr for the local callback server, e.g. ":8080".
	Addr    string
	OnEvent EventFunc
	Logger  *zap.SugaredLogger
}

// NewSubscription starts a callback server with a fresh verify token,
// removes any stale subscriptions for the application, and registers a new
// one pointing at the callback URL.
func NewSubscription(ctx context.Context, client *strava.Client, cfg SubscriptionConfig) (*Subscription, error) {
	if client == nil {
		return nil, errors.New("webhooks: client is required")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	verifyToken := uuid.NewString()
	server := NewServer(cfg.Addr, verifyToken, cfg.OnEvent, log)
	go func() {
		if err := server.Serve(); err != nil && err != http.ErrServerClosed {
			log.Errorw("webhooks: callback server stopped", "error", err)
		}
	}()

	listRes, err := client.ListSubscriptions(ctx, cfg.Credentials)
	if err != nil {
		return nil, errors.Wrap(err, "webhooks: listing existing subscriptions")
	}
	for _, id := range subscriptionIDs(listRes) {
		log.Infow("webhooks: deleting stale subscription", "id", id)
		if _, err := client.DeleteSubscription(ctx, id, cfg.Credentials); err != nil {
			return nil, errors.Wrap(err, "webhooks: deleting stale subscription")
		}
	}

	createRes, err := client.CreateSubscription(ctx, strava.CreateSubscriptionParams{
		AppCredentials: cfg.Credentials,
		CallbackURL:    cfg.CallbackURL,
		VerifyToken:    verifyToken,
	})
	if err != nil {
		return nil, errors.Wrap(err, "webhooks: creating subscription")
	}
	id, err := subscriptionID(createRes)
	if err != nil {
		return nil, err
	}
	log.Infow("webhooks: subscription created", "id", id)

	return &Subscription{
		id:     id,
		creds:  cfg.Credentials,
		client: client,
		server: server,
		log:    log,
	}, nil
}

// ID returns the subscription's ID on the service.
func (s *Subscription) ID() int64 { return s.id }

// Close deletes the subscription and shuts down the callback server.
func (s *Subscription) Close(ctx context.Context) error {
	s.log.Infow("webhooks: deleting subscription", "id", s.id)
	if _, err := s.client.DeleteSubscription(ctx, s.id, s.creds); err != nil {
		s.log.Errorw("webhooks: error deleting subscription", "error", err)
	}
	return s.server.Shutdown(ctx)
}

// resultBody unwraps the client's verbosity-dependent return shape.
func resultBody(res any) any {
	if env, ok := res.(*strava.Envelope); ok {
		return env.Body
	}
	return res
}

func subscriptionIDs(res any) []int64 {
	items, ok := resultBody(res).([]any)
	if !ok {
		return nil
	}
	var ids []int64
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := m["id"].(float64); ok {
			ids = append(ids, int64(id))
		}
	}
	return ids
}

func subscriptionID(res any) (int64, error) {
	m, ok := resultBody(res).(map[string]any)
	if !ok {
		return 0, errors.New("webhooks: unexpected create subscription response")
	}
	id, ok := m["id"].(float64)
	if !ok {
		return 0, errors.New("webhooks: create subscription response has no id")
	}
	return int64(id), nil
}
