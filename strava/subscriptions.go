package strava

import (
	"context"
	"net/http"
	"strconv"
)

// AppCredentials identify the API application for the push subscription
// endpoints, which authenticate by client ID and secret rather than the
// bearer token.
type AppCredentials struct {
	ClientID     int
	ClientSecret string
}

func (a AppCredentials) apply(p params) {
	p.set("client_id", strconv.Itoa(a.ClientID))
	p.set("client_secret", a.ClientSecret)
}

// CreateSubscriptionParams registers a webhook callback.
type CreateSubscriptionParams struct {
	AppCredentials
	// CallbackURL must answer the service's validation GET before the
	// subscription is created.
	CallbackURL string
	VerifyToken string
}

// CreateSubscription registers a push subscription for the application.
// The service issues a validation request to the callback URL before
// confirming, so the callback server must already be up.
func (c *Client) CreateSubscription(ctx context.Context, p CreateSubscriptionParams) (any, error) {
	q := newParams()
	p.AppCredentials.apply(q)
	q.set("callback_url", p.CallbackURL)
	q.set("verify_token", p.VerifyToken)
	return c.doApp(ctx, http.MethodPost, "push_subscriptions", q)
}

// ListSubscriptions returns the application's push subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context, creds AppCredentials) (any, error) {
	q := newParams()
	creds.apply(q)
	return c.doApp(ctx, http.MethodGet, "push_subscriptions", q)
}

// DeleteSubscription removes a push subscription.
func (c *Client) DeleteSubscription(ctx context.Context, subscriptionID int64, creds AppCredentials) (any, error) {
	path := "push_subscriptions/" + strconv.FormatInt(subscriptionID, 10)
	q := newParams()
	creds.apply(q)
	return c.doApp(ctx, http.MethodDelete, path, q)
}
