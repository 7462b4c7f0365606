// Package strava is a client for the Strava v3 API. Every exported method
// maps one-to-one to a documented endpoint: the client builds a relative
// path and a flat query parameter bag, attaches the access token, issues a
// single request through its Transport, and shapes the response according
// to its verbosity.
package strava

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Token supplies the bearer credential attached to every request. Pass a
// plain credential as StaticToken, or anything that can produce one (an
// OAuth session, a token store) as its own implementation. The token is
// resolved to a string once, when the client is constructed.
type Token interface {
	AccessToken() string
}

// StaticToken is a literal access token.
type StaticToken string

// AccessToken returns the token itself.
func (t StaticToken) AccessToken() string { return string(t) }

// Verbosity selects the shape of operation results.
type Verbosity int

const (
	// VerbosityBasic returns only the decoded response body.
	VerbosityBasic Verbosity = iota
	// VerbosityEnhanced returns the full Envelope, including status code,
	// headers and the success flag.
	VerbosityEnhanced
)

// Client calls the Strava v3 API. Token, transport and verbosity are fixed
// at construction and never mutated, so a Client is safe for concurrent use
// whenever its Transport is.
type Client struct {
	token     string
	transport Transport
	verbosity Verbosity
	log       *zap.SugaredLogger
}

// Option configures a Client at construction.
type Option func(*Client)

// WithVerbosity sets the result shape for every operation. There is no
// per-call override.
func WithVerbosity(v Verbosity) Option {
	return func(c *Client) { c.verbosity = v }
}

// WithLogger sets a logger for request/response debug output. Without it
// the client is silent.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient returns a client using the given token and transport. The
// transport is required; a nil token resolves to an empty credential.
func NewClient(token Token, transport Transport, opts ...Option) (*Client, error) {
	if transport == nil {
		return nil, errors.New("strava: transport is required")
	}
	c := &Client{
		transport: transport,
		verbosity: VerbosityBasic,
		log:       zap.NewNop().Sugar(),
	}
	if token != nil {
		c.token = token.AccessToken()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do executes one JSON endpoint round trip with the bearer token attached.
func (c *Client) do(ctx context.Context, method, path string, p params) (any, error) {
	q := p.query()
	q["access_token"] = c.token
	return c.roundTrip(ctx, Request{Method: method, Path: path, Query: q})
}

// doApp executes endpoints authenticated by application credentials, which
// the caller supplies in the parameter bag. No bearer token is sent.
func (c *Client) doApp(ctx context.Context, method, path string, p params) (any, error) {
	return c.roundTrip(ctx, Request{Method: method, Path: path, Query: p.query()})
}

// doUpload executes the multipart upload endpoint.
func (c *Client) doUpload(ctx context.Context, path string, p params, file *FilePart) (any, error) {
	q := p.query()
	q["access_token"] = c.token
	return c.roundTrip(ctx, Request{Method: http.MethodPost, Path: path, Query: q, Upload: file})
}

func (c *Client) roundTrip(ctx context.Context, req Request) (any, error) {
	c.log.Debugw("strava: sending request", "method", req.Method, "path", req.Path)
	raw, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, newServiceError(err)
	}
	env := shapeResponse(raw)
	c.log.Debugw("strava: received response", "path", req.Path, "status", env.StatusCode, "success", env.Success)
	if c.verbosity == VerbosityEnhanced {
		return env, nil
	}
	return env.Body, nil
}

// doText executes the route export endpoints, whose responses are GPX/TCX
// documents rather than JSON. The raw document is returned unchanged in
// both verbosity modes.
func (c *Client) doText(ctx context.Context, method, path string, p params) (string, error) {
	q := p.query()
	q["access_token"] = c.token
	c.log.Debugw("strava: sending request", "method", method, "path", path)
	raw, err := c.transport.Do(ctx, Request{Method: method, Path: path, Query: q})
	if err != nil {
		return "", newServiceError(err)
	}
	return string(raw.Body), nil
}
