package strava

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// BaseURL is the root of the Strava v3 API.
const BaseURL = "https://www.strava.com/api/v3"

// FilePart is a multipart file attached to an upload request.
type FilePart struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

// Request is the outbound half of one API round trip: an HTTP verb, a path
// relative to the API root, a flat query parameter bag, and, for uploads
// only, a file part.
type Request struct {
	Method string
	Path   string
	Query  map[string]string
	Upload *FilePart
}

// RawResponse is the transport's view of the reply, before shaping.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs the actual network I/O for the client. Implementations
// own base URL resolution, TLS, timeouts and connection reuse; the client
// adds none of those on top.
type Transport interface {
	Do(ctx context.Context, req Request) (*RawResponse, error)
}

// RestyTransport is the default Transport, backed by a resty client.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport returns a transport for the public Strava API with the
// given request timeout.
func NewRestyTransport(timeout time.Duration) *RestyTransport {
	return NewRestyTransportURL(BaseURL, timeout)
}

// NewRestyTransportURL returns a transport rooted at a custom base URL,
// mainly for tests and proxies.
func NewRestyTransportURL(baseURL string, timeout time.Duration) *RestyTransport {
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	return &RestyTransport{client: c}
}

// Do issues the request and returns the raw response. Non-2xx statuses are
// not errors at this layer.
func (t *RestyTransport) Do(ctx context.Context, req Request) (*RawResponse, error) {
	r := t.client.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if req.Upload != nil {
		field := req.Upload.FieldName
		if field == "" {
			field = "file"
		}
		r.SetFileReader(field, req.Upload.FileName, req.Upload.Reader)
	}
	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, errors.Wrap(err, "transport: request failed")
	}
	return &RawResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
