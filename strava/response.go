package strava

import (
	"encoding/json"
	"net/http"
)

// Envelope is the shaped form of one API response. In enhanced verbosity
// every operation returns one of these; in basic verbosity callers see only
// the Body.
type Envelope struct {
	StatusCode int
	Headers    http.Header
	Body       any
	Success    bool
}

// shapeResponse normalizes a raw transport response. The body is decoded as
// JSON when possible; empty or undecodable bodies yield a nil Body rather
// than an error. Success covers exactly the 200 and 201 statuses.
func shapeResponse(raw *RawResponse) *Envelope {
	env := &Envelope{
		StatusCode: raw.StatusCode,
		Headers:    raw.Header,
		Success:    raw.StatusCode == http.StatusOK || raw.StatusCode == http.StatusCreated,
	}
	if len(raw.Body) == 0 {
		return env
	}
	var body any
	if err := json.Unmarshal(raw.Body, &body); err == nil {
		env.Body = body
	}
	return env
}
