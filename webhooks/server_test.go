package webhooks

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationURL(params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "/?" + q.Encode()
}

func TestHandleValidationEchoesChallenge(t *testing.T) {
	s := NewServer(":0", "secret-token", nil, nil)

	req := httptest.NewRequest(http.MethodGet, validationURL(map[string]string{
		"hub.mode":         "subscribe",
		"hub.verify_token": "secret-token",
		"hub.challenge":    "15f7d1a91c1f40f8a748fd134752feb3",
	}), nil)
	rec := httptest.NewRecorder()
	s.handler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "15f7d1a91c1f40f8a748fd134752feb3", body["hub.challenge"])
}

func TestHandleValidationRejects(t *testing.T) {
	s := NewServer(":0", "secret-token", nil, nil)

	tests := map[string]map[string]string{
		"wrong mode": {
			"hub.mode":         "unsubscribe",
			"hub.verify_token": "secret-token",
			"hub.challenge":    "c",
		},
		"wrong token": {
			"hub.mode":         "subscribe",
			"hub.verify_token": "not-the-token",
			"hub.challenge":    "c",
		},
		"missing challenge": {
			"hub.mode":         "subscribe",
			"hub.verify_token": "secret-token",
		},
	}
	for name, params := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, validationURL(params), nil)
			rec := httptest.NewRecorder()
			s.handler()(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleEvent(t *testing.T) {
	var got Event
	s := NewServer(":0", "secret-token", func(e Event) { got = e }, nil)

	payload := `{
		"object_type": "activity",
		"object_id": 12345,
		"aspect_type": "update",
		"owner_id": 42,
		"subscription_id": 9,
		"event_time": 1664582400,
		"updates": {"title": "Morning Ride"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	s.handler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "activity", got.ObjectType)
	assert.Equal(t, int64(12345), got.ObjectID)
	assert.Equal(t, "update", got.AspectType)
	assert.Equal(t, int64(42), got.OwnerID)
	assert.Equal(t, "Morning Ride", got.Updates["title"])
}

func TestHandleEventBadPayload(t *testing.T) {
	s := NewServer(":0", "secret-token", nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	s.handler()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerRejectsOtherMethods(t *testing.T) {
	s := NewServer(":0", "secret-token", nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	s.handler()(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
