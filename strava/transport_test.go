package strava

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyTransportGet(t *testing.T) {
	var gotPath, gotToken, gotPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		gotPage = r.URL.Query().Get("page")
		w.Header().Set("X-Ratelimit-Limit", "600,30000")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":42}`))
	}))
	defer server.Close()

	transport := NewRestyTransportURL(server.URL, 5*time.Second)
	raw, err := transport.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "athletes/42",
		Query:  map[string]string{"access_token": "abc", "page": "2"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/athletes/42", gotPath)
	assert.Equal(t, "abc", gotToken)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, http.StatusOK, raw.StatusCode)
	assert.Equal(t, "600,30000", raw.Header.Get("X-Ratelimit-Limit"))
	assert.JSONEq(t, `{"id":42}`, string(raw.Body))
}

func TestRestyTransportNonOKStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"Rate Limit Exceeded"}`))
	}))
	defer server.Close()

	transport := NewRestyTransportURL(server.URL, 5*time.Second)
	raw, err := transport.Do(context.Background(), Request{Method: http.MethodGet, Path: "athlete"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, raw.StatusCode)
}

func TestRestyTransportMultipartUpload(t *testing.T) {
	var gotDataType, gotFileName, gotFileContent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotDataType = r.URL.Query().Get("data_type")
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		gotFileContent = string(content)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	transport := NewRestyTransportURL(server.URL, 5*time.Second)
	raw, err := transport.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "uploads",
		Query:  map[string]string{"data_type": "gpx", "access_token": "abc"},
		Upload: &FilePart{
			FileName: "ride.gpx",
			Reader:   strings.NewReader("<gpx></gpx>"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, raw.StatusCode)
	assert.Equal(t, "gpx", gotDataType)
	assert.Equal(t, "ride.gpx", gotFileName)
	assert.Equal(t, "<gpx></gpx>", gotFileContent)
}

func TestRestyTransportConnectionFailure(t *testing.T) {
	// Point at a server that is no longer listening.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	transport := NewRestyTransportURL(url, time.Second)
	_, err := transport.Do(context.Background(), Request{Method: http.MethodGet, Path: "athlete"})
	require.Error(t, err)
}

func TestClientOverRestyTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/athlete", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":42}`))
	}))
	defer server.Close()

	transport := NewRestyTransportURL(server.URL, 5*time.Second)
	c, err := NewClient(StaticToken("test-token"), transport)
	require.NoError(t, err)

	res, err := c.GetAthlete(context.Background(), GetAthleteParams{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(42)}, res)
}
