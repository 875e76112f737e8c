package paint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paintapp/paintapp/internal/lifecycle"
)

func contentServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/"+PaintConfigFile, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validConfigDoc))
	})
	mux.HandleFunc("/"+UtilityFile, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"history": {"capacity": 100}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestHTTPFetcher(t *testing.T) {
	server := contentServer(t)
	fetcher := HTTPFetcher{
		// Trailing slash must not produce a double-slash path.
		BaseURL: server.URL + "/",
		Client:  lifecycle.NewCertificatePolicy(false).Client(5 * time.Second),
	}

	data, err := fetcher.Fetch(context.Background(), PaintConfigFile)
	require.NoError(t, err)
	assert.JSONEq(t, validConfigDoc, string(data))
}

func TestHTTPFetcherNotFound(t *testing.T) {
	server := contentServer(t)
	fetcher := HTTPFetcher{BaseURL: server.URL, Client: server.Client()}

	_, err := fetcher.Fetch(context.Background(), "data/content/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestLoaderOverHTTPFetcher(t *testing.T) {
	server := contentServer(t)
	loader := NewLoader(HTTPFetcher{BaseURL: server.URL, Client: server.Client()}, 1.0)

	result, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.Config)
	assert.Contains(t, result.Utility, "history")
}
