package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_RecordsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	before := testutil.ToFloat64(DirectoryRequestsTotal.WithLabelValues(http.MethodGet, "418"))

	client := &http.Client{Transport: Transport(nil)}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	after := testutil.ToFloat64(DirectoryRequestsTotal.WithLabelValues(http.MethodGet, "418"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, 0.0, testutil.ToFloat64(DirectoryRequestsInFlight))
}

func TestTransport_RecordsTransportError(t *testing.T) {
	failing := RoundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	before := testutil.ToFloat64(DirectoryRequestsTotal.WithLabelValues(http.MethodGet, StatusTransportError))

	req := httptest.NewRequest(http.MethodGet, "http://directory.invalid/users", nil)
	_, err := Transport(failing).RoundTrip(req)
	assert.Error(t, err)

	after := testutil.ToFloat64(DirectoryRequestsTotal.WithLabelValues(http.MethodGet, StatusTransportError))
	assert.Equal(t, before+1, after)
}

func TestWriteTextfile(t *testing.T) {
	HelpersPaid.Set(3)

	path := filepath.Join(t.TempDir(), "crimson.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "crimson_helpers_paid 3")
}

func TestWriteTextfile_EmptyPathIsNoop(t *testing.T) {
	assert.NoError(t, WriteTextfile(""))
}
