package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// RoundTripperFunc adapts a function to http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Transport collects directory request metrics around next.
// A nil next uses http.DefaultTransport.
func Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()

		// Track in-flight requests
		DirectoryRequestsInFlight.Inc()
		defer DirectoryRequestsInFlight.Dec()

		resp, err := next.RoundTrip(r)

		duration := time.Since(start).Seconds()

		status := StatusTransportError
		if err == nil {
			status = strconv.Itoa(resp.StatusCode)
		}

		DirectoryRequestsTotal.WithLabelValues(r.Method, status).Inc()
		DirectoryRequestDuration.WithLabelValues(r.Method).Observe(duration)

		return resp, err
	})
}
