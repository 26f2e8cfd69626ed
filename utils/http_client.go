package utils

import (
	"net/http"
	"time"
)

// NewHTTPClient returns the shared client used for calls to other
// services. Requests that hang longer than the timeout are abandoned
// and counted against the caller's circuit breaker.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
	}
}
