package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const TraceIDHeader = "X-Trace-ID"

// HTTPClient embeds *resty.Client so callers keep its full request API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. Every request carries a
// fresh X-Trace-ID unless the caller already set one.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(TraceIDHeader) == "" {
				r.SetHeader(TraceIDHeader, NewTraceID())
			}
			return nil
		})

	return &HTTPClient{Client: client}
}
