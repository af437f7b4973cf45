package provider

import (
	"net/http"
	"time"

	"github.com/okian/slate/pkg/logger"
)

// ESPNOption applies a configuration option to the ESPN client.
type ESPNOption func(*ESPN)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) ESPNOption {
	return func(e *ESPN) {
		if c != nil {
			e.client = c
		}
	}
}

// WithTimeout sets the per-request timeout on the current HTTP client.
func WithTimeout(d time.Duration) ESPNOption {
	return func(e *ESPN) {
		if d > 0 {
			c := *e.client
			c.Timeout = d
			e.client = &c
		}
	}
}

// WithBaseURL overrides the API root.
func WithBaseURL(u string) ESPNOption {
	return func(e *ESPN) {
		if u != "" {
			e.baseURL = u
		}
	}
}

// WithFetchDelay sets the pause between consecutive requests. Zero disables
// pacing.
func WithFetchDelay(d time.Duration) ESPNOption {
	return func(e *ESPN) {
		if d >= 0 {
			e.delay = d
		}
	}
}

// WithWindowDays sets how many days a single results request spans.
func WithWindowDays(n int) ESPNOption {
	return func(e *ESPN) {
		if n > 0 {
			e.windowDays = n
		}
	}
}

// WithLimit sets the scoreboard page size.
func WithLimit(n int) ESPNOption {
	return func(e *ESPN) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) ESPNOption {
	return func(e *ESPN) {
		if l != nil {
			e.log = l
		}
	}
}
