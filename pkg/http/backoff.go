package http

import (
	"time"
)

// BackoffConfig configures retries for a request. A request is retried when the
// transport fails or the upstream answers with a retryable status (5xx or 429).
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultBackoffConfig returns a conservative retry policy.
func DefaultBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

func retryableStatus(status int) bool {
	return status == 0 || status == 429 || status >= 500
}

// doRequestWithBackoff executes doRequest, retrying per the backoff configuration.
// A nil backoff falls back to the client default; a nil client default means a
// single attempt.
func (hc *Client) doRequestWithBackoff(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		backoff = hc.defaultBackoff
	}
	if backoff == nil {
		return hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
	}

	interval := backoff.InitialInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	var succ, errResp any
	var status int
	var err error

	for attempt := 0; ; attempt++ {
		succ, errResp, status, err = hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil || attempt >= backoff.MaxRetries || !retryableStatus(status) {
			return succ, errResp, status, err
		}

		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, hc.buildURL(path), headers, "", status, "", 0, err, attempt+1, backoff.MaxRetries)
		}

		time.Sleep(interval)
		interval *= 2
		if backoff.MaxInterval > 0 && interval > backoff.MaxInterval {
			interval = backoff.MaxInterval
		}
	}
}
