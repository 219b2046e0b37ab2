package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// BackoffConfig is an exponential retry policy. Transport errors are always retried;
// responses are retried only when their status is listed in RetryOnStatus.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	RetryOnStatus   []int
}

// NewBackoffConfig returns a policy with maxRetries retries and library default intervals.
func NewBackoffConfig(maxRetries int) *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      maxRetries,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	}
}

func (b *BackoffConfig) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if b.InitialInterval > 0 {
		exp.InitialInterval = b.InitialInterval
	}
	if b.MaxInterval > 0 {
		exp.MaxInterval = b.MaxInterval
	}
	if b.Multiplier > 0 {
		exp.Multiplier = b.Multiplier
	}
	exp.MaxElapsedTime = 0
	exp.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(b.MaxRetries)), ctx)
}

type retryableStatus struct {
	statusCode int
}

func (e *retryableStatus) Error() string {
	return fmt.Sprintf("retryable status %d", e.statusCode)
}

// send builds and executes one logical request, replaying it per policy.
func (hc *Client) send(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, policy *BackoffConfig) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	target := hc.buildURL(path, queryParams)
	payload, contentType, err := hc.encodeBody(body)
	if err != nil {
		return nil, err
	}

	var (
		last       *Response
		attempts   int
		maxRetries int
		logHeaders map[string]string
	)
	if policy != nil {
		maxRetries = policy.MaxRetries
	}

	operation := func() error {
		attempts++
		req, err := hc.newRequest(ctx, method, target, headers, payload, contentType)
		if err != nil {
			return backoff.Permanent(err)
		}
		if logHeaders == nil {
			logHeaders = redactHeaders(req.Header)
			if hc.logger != nil {
				hc.logger.LogRequest(method, target, logHeaders, string(payload))
			}
		}

		start := time.Now()
		resp, err := hc.execute(req)
		latency := time.Since(start).Milliseconds()
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			if hc.logger != nil && attempts > maxRetries {
				hc.logger.LogResponseError(method, target, logHeaders, string(payload), 0, "", latency, err)
			}
			return err
		}

		last = resp
		if policy != nil && slices.Contains(policy.RetryOnStatus, resp.StatusCode) {
			if hc.logger != nil && attempts > maxRetries {
				hc.logger.LogResponseError(method, target, logHeaders, string(payload), resp.StatusCode, string(resp.Body), latency, nil)
			}
			return &retryableStatus{statusCode: resp.StatusCode}
		}

		if hc.logger != nil {
			if resp.StatusCode >= http.StatusBadRequest {
				hc.logger.LogResponseError(method, target, logHeaders, string(payload), resp.StatusCode, string(resp.Body), latency, nil)
			} else {
				hc.logger.LogResponseSuccess(method, target, logHeaders, string(payload), resp.StatusCode, string(resp.Body), latency)
			}
		}
		return nil
	}

	if policy == nil || policy.MaxRetries <= 0 {
		err = operation()
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
	} else {
		err = backoff.RetryNotify(operation, policy.newBackOff(ctx), func(err error, next time.Duration) {
			if hc.logger == nil {
				return
			}
			status, body := 0, ""
			var rs *retryableStatus
			if errors.As(err, &rs) && last != nil {
				status, body = last.StatusCode, string(last.Body)
			}
			hc.logger.LogRequestRetry(method, target, logHeaders, string(payload), status, body, next.Milliseconds(), err, attempts, maxRetries)
		})
	}

	var rs *retryableStatus
	if errors.As(err, &rs) {
		return last, nil
	}
	if err != nil {
		return nil, err
	}
	return last, nil
}

var sensitiveHeaders = []string{"x-api-key", "authorization", "cookie"}

func redactHeaders(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for k, v := range header {
		if slices.Contains(sensitiveHeaders, strings.ToLower(k)) {
			out[k] = "***"
			continue
		}
		out[k] = strings.Join(v, ",")
	}
	return out
}
