package http

import (
	"go.uber.org/zap"

	"agsys/pkg/log"
	"agsys/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after the final attempt failed, either with an error HTTP status or a transport error
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

// ZapLogger writes request lifecycle events through pkg/log. Bodies are not logged.
type ZapLogger struct{}

func (ZapLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug(msg.GetMessage("http.req-start", method, url),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", headers),
	)
}

func (ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debug(msg.GetMessage("http.req-end", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (ZapLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	if err == nil {
		log.Warn(msg.GetMessage("http.req-end", method, url, httpStatus, latency),
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", httpStatus),
			zap.Int64("latency_ms", latency),
		)
		return
	}
	log.Error(msg.GetMessage("http.req-error", method, url, err),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int64("latency_ms", latency),
		zap.Error(err),
	)
}

func (ZapLogger) LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	log.Warn(msg.GetMessage("http.req-retry", method, url, latency, err),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err),
	)
}
