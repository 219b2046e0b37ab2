package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"agsys/pkg/log"
	"agsys/pkg/msg"
)

var quietPaths = []string{"/health", "/liveness", "/readiness", "/metrics"}

// SetupRequestLogger registers the request logging middleware with custom log output.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestLoggerWithConfig(requestLoggerConfig()))
}

func requestLoggerConfig() echomw.RequestLoggerConfig {
	return echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper:      skipQuietPaths,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error == nil {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
			} else {
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error),
					append(fields, zap.Error(v.Error))...)
			}
			return nil
		},
	}
}

// skipQuietPaths skips probes, metrics scrapes and docs. Parameterized routes such as
// /services/:name/health are always logged.
func skipQuietPaths(c echo.Context) bool {
	path := c.Path()
	if path == "" {
		path = c.Request().URL.Path
	}
	if strings.Contains(path, "/docs/") {
		return true
	}
	if strings.Contains(path, ":") {
		return false
	}
	for _, quiet := range quietPaths {
		if strings.HasSuffix(path, quiet) {
			return true
		}
	}
	return false
}
