package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agsys/internal/domain/gateway/api"
	"agsys/internal/domain/model"
)

// ReadinessCheck is one condition the service needs before it accepts traffic.
// The error message is returned to the caller as the readiness failure detail.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// ComponentCheck reports the state of a dependency in the health response.
type ComponentCheck func(ctx context.Context) model.ComponentHealthStatus

// BucketConfigured fails while no vector bucket is set.
func BucketConfigured(bucket string) ReadinessCheck {
	return ReadinessCheck{
		Name: "s3",
		Check: func(context.Context) error {
			if strings.TrimSpace(bucket) == "" {
				return errors.New("S3 bucket not configured")
			}
			return nil
		},
	}
}

// UpstreamHealth requires GET {baseURL}/health to answer 200 within timeout. Label names the
// upstream in failure details, e.g. "API".
func UpstreamHealth(label string, gateway api.ServiceGateway, baseURL string, timeout time.Duration) ReadinessCheck {
	target := strings.TrimRight(baseURL, "/") + "/health"

	return ReadinessCheck{
		Name: strings.ToLower(label),
		Check: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			response, err := gateway.Get(ctx, target)
			if err != nil {
				return fmt.Errorf("Cannot reach %s service: %v", label, err)
			}
			if response.StatusCode != http.StatusOK {
				return fmt.Errorf("%s service returned status %d", label, response.StatusCode)
			}
			return nil
		},
	}
}

// Ping wraps a ping function, such as the Redis health gateway's.
func Ping(name string, ping func(ctx context.Context) error) ReadinessCheck {
	return ReadinessCheck{
		Name: name,
		Check: func(ctx context.Context) error {
			if err := ping(ctx); err != nil {
				return fmt.Errorf("%s unavailable: %v", name, err)
			}
			return nil
		},
	}
}
