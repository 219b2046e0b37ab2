package api

import (
	"context"

	pkghttp "agsys/pkg/http"
)

// ServiceGateway performs GET requests against other services. Any HTTP status is returned as a
// response; only transport failures are errors.
type ServiceGateway interface {
	Get(ctx context.Context, url string) (*pkghttp.Response, error)
}
