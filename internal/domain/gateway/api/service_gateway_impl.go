package api

import (
	"context"

	"agsys/pkg/apiclient"
	pkghttp "agsys/pkg/http"
)

type httpServiceGateway struct {
	httpClient *pkghttp.Client
}

// NewServiceGateway calls services with a plain HTTP client. Retries follow the client's backoff policy.
func NewServiceGateway(httpClient *pkghttp.Client) ServiceGateway {
	return &httpServiceGateway{httpClient: httpClient}
}

func (g *httpServiceGateway) Get(ctx context.Context, url string) (*pkghttp.Response, error) {
	return g.httpClient.Request().
		WithContext(ctx).
		WithMethod(pkghttp.GET).
		WithPath(url).
		Do()
}

type authenticatedServiceGateway struct {
	client *apiclient.Client
}

// NewAuthenticatedServiceGateway calls services through the API gateway with the service API key.
func NewAuthenticatedServiceGateway(client *apiclient.Client) ServiceGateway {
	return &authenticatedServiceGateway{client: client}
}

func (g *authenticatedServiceGateway) Get(ctx context.Context, url string) (*pkghttp.Response, error) {
	return g.client.Get(ctx, url, nil, nil)
}
