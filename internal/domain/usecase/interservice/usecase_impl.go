package interservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agsys/internal/domain/gateway/api"
	"agsys/internal/domain/model"
	"agsys/pkg/apiclient"
	pkghttp "agsys/pkg/http"
	"agsys/pkg/log"
	"agsys/pkg/msg"
	"agsys/pkg/util/numberutils"

	"go.uber.org/zap"
)

// Options wires the gateways available to a service. Nil gateways disable the operations that need them.
type Options struct {
	Direct        api.ServiceGateway
	Authenticated api.ServiceGateway
	// APIService calls the API service, usually with retries enabled.
	APIService    api.ServiceGateway
	APIServiceURL string
	// GatewayURL is the API gateway base URL used to resolve service names.
	GatewayURL string
}

type interServiceUseCase struct {
	opts Options
}

func NewInterServiceUseCase(opts Options) UseCase {
	return &interServiceUseCase{opts: opts}
}

func (useCase *interServiceUseCase) CallService(ctx context.Context, url string, authenticated bool) (*model.InterServiceResponse, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, model.NewError(model.ErrValidation, nil, "service_url is required")
	}

	gateway := useCase.opts.Direct
	if authenticated {
		gateway = useCase.opts.Authenticated
	}
	if gateway == nil {
		return nil, model.NewError(model.ErrUnavailable, nil, "Service API client not configured")
	}

	return useCase.call(ctx, gateway, url)
}

func (useCase *interServiceUseCase) ServiceHealth(ctx context.Context, service string) (*model.InterServiceResponse, error) {
	if useCase.opts.Authenticated == nil {
		return nil, model.NewError(model.ErrUnavailable, nil, "Service API client not configured")
	}

	url, err := apiclient.ServiceURL(service, useCase.opts.GatewayURL)
	if err != nil {
		return nil, model.NewError(model.ErrUnavailable, err, "%s", err.Error())
	}

	return useCase.call(ctx, useCase.opts.Authenticated, url+"/health")
}

func (useCase *interServiceUseCase) APIHealth(ctx context.Context) (*model.ApiHealthResponse, error) {
	if useCase.opts.APIService == nil || useCase.opts.APIServiceURL == "" {
		return nil, model.NewError(model.ErrUnavailable, nil, "API service URL not configured")
	}

	url := strings.TrimRight(useCase.opts.APIServiceURL, "/") + "/health"
	body, response, elapsed, err := useCase.fetch(ctx, useCase.opts.APIService, url)
	if err != nil {
		var unreachable *transportError
		if errors.As(err, &unreachable) {
			return nil, model.NewError(model.ErrUnavailable, err, "Failed to reach API service: %v", unreachable.err)
		}
		return nil, fmt.Errorf("Unexpected error calling API service: %w", err)
	}

	return &model.ApiHealthResponse{
		ApiResponse:    body,
		StatusCode:     response.StatusCode,
		ResponseTimeMs: elapsed,
	}, nil
}

func (useCase *interServiceUseCase) call(ctx context.Context, gateway api.ServiceGateway, url string) (*model.InterServiceResponse, error) {
	body, response, elapsed, err := useCase.fetch(ctx, gateway, url)
	if err != nil {
		var unreachable *transportError
		if errors.As(err, &unreachable) {
			log.Error(msg.GetMessage("interservice.unreachable", url, unreachable.err))
			return nil, model.NewError(model.ErrUnavailable, err, "Failed to reach service at %s: %v", url, unreachable.err)
		}
		log.Error(msg.GetMessage("interservice.unexpected", url, err))
		return nil, fmt.Errorf("Unexpected error calling service at %s: %w", url, err)
	}

	return &model.InterServiceResponse{
		ServiceResponse: body,
		StatusCode:      response.StatusCode,
		ResponseTimeMs:  elapsed,
		TargetURL:       url,
	}, nil
}

// transportError marks failures that never produced an HTTP response.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }

func (e *transportError) Unwrap() error { return e.err }

func (useCase *interServiceUseCase) fetch(ctx context.Context, gateway api.ServiceGateway, url string) (map[string]any, *pkghttp.Response, float64, error) {
	log.Info(msg.GetMessage("interservice.call", url))

	start := time.Now()
	response, err := gateway.Get(ctx, url)
	elapsed := numberutils.Milliseconds(time.Since(start))
	if err != nil {
		return nil, nil, elapsed, &transportError{err: err}
	}

	log.Info(msg.GetMessage("interservice.response", url, response.StatusCode, elapsed), zap.Int("status_code", response.StatusCode))

	var body map[string]any
	if err := response.JSON(&body); err != nil {
		return nil, response, elapsed, err
	}
	return body, response, elapsed, nil
}
