package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agsys/internal/domain/model"
	"agsys/internal/domain/usecase/interservice"
)

type InterServiceController struct {
	api     *echo.Group
	useCase interservice.UseCase
}

func NewInterServiceController(api *echo.Group, useCase interservice.UseCase) *InterServiceController {
	return &InterServiceController{api: api, useCase: useCase}
}

// InitInterServiceRoutes registers /inter-service.
func (controller *InterServiceController) InitInterServiceRoutes() {
	controller.api.GET("/inter-service", controller.CallService)
}

// InitAPIHealthRoutes registers /api-health.
func (controller *InterServiceController) InitAPIHealthRoutes() {
	controller.api.GET("/api-health", controller.APIHealth)
}

// InitServiceHealthRoutes registers /services/:name/health.
func (controller *InterServiceController) InitServiceHealthRoutes() {
	controller.api.GET("/services/:name/health", controller.ServiceHealth)
}

// CallService godoc
// @Summary Call another service
// @Description GET the given URL and return its JSON body and status, whatever the status
// @Tags service-integration
// @Produce json
// @Param service_url query string true "URL to call"
// @Param authenticated query bool false "Send the service API key"
// @Success 200 {object} model.InterServiceResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /inter-service [get]
func (controller *InterServiceController) CallService(c echo.Context) error {
	serviceURL := c.QueryParam("service_url")
	if serviceURL == "" {
		return respondError(c, model.NewError(model.ErrValidation, nil, "service_url query parameter is required"))
	}

	authenticated := false
	if raw := c.QueryParam("authenticated"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return respondError(c, model.NewError(model.ErrValidation, err, "authenticated must be a boolean"))
		}
		authenticated = value
	}

	response, err := controller.useCase.CallService(c.Request().Context(), serviceURL, authenticated)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// APIHealth godoc
// @Summary API service health
// @Description Call the API service health endpoint, retrying transport failures
// @Tags api-integration
// @Produce json
// @Success 200 {object} model.ApiHealthResponse
// @Failure 500 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api-health [get]
func (controller *InterServiceController) APIHealth(c echo.Context) error {
	response, err := controller.useCase.APIHealth(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// ServiceHealth godoc
// @Summary Health of a service behind the API gateway
// @Tags service-integration
// @Produce json
// @Param name path string true "Service name"
// @Success 200 {object} model.InterServiceResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /services/{name}/health [get]
func (controller *InterServiceController) ServiceHealth(c echo.Context) error {
	response, err := controller.useCase.ServiceHealth(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
