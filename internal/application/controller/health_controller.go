package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agsys/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth())
	controller.api.GET("/liveness", controller.Liveness())
	controller.api.GET("/readiness", controller.Readiness())
	controller.api.GET("/status", controller.Status())
}

// CheckHealth godoc
// @Summary Health check
// @Description Service status, uptime and, when configured, dependency components
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		healthResponse := controller.useCase.CheckHealth(c.Request().Context())

		return c.JSON(http.StatusOK, healthResponse)
	}
}

// Liveness godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} model.StatusResponse
// @Router /liveness [get]
func (controller *HealthController) Liveness() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, controller.useCase.Liveness())
	}
}

// Readiness godoc
// @Summary Readiness probe
// @Description Ready once every dependency check passes
// @Tags health
// @Produce json
// @Success 200 {object} model.StatusResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /readiness [get]
func (controller *HealthController) Readiness() echo.HandlerFunc {
	return func(c echo.Context) error {
		response, err := controller.useCase.Readiness(c.Request().Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, response)
	}
}

// Status godoc
// @Summary Service information
// @Tags health
// @Produce json
// @Success 200 {object} model.ServiceInfo
// @Router /status [get]
func (controller *HealthController) Status() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, controller.useCase.Status())
	}
}
