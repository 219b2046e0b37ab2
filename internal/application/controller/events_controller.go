package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agsys/internal/domain/usecase/events"
)

type EventsController struct {
	api     *echo.Group
	useCase events.UseCase
}

func NewEventsController(api *echo.Group, useCase events.UseCase) *EventsController {
	return &EventsController{api: api, useCase: useCase}
}

// InitEventsRoutes initializes event statistics routes
func (controller *EventsController) InitEventsRoutes() {
	controller.api.GET("/events/stats", controller.Stats)
}

// Stats godoc
// @Summary Embedding event statistics
// @Description Counts of embedding events consumed from the events queue
// @Tags events
// @Produce json
// @Success 200 {object} model.EventStats
// @Router /events/stats [get]
func (controller *EventsController) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Stats())
}
