package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agsys/internal/domain/model"
	"agsys/internal/domain/usecase/greeting"
)

type GreetingController struct {
	api     *echo.Group
	useCase greeting.UseCase
	welcome bool
}

// NewGreetingController serves the greeting routes. With welcome set the root route answers with
// the service welcome message instead of "Hello, World!".
func NewGreetingController(api *echo.Group, useCase greeting.UseCase, welcome bool) *GreetingController {
	return &GreetingController{api: api, useCase: useCase, welcome: welcome}
}

// InitGreetingRoutes initializes root, greeting and test error routes
func (controller *GreetingController) InitGreetingRoutes() {
	controller.api.GET("", controller.Root)
	controller.api.GET("/", controller.Root)
	controller.api.GET("/greet", controller.Greet)
	controller.api.POST("/greet", controller.GreetPost)
	controller.api.GET("/error", controller.Error)
}

// Root godoc
// @Summary Root
// @Tags general
// @Produce json
// @Success 200 {object} model.GreetingResponse
// @Router / [get]
func (controller *GreetingController) Root(c echo.Context) error {
	if controller.welcome {
		return c.JSON(http.StatusOK, controller.useCase.Welcome())
	}
	return c.JSON(http.StatusOK, controller.useCase.Hello())
}

// Greet godoc
// @Summary Greet by name
// @Tags general
// @Produce json
// @Param name query string false "Name to greet" default(World)
// @Success 200 {object} model.GreetingResponse
// @Router /greet [get]
func (controller *GreetingController) Greet(c echo.Context) error {
	if !c.QueryParams().Has("name") {
		return c.JSON(http.StatusOK, controller.useCase.Hello())
	}
	return c.JSON(http.StatusOK, controller.useCase.Greet(c.QueryParam("name")))
}

// GreetPost godoc
// @Summary Greet by name
// @Tags general
// @Accept json
// @Produce json
// @Param request body model.GreetingRequest true "Who to greet"
// @Success 200 {object} model.GreetingResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /greet [post]
func (controller *GreetingController) GreetPost(c echo.Context) error {
	var request model.GreetingRequest
	if err := bind(c, &request); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, controller.useCase.Greet(request.Name))
}

// Error godoc
// @Summary Always fails
// @Description Returns a 500 to exercise error handling
// @Tags general
// @Produce json
// @Failure 500 {object} model.ErrorResponse
// @Router /error [get]
func (controller *GreetingController) Error(c echo.Context) error {
	return respondError(c, controller.useCase.Fail())
}
