package server

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"agsys/internal/application/controller"
	"agsys/internal/domain/model"
	"agsys/pkg/log"
	"agsys/pkg/msg"
)

// handleError renders errors that escape the controllers: unknown routes, wrong methods,
// panics recovered by the Recover middleware and any error a handler returned unrendered.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var status int
	var detail string
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		detail = fmt.Sprint(httpErr.Message)
	} else {
		status = controller.StatusOf(err)
		detail = err.Error()
	}

	if status == http.StatusNotFound && httpErr != nil {
		err = c.JSON(status, model.NotFoundResponse{
			Error:              "Not Found",
			Message:            fmt.Sprintf("The path %s was not found", c.Request().URL.Path),
			AvailableEndpoints: s.availableEndpoints(),
		})
	} else {
		if status >= http.StatusInternalServerError {
			log.Error(msg.GetMessage("app.unhandled", c.Request().Method, c.Request().URL.Path, err))
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, controller.NewErrorResponse(status, detail))
		}
	}
	if err != nil {
		log.Error(msg.GetMessage("app.unhandled", c.Request().Method, c.Request().URL.Path, err))
	}
}

// availableEndpoints lists the registered GET routes.
func (s *Server) availableEndpoints() []string {
	seen := make(map[string]struct{})
	endpoints := make([]string, 0)
	for _, route := range s.echo.Routes() {
		if route.Method != http.MethodGet {
			continue
		}
		if _, ok := seen[route.Path]; ok {
			continue
		}
		seen[route.Path] = struct{}{}
		endpoints = append(endpoints, route.Path)
	}
	sort.Strings(endpoints)
	return endpoints
}
