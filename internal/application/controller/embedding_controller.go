package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agsys/internal/domain/model"
	"agsys/internal/domain/usecase/embedding"
)

type EmbeddingController struct {
	api     *echo.Group
	useCase embedding.UseCase
}

func NewEmbeddingController(api *echo.Group, useCase embedding.UseCase) *EmbeddingController {
	return &EmbeddingController{api: api, useCase: useCase}
}

// InitEmbeddingRoutes initializes embedding routes
func (controller *EmbeddingController) InitEmbeddingRoutes() {
	controller.api.POST("/embeddings/generate", controller.Generate)
	controller.api.POST("/embeddings/store", controller.Store)
	controller.api.GET("/embeddings/:id", controller.Retrieve)
	controller.api.DELETE("/embeddings/:id", controller.Delete)
}

// Generate godoc
// @Summary Generate an embedding
// @Description Embed text with the configured Bedrock model, optionally storing the result in S3
// @Tags embeddings
// @Accept json
// @Produce json
// @Param request body model.EmbeddingRequest true "Text to embed"
// @Success 200 {object} model.EmbeddingResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /embeddings/generate [post]
func (controller *EmbeddingController) Generate(c echo.Context) error {
	var request model.EmbeddingRequest
	if err := bind(c, &request); err != nil {
		return respondError(c, err)
	}

	response, err := controller.useCase.Generate(c.Request().Context(), request)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Store godoc
// @Summary Store an embedding
// @Tags embeddings
// @Accept json
// @Produce json
// @Param request body model.StoreEmbeddingRequest true "Embedding document"
// @Success 200 {object} model.StoreEmbeddingResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /embeddings/store [post]
func (controller *EmbeddingController) Store(c echo.Context) error {
	var request model.StoreEmbeddingRequest
	if err := bind(c, &request); err != nil {
		return respondError(c, err)
	}

	response, err := controller.useCase.Store(c.Request().Context(), request)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Retrieve godoc
// @Summary Retrieve an embedding
// @Tags embeddings
// @Produce json
// @Param id path string true "Embedding id"
// @Success 200 {object} model.RetrieveEmbeddingResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /embeddings/{id} [get]
func (controller *EmbeddingController) Retrieve(c echo.Context) error {
	response, err := controller.useCase.Retrieve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Delete godoc
// @Summary Delete an embedding
// @Tags embeddings
// @Produce json
// @Param id path string true "Embedding id"
// @Success 200 {object} model.DeleteEmbeddingResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /embeddings/{id} [delete]
func (controller *EmbeddingController) Delete(c echo.Context) error {
	response, err := controller.useCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
