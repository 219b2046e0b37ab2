package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agsys/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestUnknownRouteListsEndpoints(t *testing.T) {
	s := New(Options{ServiceName: "api"})
	s.API().GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	s.API().POST("/greet", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := serve(s, http.MethodGet, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body model.NotFoundResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body.Error)
	assert.Equal(t, "The path /nope was not found", body.Message)
	assert.Contains(t, body.AvailableEndpoints, "/health")
	assert.Contains(t, body.AvailableEndpoints, "/metrics")
	assert.NotContains(t, body.AvailableEndpoints, "/greet")
}

func TestHandlerErrorsAreMapped(t *testing.T) {
	s := New(Options{ServiceName: "api"})
	s.API().GET("/missing", func(c echo.Context) error {
		return model.NewError(model.ErrNotFound, nil, "Embedding not found: x")
	})
	s.API().GET("/panic", func(c echo.Context) error { panic("kaboom") })
	s.API().GET("/teapot", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "short and stout") })

	rec := serve(s, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Embedding not found: x", body.Detail)
	assert.NotEmpty(t, body.Timestamp)

	assert.Equal(t, http.StatusInternalServerError, serve(s, http.MethodGet, "/panic").Code)

	rec = serve(s, http.MethodGet, "/teapot")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, rec.Body.String(), "short and stout")

	assert.Equal(t, http.StatusMethodNotAllowed, serve(s, http.MethodPost, "/missing").Code)
}

func TestContextPathAndDocs(t *testing.T) {
	s := New(Options{ServiceName: "vector", ContextPath: "/v1/"})
	s.API().GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	s.Group("/vector").GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/v1/health").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/v1/vector/health").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/v1/metrics").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/v1/docs/doc.json").Code)
}

func TestValidator(t *testing.T) {
	v := NewRequestValidator()
	assert.NoError(t, v.Validate(&model.GreetingRequest{Name: "a"}))

	err := v.Validate(&model.StoreEmbeddingRequest{EmbeddingID: "a", Embedding: []float64{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text: field required")
	assert.Contains(t, err.Error(), "embedding: must have at least 1")
}

func TestRunShutsDownOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := listener.Addr().String()
	require.NoError(t, listener.Close())

	s := New(Options{ServiceName: "api", Address: address, ShutdownTimeout: time.Second})
	closed := make(chan string, 2)
	s.OnShutdown("first", func(context.Context) error { closed <- "first"; return nil })
	s.OnShutdown("second", func(context.Context) error { closed <- "second"; return errors.New("close failed") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + address + "/metrics")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorContains(t, err, "close failed")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, "second", <-closed)
	assert.Equal(t, "first", <-closed)
}
