package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agsys/internal/application/controller"
	"agsys/internal/application/server"
	"agsys/internal/domain/entity"
	"agsys/internal/domain/gateway/api"
	"agsys/internal/domain/model"
	"agsys/internal/domain/usecase/embedding"
	"agsys/internal/domain/usecase/events"
	"agsys/internal/domain/usecase/greeting"
	"agsys/internal/domain/usecase/health"
	"agsys/internal/domain/usecase/interservice"
	pkghttp "agsys/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer() *server.Server {
	return server.New(server.Options{ServiceName: "test", Address: ":0"})
}

func do(t *testing.T, srv *server.Server, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, controller.StatusOf(model.NewError(model.ErrNotFound, nil, "x")))
	assert.Equal(t, http.StatusServiceUnavailable, controller.StatusOf(model.ErrUnavailable))
	assert.Equal(t, http.StatusBadRequest, controller.StatusOf(model.ErrBadRequest))
	assert.Equal(t, http.StatusUnprocessableEntity, controller.StatusOf(model.ErrValidation))
	assert.Equal(t, http.StatusInternalServerError, controller.StatusOf(errors.New("boom")))
}

func TestHealthRoutes(t *testing.T) {
	srv := newServer()
	useCase := health.NewHealthUseCase(health.Options{
		Info:      model.ServiceInfo{Name: "s3vector", Version: "1.0.0", Environment: "dev"},
		Readiness: []health.ReadinessCheck{health.BucketConfigured("")},
	})
	controller.NewHealthController(srv.API(), useCase).InitHealthRoutes()

	rec, body := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "s3vector", body["name"])

	_, body = do(t, srv, http.MethodGet, "/liveness", "")
	assert.Equal(t, "alive", body["status"])

	rec, body = do(t, srv, http.MethodGet, "/readiness", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "S3 bucket not configured", body["detail"])
	assert.Equal(t, "Service Unavailable", body["error"])

	_, body = do(t, srv, http.MethodGet, "/status", "")
	assert.Equal(t, "dev", body["environment"])
}

func TestGreetingRoutes(t *testing.T) {
	srv := newServer()
	controller.NewGreetingController(srv.API(), greeting.NewGreetingUseCase("api", "0.1.0", ""), false).InitGreetingRoutes()

	_, body := do(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, "Hello, World!", body["message"])
	assert.Equal(t, "0.1.0", body["version"])

	_, body = do(t, srv, http.MethodGet, "/greet?name=Alice", "")
	assert.Equal(t, "Hello, Alice!", body["message"])

	_, body = do(t, srv, http.MethodGet, "/greet", "")
	assert.Equal(t, "Hello, World!", body["message"])

	_, body = do(t, srv, http.MethodGet, "/greet?name=", "")
	assert.Equal(t, "Hello, !", body["message"])

	rec, body := do(t, srv, http.MethodPost, "/greet", `{"name":"Bob"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, Bob!", body["message"])

	rec, body = do(t, srv, http.MethodPost, "/greet", `{"name":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body["detail"], "name")

	rec, _ = do(t, srv, http.MethodPost, "/greet", `{"name":`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, body = do(t, srv, http.MethodGet, "/error", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "This is a test error", body["detail"])
}

func TestWelcomeRootOnPrefixedGroup(t *testing.T) {
	srv := newServer()
	useCase := greeting.NewGreetingUseCase("vector", "1.0.0", "")
	controller.NewGreetingController(srv.API(), useCase, true).InitGreetingRoutes()
	controller.NewGreetingController(srv.Group("/vector"), useCase, true).InitGreetingRoutes()

	for _, target := range []string{"/", "/vector", "/vector/"} {
		rec, body := do(t, srv, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "Welcome to vector service", body["message"], target)
	}
}

func TestInterServiceRoutes(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer upstream.Close()

	srv := newServer()
	gateway := api.NewServiceGateway(pkghttp.NewHttpClient("", pkghttp.ClientOptions{}))
	useCase := interservice.NewInterServiceUseCase(interservice.Options{Direct: gateway, APIService: gateway, APIServiceURL: upstream.URL})
	interServiceController := controller.NewInterServiceController(srv.API(), useCase)
	interServiceController.InitInterServiceRoutes()
	interServiceController.InitAPIHealthRoutes()
	interServiceController.InitServiceHealthRoutes()

	rec, body := do(t, srv, http.MethodGet, "/inter-service?service_url="+upstream.URL+"/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(http.StatusAccepted), body["status_code"])
	assert.Equal(t, upstream.URL+"/health", body["target_url"])

	rec, _ = do(t, srv, http.MethodGet, "/inter-service", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = do(t, srv, http.MethodGet, "/inter-service?service_url=x&authenticated=maybe", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, body = do(t, srv, http.MethodGet, "/inter-service?service_url=http://127.0.0.1:1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, body["detail"], "Failed to reach service at http://127.0.0.1:1/health: ")

	rec, body = do(t, srv, http.MethodGet, "/api-health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["api_response"].(map[string]any)["status"])

	rec, _ = do(t, srv, http.MethodGet, "/services/runner/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

type stubEmbeddings struct{}

func (stubEmbeddings) Embed(context.Context, string) ([]float64, error) { return []float64{0.1, 0.2}, nil }

func (stubEmbeddings) ModelID() string { return "amazon.titan-embed-text-v2:0" }

type mapStore map[string]entity.EmbeddingDocument

func (m mapStore) Put(_ context.Context, doc entity.EmbeddingDocument) (string, error) {
	m[doc.ID] = doc
	return entity.EmbeddingKey(doc.ID), nil
}

func (m mapStore) Get(_ context.Context, id string) (*entity.EmbeddingDocument, error) {
	doc, ok := m[id]
	if !ok {
		return nil, model.NewError(model.ErrNotFound, nil, "Embedding not found: %s", id)
	}
	return &doc, nil
}

func (m mapStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m[id]
	return ok, nil
}

func (m mapStore) Delete(_ context.Context, id string) error {
	delete(m, id)
	return nil
}

func (m mapStore) Bucket() string { return "vectors" }

func TestEmbeddingRoutes(t *testing.T) {
	srv := newServer()
	useCase := embedding.NewEmbeddingUseCase(embedding.Options{Embeddings: stubEmbeddings{}, Store: mapStore{}})
	controller.NewEmbeddingController(srv.API(), useCase).InitEmbeddingRoutes()

	rec, body := do(t, srv, http.MethodPost, "/embeddings/generate", `{"text":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["dimension"])
	assert.Nil(t, body["s3_key"])

	rec, _ = do(t, srv, http.MethodPost, "/embeddings/generate", `{"text":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, body = do(t, srv, http.MethodPost, "/embeddings/generate", `{"text":"hello","store_in_s3":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "embedding_id required when store_in_s3=true", body["detail"])

	rec, body = do(t, srv, http.MethodPost, "/embeddings/store", `{"embedding_id":"doc-1","text":"hello","embedding":[1,2,3]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "embeddings/doc-1.json", body["s3_key"])
	assert.Equal(t, "vectors", body["bucket"])

	rec, _ = do(t, srv, http.MethodPost, "/embeddings/store", `{"embedding_id":"doc-1","text":"hello","embedding":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, body = do(t, srv, http.MethodGet, "/embeddings/doc-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["dimension"])

	rec, body = do(t, srv, http.MethodDelete, "/embeddings/doc-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Embedding doc-1 successfully deleted", body["message"])

	rec, body = do(t, srv, http.MethodGet, "/embeddings/doc-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Embedding not found: doc-1", body["detail"])
}

func TestEmbeddingRoutesWithoutBucket(t *testing.T) {
	srv := newServer()
	controller.NewEmbeddingController(srv.API(), embedding.NewEmbeddingUseCase(embedding.Options{Embeddings: stubEmbeddings{}})).InitEmbeddingRoutes()

	rec, body := do(t, srv, http.MethodGet, "/embeddings/doc-1", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "S3 bucket not configured", body["detail"])
}

func TestEventsRoutes(t *testing.T) {
	srv := newServer()
	useCase := events.NewEventsUseCase("embedding-events")
	require.NoError(t, useCase.Record(context.Background(), model.EmbeddingEvent{Type: model.EmbeddingStored, EmbeddingID: "doc-1"}))
	controller.NewEventsController(srv.API(), useCase).InitEventsRoutes()

	rec, body := do(t, srv, http.MethodGet, "/events/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "embedding-events", body["queue"])
	assert.Equal(t, float64(1), body["processed"])
}
