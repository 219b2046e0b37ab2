package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agsys/internal/domain/model"
)

func TestEmbeddingEventsWithoutQueue(t *testing.T) {
	application := newTestApp(t)
	application.Settings.AWS.EmbeddingEventsQueue = ""

	healthOpts := application.HealthOptions()
	require.NoError(t, application.EmbeddingEvents(context.Background(), &healthOpts))

	require.Contains(t, healthOpts.Components, "queue")
	assert.Equal(t, model.StatusUnknown, healthOpts.Components["queue"](context.Background()).Status)

	rec := httptest.NewRecorder()
	application.Server.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats model.EventStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Zero(t, stats.Processed)
	assert.Zero(t, stats.Failed)
}
