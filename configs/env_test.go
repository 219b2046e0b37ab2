package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsesServiceDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("VECTOR_BUCKET_NAME", "")
	t.Setenv("HTTP_TIMEOUT", "")

	s, err := Load(Defaults{Name: "s3vector", Version: "1.0.0", Port: 8000})
	require.NoError(t, err)

	assert.Equal(t, "s3vector", s.ServiceName)
	assert.Equal(t, "1.0.0", s.ServiceVersion)
	assert.Equal(t, 8000, s.Port)
	assert.Equal(t, ":8000", s.Address())
	assert.Equal(t, 30*time.Second, s.HTTPTimeout)
	assert.Equal(t, "amazon.titan-embed-text-v2:0", s.AWS.BedrockModelID)
	assert.Empty(t, s.AWS.VectorBucketName)
	assert.True(t, s.APIKeyCacheEnabled)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVICE_NAME", "runner")
	t.Setenv("PORT", "9001")
	t.Setenv("HTTP_TIMEOUT", "2.5")
	t.Setenv("HTTP_MAX_RETRIES", "5")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("ENABLE_TRACING", "false")
	t.Setenv("CONTEXT_PATH", "/runner/")

	s, err := Load(Defaults{Name: "ignored", Port: 8080})
	require.NoError(t, err)

	assert.Equal(t, "runner", s.ServiceName)
	assert.Equal(t, 9001, s.Port)
	assert.Equal(t, 2500*time.Millisecond, s.HTTPTimeout)
	assert.Equal(t, 5, s.HTTPMaxRetries)
	assert.Equal(t, "/runner", s.ContextPath)
	assert.True(t, s.Redis.Enabled())
	assert.Equal(t, "cache:6379", s.Redis.Addr())
	assert.False(t, s.Tracing.Enabled)
}

func TestLoadDotEnvAndPropertiesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("PROPERTIES_FILE_PATH", filepath.Join(dir, "override.yml"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AGSYS_TEST_BUCKET=from-dotenv\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "override.yml"),
		[]byte("aws:\n  s3:\n    vector-bucket: ${AGSYS_TEST_BUCKET:none}\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("AGSYS_TEST_BUCKET") })

	s, err := Load(Defaults{Name: "vector", Port: 8000})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", s.AWS.VectorBucketName)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "70000")

	_, err := Load(Defaults{Name: "api", Port: 8000})
	assert.Error(t, err)
}
