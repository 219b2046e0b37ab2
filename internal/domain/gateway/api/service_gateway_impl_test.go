package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"agsys/pkg/apiclient"
	pkghttp "agsys/pkg/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSecret string

func (s staticSecret) GetSecretValue(context.Context, *secretsmanager.GetSecretValueInput, ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(string(s))}, nil
}

func TestServiceGatewayReturnsAnyStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(apiclient.APIKeyHeader))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"status":"teapot"}`))
	}))
	defer server.Close()

	gateway := NewServiceGateway(pkghttp.NewHttpClient("", pkghttp.ClientOptions{}))
	response, err := gateway.Get(context.Background(), server.URL+"/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, response.StatusCode)
	assert.JSONEq(t, `{"status":"teapot"}`, string(response.Body))
}

func TestServiceGatewayTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewServiceGateway(pkghttp.NewHttpClient("", pkghttp.ClientOptions{})).Get(context.Background(), url)
	assert.Error(t, err)
}

func TestAuthenticatedServiceGatewayInjectsKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.Header.Get(apiclient.APIKeyHeader))
		assert.Equal(t, "/runner/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer server.Close()

	client, err := apiclient.New(staticSecret("secret-key"), apiclient.Options{
		ServiceName: "api",
		ProjectName: "agsys",
		Environment: "dev",
		BaseURL:     server.URL,
	})
	require.NoError(t, err)
	defer client.Close()

	response, err := NewAuthenticatedServiceGateway(client).Get(context.Background(), server.URL+"/runner/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
}
