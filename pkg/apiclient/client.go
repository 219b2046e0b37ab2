// Package apiclient calls other services through the API gateway, authenticating each request
// with this service's API key. The key lives in Secrets Manager at
// {project}/{environment}/{service}/api-key and is cached in memory until invalidated.
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	pkghttp "agsys/pkg/http"
	"agsys/pkg/log"
	"agsys/pkg/msg"
)

const (
	// APIKeyHeader is the header the gateway reads the key from.
	APIKeyHeader   = "x-api-key"
	defaultTimeout = 30 * time.Second
)

var (
	ErrMissingProjectName = errors.New("project name must be provided or set via PROJECT_NAME environment variable")
	ErrMissingEnvironment = errors.New("environment must be provided or set via ENVIRONMENT environment variable")
	ErrMissingBaseURL     = errors.New("base URL not provided and API_GATEWAY_URL environment variable not set")
	ErrInvalidSecret      = errors.New("invalid response from Secrets Manager")
	ErrAPIKeyNotFound     = errors.New("API key not found in Secrets Manager")
)

// SecretsAPI is the part of the Secrets Manager client used to resolve API keys.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Options configures a Client. Empty ProjectName, Environment and BaseURL fall back to
// the PROJECT_NAME, ENVIRONMENT and API_GATEWAY_URL environment variables.
type Options struct {
	ServiceName     string
	ProjectName     string
	Environment     string
	BaseURL         string
	Timeout         time.Duration
	DisableKeyCache bool
	MaxRetries      int
	Tracing         bool
	Transport       http.RoundTripper
}

// Response is the raw upstream response. Any HTTP status is returned as a Response.
type Response = pkghttp.Response

// Client is safe for concurrent use.
type Client struct {
	serviceName string
	projectName string
	environment string
	baseURL     string
	cacheKey    bool

	secrets SecretsAPI
	http    *pkghttp.Client

	mu        sync.RWMutex
	cachedKey string
}

// New validates opts and builds a Client. No secret is fetched until the first request.
func New(secrets SecretsAPI, opts Options) (*Client, error) {
	if opts.ProjectName == "" {
		opts.ProjectName = os.Getenv("PROJECT_NAME")
	}
	if opts.Environment == "" {
		opts.Environment = os.Getenv("ENVIRONMENT")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = os.Getenv("API_GATEWAY_URL")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	if opts.ProjectName == "" {
		return nil, ErrMissingProjectName
	}
	if opts.Environment == "" {
		return nil, ErrMissingEnvironment
	}
	if secrets == nil {
		return nil, errors.New("secrets client is required")
	}

	clientOpts := pkghttp.ClientOptions{
		FollowRedirect:      true,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		ReadTimeout:         opts.Timeout,
		ConnectionTimeout:   opts.Timeout,
		Logger:              pkghttp.ZapLogger{},
		Tracing:             opts.Tracing,
		Transport:           opts.Transport,
	}
	if opts.MaxRetries > 0 {
		clientOpts.Backoff = pkghttp.NewBackoffConfig(opts.MaxRetries)
	}

	return &Client{
		serviceName: opts.ServiceName,
		projectName: opts.ProjectName,
		environment: opts.Environment,
		baseURL:     opts.BaseURL,
		cacheKey:    !opts.DisableKeyCache,
		secrets:     secrets,
		http:        pkghttp.NewHttpClient(opts.BaseURL, clientOpts),
	}, nil
}

// SecretName is the Secrets Manager id holding this service's API key.
func (c *Client) SecretName() string {
	return fmt.Sprintf("%s/%s/%s/api-key", c.projectName, c.environment, c.serviceName)
}

// BaseURL is the gateway URL relative paths are joined to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIKey returns the cached key or fetches it from Secrets Manager.
func (c *Client) APIKey(ctx context.Context) (string, error) {
	if c.cacheKey {
		c.mu.RLock()
		key := c.cachedKey
		c.mu.RUnlock()
		if key != "" {
			log.Debug(msg.GetMessage("apikey.cache-hit", c.SecretName()))
			return key, nil
		}
	}

	secretName := c.SecretName()
	out, err := c.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(secretName)})
	if err != nil {
		return "", c.mapSecretError(secretName, err)
	}
	if out == nil || out.SecretString == nil {
		return "", fmt.Errorf("%w for %s", ErrInvalidSecret, secretName)
	}

	key := aws.ToString(out.SecretString)
	if c.cacheKey {
		c.mu.Lock()
		c.cachedKey = key
		c.mu.Unlock()
	}
	log.Info(msg.GetMessage("apikey.fetched", secretName), zap.String("secret", secretName))
	return key, nil
}

func (c *Client) mapSecretError(secretName string, err error) error {
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		log.Error(msg.GetMessage("apikey.not-found", secretName), zap.String("secret", secretName))
		return fmt.Errorf("%w: %s. Make sure service API keys are enabled for this environment", ErrAPIKeyNotFound, secretName)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorCode() == "ResourceNotFoundException" {
			log.Error(msg.GetMessage("apikey.not-found", secretName), zap.String("secret", secretName))
			return fmt.Errorf("%w: %s. Make sure service API keys are enabled for this environment", ErrAPIKeyNotFound, secretName)
		}
		log.Error(msg.GetMessage("apikey.fetch-error", secretName, apiErr.ErrorCode()), zap.String("secret", secretName))
		return fmt.Errorf("failed to retrieve API key from Secrets Manager: %s: %w", apiErr.ErrorCode(), err)
	}

	log.Error(msg.GetMessage("apikey.fetch-error", secretName, err), zap.String("secret", secretName), zap.Error(err))
	return fmt.Errorf("failed to retrieve API key from Secrets Manager: %w", err)
}

// InvalidateAPIKey drops the cached key so the next request fetches it again.
func (c *Client) InvalidateAPIKey() {
	c.mu.Lock()
	c.cachedKey = ""
	c.mu.Unlock()
	log.Info(msg.GetMessage("apikey.invalidated", c.SecretName()))
}

// headers copies the caller's headers and adds the API key.
func (c *Client) headers(ctx context.Context, headers map[string]string) (map[string]string, error) {
	key, err := c.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		result[k] = v
	}
	result[APIKeyHeader] = key
	return result, nil
}

func (c *Client) do(ctx context.Context, method, url string, params map[string]string, body any, headers map[string]string) (*Response, error) {
	withKey, err := c.headers(ctx, headers)
	if err != nil {
		return nil, err
	}
	return c.http.Send(ctx, method, url, params, withKey, body)
}

// Get sends an authenticated GET. url may be absolute or relative to the base URL.
func (c *Client) Get(ctx context.Context, url string, params map[string]string, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, params, nil, headers)
}

// Post sends an authenticated POST with body encoded as JSON.
func (c *Client) Post(ctx context.Context, url string, body any, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodPost, url, nil, body, headers)
}

// Put sends an authenticated PUT with body encoded as JSON.
func (c *Client) Put(ctx context.Context, url string, body any, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodPut, url, nil, body, headers)
}

// Delete sends an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, url, nil, nil, headers)
}

// Close releases idle connections. The client stays usable.
func (c *Client) Close() {
	c.http.Close()
}
