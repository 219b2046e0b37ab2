package configs

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"agsys/pkg/resource"
)

//go:embed application.yml
var applicationYAML []byte

// Defaults carries the per-service values used when the environment does not provide them.
type Defaults struct {
	Name        string
	Version     string
	Description string
	Port        int
}

// Settings is the resolved configuration of one service process.
type Settings struct {
	ServiceName        string
	ServiceVersion     string
	ServiceDescription string
	Environment        string
	ProjectName        string

	Port            int
	ContextPath     string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	HTTPTimeout    time.Duration
	HTTPMaxRetries int

	APIGatewayURL string
	APIServiceURL string

	APIKeyCacheEnabled bool
	APIKeyRefreshCron  string

	AWS     AWSSettings
	Redis   RedisSettings
	Tracing TracingSettings
}

type AWSSettings struct {
	Region               string
	Endpoint             string
	AccessKeyID          string
	SecretAccessKey      string
	BedrockModelID       string
	VectorBucketName     string
	EmbeddingEventsQueue string
	SQSWaitTimeSeconds   int32
	SQSMaxMessages       int32
}

type RedisSettings struct {
	Host              string
	Port              int
	Password          string
	DB                int
	EmbeddingCacheTTL time.Duration
}

// Enabled reports whether a Redis host was configured.
func (r RedisSettings) Enabled() bool {
	return r.Host != ""
}

// Addr returns host:port.
func (r RedisSettings) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type TracingSettings struct {
	Enabled      bool
	OTLPEndpoint string
}

// Load builds the Settings of a service. Sources, lowest priority first: the embedded
// application.yml, the file named by PROPERTIES_FILE_PATH, then process environment
// variables (optionally seeded from a .env file in the working directory).
func Load(defaults Defaults) (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if err := resource.Read(v, bytes.NewReader(applicationYAML)); err != nil {
		return nil, err
	}
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok && path != "" {
		if err := resource.Load(v, path); err != nil {
			return nil, err
		}
	}

	return fromViper(v, defaults)
}

func fromViper(v *viper.Viper, defaults Defaults) (*Settings, error) {
	s := &Settings{
		ServiceName:        stringOrDefault(v, "app.name", defaults.Name),
		ServiceVersion:     stringOrDefault(v, "app.version", defaults.Version),
		ServiceDescription: stringOrDefault(v, "app.description", defaults.Description),
		Environment:        stringOrDefault(v, "app.environment", "dev"),
		ProjectName:        v.GetString("app.project"),
		Port:               v.GetInt("app.server.port"),
		ContextPath:        strings.TrimRight(v.GetString("app.server.context-path"), "/"),
		ShutdownTimeout:    v.GetDuration("app.server.shutdown-timeout"),
		LogLevel:           stringOrDefault(v, "app.log.level", "INFO"),
		LogFormat:          stringOrDefault(v, "app.log.format", "json"),
		HTTPTimeout:        seconds(v.GetString("app.http.timeout"), 30*time.Second),
		HTTPMaxRetries:     v.GetInt("app.http.max-retries"),
		APIGatewayURL:      v.GetString("app.services.api-gateway-url"),
		APIServiceURL:      strings.TrimRight(v.GetString("app.services.api-service-url"), "/"),
		APIKeyCacheEnabled: v.GetBool("app.api-key.cache-enabled"),
		APIKeyRefreshCron:  v.GetString("app.api-key.refresh-cron"),
		AWS: AWSSettings{
			Region:               stringOrDefault(v, "aws.region", "us-east-1"),
			Endpoint:             v.GetString("aws.endpoint"),
			AccessKeyID:          v.GetString("aws.access-key-id"),
			SecretAccessKey:      v.GetString("aws.secret-access-key"),
			BedrockModelID:       v.GetString("aws.bedrock.model-id"),
			VectorBucketName:     v.GetString("aws.s3.vector-bucket"),
			EmbeddingEventsQueue: v.GetString("aws.sqs.embedding-events-queue"),
			SQSWaitTimeSeconds:   v.GetInt32("aws.sqs.wait-time-seconds"),
			SQSMaxMessages:       v.GetInt32("aws.sqs.max-messages"),
		},
		Redis: RedisSettings{
			Host:              v.GetString("redis.host"),
			Port:              v.GetInt("redis.port"),
			Password:          v.GetString("redis.password"),
			DB:                v.GetInt("redis.db"),
			EmbeddingCacheTTL: v.GetDuration("redis.embedding-cache-ttl"),
		},
		Tracing: TracingSettings{
			Enabled:      v.GetBool("tracing.enabled"),
			OTLPEndpoint: v.GetString("tracing.otlp-endpoint"),
		},
	}

	if s.Port == 0 {
		s.Port = defaults.Port
	}
	if s.ShutdownTimeout <= 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
	if s.HTTPMaxRetries < 0 {
		s.HTTPMaxRetries = 0
	}

	if s.ServiceName == "" {
		return nil, errors.New("service name is required (SERVICE_NAME)")
	}
	if s.Port <= 0 || s.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", s.Port)
	}
	return s, nil
}

// Address returns the listen address for the HTTP server.
func (s *Settings) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

func stringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// seconds accepts Go durations ("30s") and bare numbers of seconds ("30", "2.5").
func seconds(value string, defaultValue time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	var f float64
	if _, err := fmt.Sscanf(value, "%g", &f); err == nil && f > 0 {
		return time.Duration(f * float64(time.Second))
	}
	return defaultValue
}
