package model

// HealthStatus represents the possible health status values of a component
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse is returned by GET /health. Status is always "healthy" when the process answers;
// component problems surface in Components and in the readiness probe.
type HealthResponse struct {
	Status            string                           `json:"status" example:"healthy"`
	Timestamp         string                           `json:"timestamp" example:"2025-01-01T00:00:00Z"`
	UptimeSeconds     float64                          `json:"uptime_seconds" example:"12.5"`
	Name              string                           `json:"name" example:"api"`
	Version           string                           `json:"version" example:"0.1.0"`
	BedrockConfigured *bool                            `json:"bedrock_configured,omitempty"`
	S3Configured      *bool                            `json:"s3_configured,omitempty"`
	Components        map[string]ComponentHealthStatus `json:"components,omitempty"`
}

// StatusResponse is the body of the liveness and readiness probes.
type StatusResponse struct {
	Status string `json:"status" example:"alive"`
}

// ServiceInfo describes the running service.
type ServiceInfo struct {
	Name        string `json:"name" example:"runner"`
	Version     string `json:"version" example:"1.0.0"`
	Environment string `json:"environment" example:"dev"`
	Description string `json:"description,omitempty" example:"runner service"`
}
