package model

// InterServiceResponse wraps the JSON body another service returned, whatever its status.
type InterServiceResponse struct {
	ServiceResponse map[string]any `json:"service_response"`
	StatusCode      int            `json:"status_code" example:"200"`
	ResponseTimeMs  float64        `json:"response_time_ms" example:"12.34"`
	TargetURL       string         `json:"target_url" example:"https://example.com/health"`
}

// ApiHealthResponse is the result of calling the API service health endpoint.
type ApiHealthResponse struct {
	ApiResponse    map[string]any `json:"api_response"`
	StatusCode     int            `json:"status_code" example:"200"`
	ResponseTimeMs float64        `json:"response_time_ms" example:"8.1"`
}
