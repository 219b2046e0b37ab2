package apiclient

import (
	"os"
	"strings"
)

// ServiceURL returns {baseURL}/{service}. An empty baseURL falls back to API_GATEWAY_URL.
func ServiceURL(service, baseURL string) (string, error) {
	if baseURL == "" {
		baseURL = os.Getenv("API_GATEWAY_URL")
	}
	if baseURL == "" {
		return "", ErrMissingBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + service, nil
}
