package http

import (
	"context"
	"fmt"
)

// RequestMethod represents the HTTP method for the request.
type RequestMethod string

const (
	GET    RequestMethod = "GET"
	POST   RequestMethod = "POST"
	PATCH  RequestMethod = "PATCH"
	PUT    RequestMethod = "PUT"
	DELETE RequestMethod = "DELETE"
)

// Request represents an HTTP request with various configuration options.
type Request struct {
	requestClient  *Client
	requestContext context.Context
	requestMethod  RequestMethod
	requestPath    string
}

// NewHttpClientRequest creates a new Request object with the given client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		requestClient:  client,
		requestContext: context.Background(),
		requestMethod:  GET,
		requestPath:    "/",
	}
}

// WithContext sets the context that bounds the request and its retries.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.requestContext = ctx
	return r
}

// WithMethod sets the HTTP method for the request.
func (r *Request) WithMethod(method RequestMethod) *Request {
	r.requestMethod = method
	return r
}

// WithPath sets the path for the request. Absolute URLs bypass the client base URL.
func (r *Request) WithPath(path string) *Request {
	r.requestPath = path
	return r
}

func (r *Request) validate() error {
	if r.requestClient == nil {
		return fmt.Errorf("client is required")
	}
	if r.requestMethod == "" {
		return fmt.Errorf("method is required")
	}
	if r.requestPath == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// Do sends the request and returns the raw response whatever its status.
func (r *Request) Do() (*Response, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	return r.requestClient.send(
		r.requestContext,
		string(r.requestMethod),
		r.requestPath,
		nil,
		nil,
		nil,
		r.requestClient.backoff,
	)
}
