package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL        string
	client         *http.Client
	defaultHeaders map[string]string
	backoff        *BackoffConfig
	logger         HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// Backoff is the default retry policy. Nil disables retries.
	Backoff *BackoffConfig
	// Logger receives request lifecycle callbacks. Nil disables request logging.
	Logger HTTPLogger
	// Tracing wraps the transport with OpenTelemetry propagation and client spans.
	Tracing bool
	// Transport replaces the pooled default transport.
	Transport http.RoundTripper
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the response body into dest. Bodies declaring a charset other than UTF-8 in
// their Content-Type are transcoded first.
func (r *Response) JSON(dest any) error {
	label := responseCharset(r.Header.Get("Content-Type"))
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return json.Unmarshal(r.Body, dest)
	}

	reader, err := charset.NewReaderLabel(label, bytes.NewReader(r.Body))
	if err != nil {
		return fmt.Errorf("unsupported response charset %q: %w", label, err)
	}
	return json.NewDecoder(reader).Decode(dest)
}

func responseCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(params["charset"])
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.IdleConnTimeout == 0 {
		opts.IdleConnTimeout = 90 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        opts.MaxIdleConns,
			MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
			IdleConnTimeout:     opts.IdleConnTimeout,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		}
	}
	if opts.Tracing {
		transport = otelhttp.NewTransport(transport)
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		client:         client,
		defaultHeaders: opts.DefaultHeaders,
		backoff:        opts.Backoff,
		logger:         opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Close releases idle connections held by the transport.
func (hc *Client) Close() {
	hc.client.CloseIdleConnections()
}

// Send executes a request and returns the raw response whatever its status.
// Only transport failures and cancellations are returned as errors.
func (hc *Client) Send(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any) (*Response, error) {
	return hc.send(ctx, method, path, queryParams, headers, body, hc.backoff)
}

// encodeBody marshals body once so every retry attempt can replay it.
func (hc *Client) encodeBody(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch body := body.(type) {
	case string:
		return []byte(body), "text/plain", nil
	case []byte:
		return body, "application/octet-stream", nil
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
	}
	return jsonBody, "application/json", nil
}

func (hc *Client) newRequest(ctx context.Context, method, target string, headers map[string]string, payload []byte, contentType string) (*http.Request, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (hc *Client) execute(req *http.Request) (*Response, error) {
	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: bodyBytes}, nil
}

// buildURL joins path to the base URL. Absolute http(s) URLs are used as given.
func (hc *Client) buildURL(path string, queryParams map[string]string) string {
	target := path
	if !isAbsoluteURL(path) {
		if path != "" && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		target = hc.baseURL + path
	}

	if len(queryParams) == 0 {
		return target
	}

	separator := "?"
	if strings.Contains(target, "?") {
		separator = "&"
	}
	return target + separator + buildQueryString(queryParams)
}

func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// buildQueryString builds an encoded query string from parameters
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
