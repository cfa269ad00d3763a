package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"freekassa/client"
	"freekassa/msync"

	"github.com/google/uuid"
	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
)

const requestIdHeader = "X-Request-Id"

// HttpClient sends key/value parameters as a query string and returns the
// raw response. One fast-shot client is built per origin and reused.
type HttpClient struct {
	timeout time.Duration
	clients *msync.MuMap[string, fastshot.ClientHttpMethods]
}

func NewHttpClient(timeout time.Duration) *HttpClient {
	return &HttpClient{
		timeout: timeout,
		clients: msync.NewMuMap[string, fastshot.ClientHttpMethods](),
	}
}

func (c *HttpClient) Post(ctx context.Context, rawUrl string, params map[string]string) (*client.Response, error) {
	return c.Send(ctx, http.MethodPost, rawUrl, params)
}

func (c *HttpClient) Get(ctx context.Context, rawUrl string, params map[string]string) (*client.Response, error) {
	return c.Send(ctx, http.MethodGet, rawUrl, params)
}

// Send performs one request. A non-2xx status yields *StatusError, a failed
// round trip yields *NetworkError. Nothing is retried.
func (c *HttpClient) Send(ctx context.Context, method string, rawUrl string, params map[string]string) (*client.Response, error) {
	curl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", rawUrl, err)
	}
	if curl.Scheme == "" || curl.Host == "" {
		return nil, fmt.Errorf("url %q is not absolute", rawUrl)
	}
	origin := curl.Scheme + "://" + curl.Host
	path := curl.EscapedPath()
	if path == "" {
		path = "/"
	}

	query := make(map[string]string, len(params))
	for key, values := range curl.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}
	for key, value := range params {
		query[key] = value
	}

	httpClient := c.clients.GetOrCreate(origin, func() fastshot.ClientHttpMethods {
		return c.build(origin)
	})
	req, err := newRequest(httpClient, method, path)
	if err != nil {
		return nil, err
	}

	requestId := uuid.NewString()
	target := origin + path
	slog.Debug("[HttpClient] Sending request", "method", method, "url", target, "request_id", requestId)

	fastResp, err := req.
		Context().Set(ctx).
		Header().Add(requestIdHeader, requestId).
		Query().AddParams(query).
		Send()
	if err != nil {
		slog.Warn("[HttpClient] Request failed", "method", method, "url", target, "request_id", requestId, "error", err)
		return nil, &NetworkError{Method: method, URL: target, Err: err}
	}

	body, err := fastResp.Body().AsString()
	if err != nil {
		return nil, &NetworkError{Method: method, URL: target, Err: err}
	}
	code := fastResp.Status().Code()
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		slog.Warn("[HttpClient] Unexpected status", "method", method, "url", target, "request_id", requestId, "status", code)
		return nil, &StatusError{Method: method, URL: target, Code: code, Body: []byte(body)}
	}

	slog.Debug("[HttpClient] Received response", "request_id", requestId, "status", code, "size", len(body))
	return &client.Response{StatusCode: code, Body: []byte(body)}, nil
}

func (c *HttpClient) build(origin string) fastshot.ClientHttpMethods {
	builder := fastshot.NewClient(origin).
		Header().AddAccept(mime.JSON)
	if c.timeout > 0 {
		builder = builder.Config().SetTimeout(c.timeout)
	}
	return builder.Build()
}

func newRequest(httpClient fastshot.ClientHttpMethods, method string, path string) (*fastshot.RequestBuilder, error) {
	switch method {
	case http.MethodGet:
		return httpClient.GET(path), nil
	case http.MethodPost:
		return httpClient.POST(path), nil
	case http.MethodPut:
		return httpClient.PUT(path), nil
	case http.MethodDelete:
		return httpClient.DELETE(path), nil
	default:
		return nil, fmt.Errorf("unsupported http method %q", method)
	}
}
