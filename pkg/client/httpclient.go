package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"myroom/pkg/logger"
)

// Observer receives one call per upstream request. Status is 0 when the
// request never produced a response.
type Observer interface {
	ObserveUpstream(operation string, status int, duration time.Duration)
}

type HttpClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Observer   Observer
	log        *logger.Logger
}

func NewHttpClient(baseURL string, timeout time.Duration, log *logger.Logger) *HttpClient {
	return &HttpClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type Response struct {
	*http.Response
	Body []byte
}

func (r *Response) DecodeJSON(target any) error {
	return json.Unmarshal(r.Body, target)
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (c *HttpClient) GET(ctx context.Context, operation, path string) (*Response, error) {
	return c.request(ctx, operation, http.MethodGet, path, nil)
}

func (c *HttpClient) POST(ctx context.Context, operation, path string, body any) (*Response, error) {
	return c.request(ctx, operation, http.MethodPost, path, body)
}

func (c *HttpClient) request(ctx context.Context, operation, method, path string, body any) (*Response, error) {
	var reqBody io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	return c.do(ctx, operation, method, path, reqBody)
}

func (c *HttpClient) do(ctx context.Context, operation, method, path string, reqBody io.Reader) (*Response, error) {
	url := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.observe(operation, 0, start)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	c.observe(operation, resp.StatusCode, start)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.Debug("Upstream request completed",
		"operation", operation,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Response{
		Response: resp,
		Body:     respBody,
	}, nil
}

func (c *HttpClient) observe(operation string, status int, start time.Time) {
	if c.Observer != nil {
		c.Observer.ObserveUpstream(operation, status, time.Since(start))
	}
}

// call issues the request, turns any failure into an *APIError and decodes a
// successful body into out when out is not nil.
func (c *HttpClient) call(ctx context.Context, operation, method, path string, body, out any) error {
	resp, err := c.request(ctx, operation, method, path, body)
	if err != nil {
		c.log.Error("Upstream request failed",
			"operation", operation,
			"path", path,
			"error", err,
		)
		return &APIError{Message: err.Error(), Err: err}
	}

	if !resp.IsSuccess() {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: ErrorMessage(resp.StatusCode, resp.Body),
		}
		c.log.Warn("Upstream returned an error",
			"operation", operation,
			"path", path,
			"status", resp.StatusCode,
			"message", apiErr.Message,
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := resp.DecodeJSON(out); err != nil {
		return &APIError{
			Status:  resp.StatusCode,
			Message: "invalid response body",
			Err:     fmt.Errorf("%w: %v", ErrInvalidResponse, err),
		}
	}
	return nil
}
