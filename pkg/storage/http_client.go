package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/imroc/req/v3"
)

const (
	accessKeyHeader = "AccessKey"
	userAgent       = "bunnysync/0.1.0"
)

// HTTPClient talks to the bunny.net Edge Storage API. Every request carries
// the zone API key in the AccessKey header.
type HTTPClient struct {
	client *req.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client against the given regional endpoint.
func NewHTTPClient(endpoint, apiKey string) *HTTPClient {
	client := req.C().
		SetBaseURL(endpoint).
		SetUserAgent(userAgent).
		SetCommonHeader(accessKeyHeader, apiKey)

	return &HTTPClient{client: client}
}

// ListObjects returns the immediate children of one pseudo-directory.
func (h *HTTPClient) ListObjects(ctx context.Context, path string) ([]Object, error) {
	var objects []Object
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetSuccessResult(&objects).
		Get(requestPath(path))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	if err := checkStatus(resp, path); err != nil {
		return nil, err
	}
	return objects, nil
}

// GetObject downloads the object at path.
func (h *HTTPClient) GetObject(ctx context.Context, path string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		Get(requestPath(path))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	if err := checkStatus(resp, path); err != nil {
		return nil, err
	}
	return resp.Bytes(), nil
}

// PutObject uploads data to path, replacing any existing object.
func (h *HTTPClient) PutObject(ctx context.Context, path string, data []byte) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetContentType("application/octet-stream").
		SetBodyBytes(data).
		Put(requestPath(path))
	if err != nil {
		return fmt.Errorf("put %s: %w", path, err)
	}
	return checkStatus(resp, path)
}

// DeleteObject deletes the object at path.
func (h *HTTPClient) DeleteObject(ctx context.Context, path string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(requestPath(path))
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return checkStatus(resp, path)
}

func requestPath(path string) string {
	return "/" + strings.TrimPrefix(path, "/")
}

func checkStatus(resp *req.Response, path string) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", path, ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", path, ErrForbidden)
	}
	if !resp.IsSuccessState() {
		return &StatusError{StatusCode: resp.StatusCode, Path: path}
	}
	return nil
}
