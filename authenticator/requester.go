package authenticator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxResponseBody caps how much of a provider response is read.
const maxResponseBody = 1 << 20

// Request describes one outbound call made while resolving a profile
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
}

// Response carries the decoded JSON object returned by the provider
type Response struct {
	StatusCode int
	Data       map[string]interface{}
}

func (r *Response) data() map[string]interface{} {
	if r == nil {
		return nil
	}
	return r.Data
}

// Requester performs HTTP calls against the provider API.
type Requester interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// HTTPRequester is the net/http backed Requester. Non-2xx responses and
// bodies that are not JSON objects are reported as errors.
type HTTPRequester struct {
	client *http.Client
}

// NewHTTPRequester returns a Requester using client, or http.DefaultClient when nil
func NewHTTPRequester(client *http.Client) *HTTPRequester {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPRequester{client: client}
}

// Do sends the request and decodes the JSON body
func (h *HTTPRequester) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Join(ErrRequestFailed, fmt.Errorf("%s %s: status=%d", req.Method, req.URL, resp.StatusCode))
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("%s %s: %w", req.Method, req.URL, err))
	}

	return &Response{StatusCode: resp.StatusCode, Data: data}, nil
}
