package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// UpstreamError is a non-2xx response from a provider endpoint
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (HTTP %d) from %s: %s", e.StatusCode, e.Endpoint, strings.TrimSpace(e.Body))
}

// Reason returns the "reason" field of a structured error body,
// falling back to the raw body text.
func (e *UpstreamError) Reason() string {
	var structured struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(e.Body), &structured); err == nil && structured.Reason != "" {
		return structured.Reason
	}
	return e.Body
}

// IsBadRequest reports whether the provider rejected the request parameters
func (e *UpstreamError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// Params is a query parameter set. Sequence values are sent as repeated parameters.
type Params struct {
	values url.Values
}

// NewParams creates an empty parameter set
func NewParams() *Params {
	return &Params{values: url.Values{}}
}

// Set stores a scalar parameter
func (p *Params) Set(key string, value any) *Params {
	p.values.Set(key, formatParam(value))
	return p
}

// SetList stores a sequence parameter as repeated keys
func (p *Params) SetList(key string, values []string) *Params {
	p.values.Del(key)
	for _, v := range values {
		p.values.Add(key, v)
	}
	return p
}

// Encode returns the URL-encoded query string
func (p *Params) Encode() string {
	return p.values.Encode()
}

func formatParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// getJSON issues one GET with the given timeout and decodes a 2xx JSON body into out
func getJSON(ctx context.Context, client *http.Client, baseURL string, params *Params, timeout time.Duration, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{
			Endpoint:   u.Host + u.Path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
