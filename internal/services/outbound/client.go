// Package outbound wraps the HTTP calls made to third-party APIs. Every call
// ends in either a Response or a Failure, never both.
package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/onegreenvn/outreach-dashboard/internal/utils"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout applies when a Request does not set its own timeout
const DefaultTimeout = 30 * time.Second

// FailureKind classifies why an outbound call did not succeed
type FailureKind string

const (
	KindValidation FailureKind = "ValidationError"
	KindTimeout    FailureKind = "Timeout"
	KindConnection FailureKind = "ConnectionError"
	KindHTTP       FailureKind = "HttpError"
	KindParse      FailureKind = "ParseError"
	KindProvider   FailureKind = "ProviderError"
)

// Failure is the normalized record for a failed outbound call
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Code    int         `json:"code,omitempty"`
	Message string      `json:"message"`
	RawBody string      `json:"raw_body,omitempty"`
}

func (f *Failure) String() string {
	if f.Code != 0 {
		return fmt.Sprintf("%s (%d): %s", f.Kind, f.Code, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Request describes a single outbound call
type Request struct {
	Method     string
	URL        string
	Headers    map[string]string
	Body       any
	Timeout    time.Duration
	ExpectJSON bool
}

// Response is a successful (2xx) outbound call
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
	JSON       any
}

// Text returns the raw response body as a string
func (r *Response) Text() string {
	return string(r.Body)
}

// Client sends outbound requests. The zero value is ready to use.
type Client struct {
	// Transport overrides http.DefaultTransport, mostly for tests
	Transport http.RoundTripper
	UserAgent string
}

// NewClient creates a new outbound client
func NewClient() *Client {
	return &Client{UserAgent: "Outreach-Dashboard/1.0"}
}

// Send performs the request once. Exactly one of the returned values is non-nil.
func (c *Client) Send(ctx context.Context, req Request) (*Response, *Failure) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &Failure{Kind: KindValidation, Message: fmt.Sprintf("failed to marshal request body: %v", err)}
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, &Failure{Kind: KindConnection, Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.ExpectJSON {
		httpReq.Header.Set("Accept", "application/json")
	}
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	client := &http.Client{
		Timeout:   timeout,
		Transport: c.Transport,
	}

	start := time.Now()
	resp, err := client.Do(httpReq)
	if err != nil {
		failure := classifyTransportError(err)
		logrus.WithFields(logrus.Fields{
			"method":  method,
			"url":     req.URL,
			"kind":    failure.Kind,
			"elapsed": time.Since(start),
		}).Warnf("Outbound request failed: %s", failure.Message)
		return nil, failure
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		failure := classifyTransportError(err)
		logrus.Warnf("Failed to read response body from %s: %v", req.URL, err)
		return nil, failure
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.WithFields(logrus.Fields{
			"method": method,
			"url":    req.URL,
			"status": resp.StatusCode,
			"body":   utils.Truncate(string(bodyBytes), 200),
		}).Warn("Outbound request returned error status")
		return nil, &Failure{
			Kind:    KindHTTP,
			Code:    resp.StatusCode,
			Message: reasonPhrase(resp),
			RawBody: string(bodyBytes),
		}
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Status:     reasonPhrase(resp),
		Body:       bodyBytes,
	}

	if req.ExpectJSON {
		var decoded any
		if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
			logrus.Warnf("Response from %s is not valid JSON: %v", req.URL, err)
			return nil, &Failure{
				Kind:    KindParse,
				Code:    resp.StatusCode,
				Message: fmt.Sprintf("invalid JSON response: %v", err),
				RawBody: string(bodyBytes),
			}
		}
		response.JSON = decoded
	}

	logrus.WithFields(logrus.Fields{
		"method":  method,
		"url":     req.URL,
		"status":  resp.StatusCode,
		"elapsed": time.Since(start),
	}).Debug("Outbound request completed")

	return response, nil
}

// classifyTransportError separates timeouts from other transport errors
func classifyTransportError(err error) *Failure {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Failure{Kind: KindTimeout, Message: err.Error()}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Failure{Kind: KindTimeout, Message: err.Error()}
	}
	return &Failure{Kind: KindConnection, Message: err.Error()}
}

// reasonPhrase returns the status text without the numeric code ("Gateway Timeout")
func reasonPhrase(resp *http.Response) string {
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode))); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
