//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"meter-reading-api/internal/pkg/errs"
)

// RecognitionStub drives the WireMock admin API.
type RecognitionStub struct {
	baseURL string
	client  *http.Client
}

func NewRecognitionStub(baseURL string) *RecognitionStub {
	return &RecognitionStub{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type stubMapping struct {
	Request  stubRequest  `json:"request"`
	Response stubResponse `json:"response"`
}

type stubRequest struct {
	Method  string `json:"method"`
	URLPath string `json:"urlPath"`
}

type stubResponse struct {
	Status                 int               `json:"status,omitempty"`
	Body                   string            `json:"body,omitempty"`
	Headers                map[string]string `json:"headers,omitempty"`
	FixedDelayMilliseconds int               `json:"fixedDelayMilliseconds,omitempty"`
	Fault                  string            `json:"fault,omitempty"`
}

type RecordedRequest struct {
	URL     string         `json:"url"`
	Method  string         `json:"method"`
	Body    string         `json:"body"`
	Headers map[string]any `json:"headers"`
}

// Reset drops every stub and the request journal.
func (s *RecognitionStub) Reset(ctx context.Context) error {
	return s.admin(ctx, http.MethodPost, "/__admin/reset", nil, nil)
}

func (s *RecognitionStub) Respond(ctx context.Context, status int, body string) error {
	return s.register(ctx, stubResponse{
		Status:  status,
		Body:    body,
		Headers: map[string]string{"Content-Type": "application/json"},
	})
}

func (s *RecognitionStub) RespondAfter(ctx context.Context, delay time.Duration, body string) error {
	return s.register(ctx, stubResponse{
		Status:                 http.StatusOK,
		Body:                   body,
		Headers:                map[string]string{"Content-Type": "application/json"},
		FixedDelayMilliseconds: int(delay.Milliseconds()),
	})
}

// Fault makes WireMock break the connection, e.g. "CONNECTION_RESET_BY_PEER".
func (s *RecognitionStub) Fault(ctx context.Context, fault string) error {
	return s.register(ctx, stubResponse{Fault: fault})
}

func (s *RecognitionStub) Requests(ctx context.Context) ([]RecordedRequest, error) {
	var out struct {
		Requests []RecordedRequest `json:"requests"`
	}
	criteria := stubRequest{Method: http.MethodPost, URLPath: RecognitionPath}
	if err := s.admin(ctx, http.MethodPost, "/__admin/requests/find", criteria, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

func (s *RecognitionStub) register(ctx context.Context, resp stubResponse) error {
	mapping := stubMapping{
		Request:  stubRequest{Method: http.MethodPost, URLPath: RecognitionPath},
		Response: resp,
	}
	return s.admin(ctx, http.MethodPost, "/__admin/mappings", mapping, nil)
}

func (s *RecognitionStub) admin(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "encode wiremock request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "build wiremock request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrapf(err, "wiremock %s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(resp.Body)
		return errs.Newf("wiremock %s %s: %d %s", method, path, resp.StatusCode, msg)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, fmt.Sprintf("decode wiremock %s response", path))
	}
	return nil
}
