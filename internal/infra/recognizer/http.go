package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"meter-reading-api/internal/pkg/config"
	"meter-reading-api/internal/pkg/errs"
)

const maxResponseBytes = 1 << 20

// HTTPRecognizer posts {"image": ...} to a fixed endpoint and reads {"value": ...} back.
// No retries.
type HTTPRecognizer struct {
	client   *http.Client
	endpoint string
	logger   *slog.Logger
}

func NewHTTPRecognizer(cfg config.RecognizerConfig, logger *slog.Logger) *HTTPRecognizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPRecognizer{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.URL,
		logger:   logger,
	}
}

func (r *HTTPRecognizer) Recognize(ctx context.Context, image string) (float64, error) {
	body, err := json.Marshal(recognizeRequest{Image: image})
	if err != nil {
		return 0, errs.Wrap(err, "encode recognition request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errs.Wrap(err, "build recognition request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "call recognition service"), ErrUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "read recognition response"), ErrUnavailable)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, errs.Mark(errs.Newf("recognition service responded %d", resp.StatusCode), ErrUnexpectedStatus)
	}

	value, err := decodeValue(raw)
	if err != nil {
		return 0, err
	}

	r.logger.DebugContext(ctx, "recognition succeeded", "endpoint", r.endpoint, "value", value)
	return value, nil
}
