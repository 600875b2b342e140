package recognizer

import (
	"encoding/json"
	"strings"

	"meter-reading-api/internal/pkg/errs"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrUnavailable       = errs.New("recognition service unavailable")
	ErrUnexpectedStatus  = errs.New("recognition service returned unexpected status")
	ErrMalformedResponse = errs.New("recognition service returned malformed response")
	ErrInvalidImage      = errs.New("image payload cannot be decoded")
)

const valueSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["value"],
  "properties": {
    "value": { "type": "number" }
  }
}`

var valueSchema = jsonschema.MustCompileString("recognition-value.schema.json", valueSchemaJSON)

type recognizeRequest struct {
	Image string `json:"image"`
}

type recognizeResponse struct {
	Value float64 `json:"value"`
}

// decodeValue extracts the reading from a recognition reply of the form {"value": <number>}.
func decodeValue(raw []byte) (float64, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, errs.Mark(errs.Wrap(err, "decode recognition response"), ErrMalformedResponse)
	}
	if err := valueSchema.Validate(doc); err != nil {
		return 0, errs.Mark(errs.Wrap(err, "validate recognition response"), ErrMalformedResponse)
	}

	var out recognizeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return 0, errs.Mark(errs.Wrap(err, "decode recognition value"), ErrMalformedResponse)
	}
	return out.Value, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
