//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// asserts a 400 {error_code, error_description} body
func AssertInvalidDataResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedDescription string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var errorResponse struct {
		ErrorCode        string `json:"error_code"`
		ErrorDescription string `json:"error_description"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	assert.Equal(t, "INVALID_DATA", errorResponse.ErrorCode)
	assert.NotEmpty(t, errorResponse.ErrorDescription)
	if expectedDescription != "" {
		assert.Contains(t, errorResponse.ErrorDescription, expectedDescription,
			"Response error description doesn't contain expected text")
	}
}

// asserts a {error} body that carries no result fields
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var errorResponse map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	assert.NotContains(t, errorResponse, "measure_uuid")
	assert.NotContains(t, errorResponse, "image_url")
	if expectedErrorMsg != "" {
		msg, _ := errorResponse["error"].(string)
		assert.Contains(t, msg, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
