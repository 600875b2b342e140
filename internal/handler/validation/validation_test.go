//go:build unit

package validation_test

import (
	"encoding/json"
	"testing"

	"meter-reading-api/internal/domain/reading"
	reqdto "meter-reading-api/internal/handler/dto/request"
	"meter-reading-api/internal/handler/validation"
	"meter-reading-api/internal/pkg/errs"
	"meter-reading-api/tests/common/builder"
	"meter-reading-api/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawBody builds the decoded form of a request body from the default reading.
func rawBody(t *testing.T, muts ...func(map[string]any)) map[string]json.RawMessage {
	t.Helper()
	m := testutil.DtoMap(t, builder.NewReadingBuilder().BuildUploadRequestDTO(), muts...)
	b, err := json.Marshal(m)
	require.NoError(t, err)
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestRegisterIsIdempotent(t *testing.T) {
	require.NoError(t, validation.Register())
	require.NoError(t, validation.Register())
}

func TestBind(t *testing.T) {
	t.Run("valid body fills every field", func(t *testing.T) {
		var req reqdto.UploadReadingRequest
		require.NoError(t, validation.Bind(rawBody(t, testutil.Field("measure_type", "GAS")), &req))

		want := builder.NewReadingBuilder().AsGas().BuildUploadRequestDTO()
		assert.Equal(t, want, req)
	})

	t.Run("rejects non-struct targets", func(t *testing.T) {
		var s string
		require.Error(t, validation.Bind(rawBody(t), &s))
		require.Error(t, validation.Bind(rawBody(t), reqdto.UploadReadingRequest{}))
	})

	testCases := []struct {
		name  string
		muts  []func(map[string]any)
		field string
		rule  string
		want  string
	}{
		{
			name:  "missing image",
			muts:  []func(map[string]any){testutil.Field("image", nil)},
			field: "image", rule: validation.RuleRequired,
			want: `"image" is required`,
		},
		{
			name:  "empty costumer_code",
			muts:  []func(map[string]any){testutil.Field("costumer_code", "")},
			field: "costumer_code", rule: validation.RuleEmpty,
			want: `"costumer_code" is not allowed to be empty`,
		},
		{
			name:  "null measure_type",
			muts:  []func(map[string]any){testutil.Field("measure_type", testutil.Null)},
			field: "measure_type", rule: validation.RuleType,
			want: `"measure_type" must be a string`,
		},
		{
			name:  "numeric costumer_code",
			muts:  []func(map[string]any){testutil.Field("costumer_code", 7)},
			field: "costumer_code", rule: validation.RuleType,
			want: `"costumer_code" must be a string`,
		},
		{
			name:  "image not base64",
			muts:  []func(map[string]any){testutil.Field("image", "nope!")},
			field: "image", rule: "base64",
			want: `"image" must be a valid base64 string`,
		},
		{
			name:  "unparseable datetime",
			muts:  []func(map[string]any){testutil.Field("measure_datetime", "2024/01/01")},
			field: "measure_datetime", rule: validation.TagAnyDateTime,
			want: `"measure_datetime" must be a valid date`,
		},
		{
			name:  "measure_type outside the enum",
			muts:  []func(map[string]any){testutil.Field("measure_type", "ENERGY")},
			field: "measure_type", rule: "oneof",
			want: `"measure_type" must be one of [WATER, GAS]`,
		},
		{
			name:  "unknown key",
			muts:  []func(map[string]any){testutil.Field("meter", "x")},
			field: "meter", rule: validation.RuleUnknown,
			want: `"meter" is not allowed`,
		},
		{
			name: "earliest field wins over a wrong type later on",
			muts: []func(map[string]any){
				testutil.Field("image", "***"),
				testutil.Field("costumer_code", 123),
			},
			field: "image", rule: "base64",
			want: `"image" must be a valid base64 string`,
		},
		{
			name: "declared fields are checked before unknown keys",
			muts: []func(map[string]any){
				testutil.Field("extra", 1),
				testutil.Field("measure_type", "OIL"),
			},
			field: "measure_type", rule: "oneof",
			want: `"measure_type" must be one of [WATER, GAS]`,
		},
		{
			name: "unknown keys are reported alphabetically",
			muts: []func(map[string]any){
				testutil.Field("zeta", 1),
				testutil.Field("alpha", 1),
			},
			field: "alpha", rule: validation.RuleUnknown,
			want: `"alpha" is not allowed`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req reqdto.UploadReadingRequest
			err := validation.Bind(rawBody(t, tc.muts...), &req)
			require.Error(t, err)

			var fe *validation.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.field, fe.Field)
			assert.Equal(t, tc.rule, fe.Rule)
			assert.Equal(t, tc.want, validation.Describe(err))
		})
	}

	t.Run("nil body reports the first required field", func(t *testing.T) {
		var req reqdto.UploadReadingRequest
		err := validation.Bind(nil, &req)
		assert.Equal(t, `"image" is required`, validation.Describe(err))
	})
}

func TestDescribeDecodeErrors(t *testing.T) {
	for name, raw := range map[string]string{
		"not an object": `"text"`,
		"array":         `[1]`,
		"syntax error":  `{"image":}`,
	} {
		t.Run(name, func(t *testing.T) {
			var body map[string]json.RawMessage
			err := json.Unmarshal([]byte(raw), &body)
			require.Error(t, err)
			assert.Equal(t, `"value" must be of type object`, validation.Describe(err))
		})
	}
}

func TestDescribeDomainErrors(t *testing.T) {
	testCases := map[error]string{
		reading.ErrInvalidImage:           `"image" must be a valid base64 string`,
		reading.ErrEmptyCustomerCode:      `"costumer_code" is not allowed to be empty`,
		reading.ErrInvalidMeasureDateTime: `"measure_datetime" must be a valid date`,
		reading.ErrInvalidMeasureType:     `"measure_type" must be one of [WATER, GAS]`,
	}
	for cause, want := range testCases {
		assert.Equal(t, want, validation.Describe(errs.Wrap(cause, "submission")))
	}
}
