package reading

import "meter-reading-api/internal/pkg/errs"

var (
	ErrInvalidImage           = errs.New("image must be a valid base64 string")
	ErrEmptyCustomerCode      = errs.New("customer code cannot be empty")
	ErrInvalidMeasureDateTime = errs.New("measure datetime must be a valid date")
	ErrInvalidMeasureType     = errs.New("measure type must be one of WATER, GAS")
)

type MeasureType string

const (
	MeasureTypeWater MeasureType = "WATER"
	MeasureTypeGas   MeasureType = "GAS"
)

// Matching is exact; "water" is not a measure type.
func ParseMeasureType(s string) (MeasureType, error) {
	switch MeasureType(s) {
	case MeasureTypeWater, MeasureTypeGas:
		return MeasureType(s), nil
	default:
		return "", ErrInvalidMeasureType
	}
}

func MeasureTypes() []MeasureType {
	return []MeasureType{MeasureTypeWater, MeasureTypeGas}
}

func (t MeasureType) String() string { return string(t) }
