package reading

import (
	"encoding/base64"
	"time"

	"meter-reading-api/internal/pkg/timeparse"
)

// Image keeps the payload in its submitted base64 form; decoding is the recognizer's job.
type Image struct {
	encoded string
}

func NewImage(s string) (Image, error) {
	if s == "" {
		return Image{}, ErrInvalidImage
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return Image{}, ErrInvalidImage
	}
	return Image{encoded: s}, nil
}

func (i Image) String() string { return i.encoded }

type CustomerCode struct {
	value string
}

func NewCustomerCode(s string) (CustomerCode, error) {
	if s == "" {
		return CustomerCode{}, ErrEmptyCustomerCode
	}
	return CustomerCode{value: s}, nil
}

func (c CustomerCode) String() string { return c.value }

type MeasureDateTime struct {
	t time.Time
}

func NewMeasureDateTime(s string) (MeasureDateTime, error) {
	t, err := timeparse.Parse(s)
	if err != nil {
		return MeasureDateTime{}, ErrInvalidMeasureDateTime
	}
	return MeasureDateTime{t: t}, nil
}

func (m MeasureDateTime) Time() time.Time { return m.t }
