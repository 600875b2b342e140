package reading

import (
	"strings"

	"github.com/google/uuid"
)

const imageExtension = ".jpg"

// Submission is a fully validated reading upload. Construction fails on the first
// invalid field, checked in the order image, customer code, datetime, type.
type Submission struct {
	image           Image
	customerCode    CustomerCode
	measureDateTime MeasureDateTime
	measureType     MeasureType
}

func NewSubmission(image, customerCode, measureDateTime, measureType string) (*Submission, error) {
	img, err := NewImage(image)
	if err != nil {
		return nil, err
	}

	code, err := NewCustomerCode(customerCode)
	if err != nil {
		return nil, err
	}

	when, err := NewMeasureDateTime(measureDateTime)
	if err != nil {
		return nil, err
	}

	kind, err := ParseMeasureType(measureType)
	if err != nil {
		return nil, err
	}

	return &Submission{
		image:           img,
		customerCode:    code,
		measureDateTime: when,
		measureType:     kind,
	}, nil
}

func (s *Submission) Image() Image                     { return s.image }
func (s *Submission) CustomerCode() CustomerCode       { return s.customerCode }
func (s *Submission) MeasureDateTime() MeasureDateTime { return s.measureDateTime }
func (s *Submission) MeasureType() MeasureType         { return s.measureType }

type Result struct {
	id       uuid.UUID
	imageURL string
	value    float64
}

// NewResult assigns a fresh random identifier and derives the reference URL from it.
func NewResult(imageBaseURL string, value float64) *Result {
	id := uuid.New()
	return &Result{
		id:       id,
		imageURL: BuildImageURL(imageBaseURL, id),
		value:    value,
	}
}

func BuildImageURL(baseURL string, id uuid.UUID) string {
	return strings.TrimRight(baseURL, "/") + "/" + id.String() + imageExtension
}

func (r *Result) ID() uuid.UUID    { return r.id }
func (r *Result) ImageURL() string { return r.imageURL }
func (r *Result) Value() float64   { return r.value }
