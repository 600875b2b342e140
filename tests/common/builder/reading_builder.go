//go:build unit || e2e

package builder

import (
	"meter-reading-api/internal/domain/reading"
	reqdto "meter-reading-api/internal/handler/dto/request"
	"meter-reading-api/internal/usecase/commands"

	"github.com/google/uuid"
)

const DefaultImageBaseURL = "https://seu-servidor/imagens"

type ReadingBuilder struct {
	Image           string
	CustomerCode    string
	MeasureDateTime string
	MeasureType     string
	MeasureValue    float64
}

func NewReadingBuilder() *ReadingBuilder {
	return &ReadingBuilder{
		Image:           "aGVsbG8=",
		CustomerCode:    "C1",
		MeasureDateTime: "2024-01-01T00:00:00Z",
		MeasureType:     "WATER",
		MeasureValue:    123,
	}
}

func (r *ReadingBuilder) With(mutate func(*ReadingBuilder)) *ReadingBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReadingBuilder) BuildDomain() (*reading.Submission, error) {
	return reading.NewSubmission(r.Image, r.CustomerCode, r.MeasureDateTime, r.MeasureType)
}

func (r *ReadingBuilder) BuildUploadRequestDTO() reqdto.UploadReadingRequest {
	return reqdto.UploadReadingRequest{
		Image:           r.Image,
		CustomerCode:    r.CustomerCode,
		MeasureDateTime: r.MeasureDateTime,
		MeasureType:     r.MeasureType,
	}
}

func (r *ReadingBuilder) BuildCommand() commands.UploadReadingCommand {
	return commands.UploadReadingCommand{
		Image:           r.Image,
		CustomerCode:    r.CustomerCode,
		MeasureDateTime: r.MeasureDateTime,
		MeasureType:     r.MeasureType,
	}
}

func (r *ReadingBuilder) BuildResult() *commands.UploadReadingResult {
	id := uuid.New()
	return &commands.UploadReadingResult{
		MeasureUUID:  id,
		ImageURL:     DefaultImageBaseURL + "/" + id.String() + ".jpg",
		MeasureValue: r.MeasureValue,
	}
}

// Fluent builder methods
func (r *ReadingBuilder) WithImage(image string) *ReadingBuilder {
	r.Image = image
	return r
}

func (r *ReadingBuilder) WithCustomerCode(code string) *ReadingBuilder {
	r.CustomerCode = code
	return r
}

func (r *ReadingBuilder) WithMeasureDateTime(dt string) *ReadingBuilder {
	r.MeasureDateTime = dt
	return r
}

func (r *ReadingBuilder) WithMeasureType(t string) *ReadingBuilder {
	r.MeasureType = t
	return r
}

func (r *ReadingBuilder) WithMeasureValue(v float64) *ReadingBuilder {
	r.MeasureValue = v
	return r
}

func (r *ReadingBuilder) AsGas() *ReadingBuilder {
	r.MeasureType = "GAS"
	return r
}
