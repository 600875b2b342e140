package commands

import (
	"context"
	"errors"

	"meter-reading-api/internal/domain/reading"
	"meter-reading-api/internal/pkg/config"
	"meter-reading-api/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reading.go -destination=../../../tests/mock/commands/reading.go -package=commandsmock

// Error markers for categorization
var (
	ErrInvalidSubmission = errors.New("invalid reading submission")
	ErrProcessingFailed  = errors.New("reading processing failed")
)

type UploadReadingCommand struct {
	Image           string
	CustomerCode    string
	MeasureDateTime string
	MeasureType     string
}

type UploadReadingResult struct {
	MeasureUUID  uuid.UUID
	ImageURL     string
	MeasureValue float64
}

type ReadingCommands interface {
	Upload(ctx context.Context, cmd UploadReadingCommand) (*UploadReadingResult, error)
}

type readingCommandsImpl struct {
	recognizer   Recognizer
	imageBaseURL string
}

func NewReadingCommands(recognizer Recognizer, cfg config.Config) ReadingCommands {
	return &readingCommandsImpl{
		recognizer:   recognizer,
		imageBaseURL: cfg.Image.BaseURL,
	}
}

func (uc *readingCommandsImpl) Upload(ctx context.Context, cmd UploadReadingCommand) (*UploadReadingResult, error) {
	sub, err := reading.NewSubmission(cmd.Image, cmd.CustomerCode, cmd.MeasureDateTime, cmd.MeasureType)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSubmission)
	}

	value, err := uc.recognizer.Recognize(ctx, sub.Image().String())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "recognize meter value"), ErrProcessingFailed)
	}

	res := reading.NewResult(uc.imageBaseURL, value)
	return &UploadReadingResult{
		MeasureUUID:  res.ID(),
		ImageURL:     res.ImageURL(),
		MeasureValue: res.Value(),
	}, nil
}
