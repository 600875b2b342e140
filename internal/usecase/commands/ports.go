package commands

import "context"

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// Recognizer reads the numeric value shown on a meter image.
// image is the base64 payload exactly as submitted.
type Recognizer interface {
	Recognize(ctx context.Context, image string) (float64, error)
}
