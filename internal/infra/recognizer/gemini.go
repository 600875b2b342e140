package recognizer

import (
	"context"
	"log/slog"
	"strings"

	"meter-reading-api/internal/pkg/config"
	"meter-reading-api/internal/pkg/errs"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const meterInstruction = `You read utility meters (water or gas) from photos.
Return ONLY a JSON object of the form {"value": <number>} where <number> is the
reading shown on the meter's register, as a plain JSON number without units.
Do not add any text outside the JSON object.`

const meterPrompt = `Read the meter in this image. Respond strictly with {"value": <number>}.`

// GeminiRecognizer asks a Gemini model for the meter value.
type GeminiRecognizer struct {
	apiKey string
	model  string
	logger *slog.Logger
}

func NewGeminiRecognizer(cfg config.RecognizerConfig, logger *slog.Logger) (*GeminiRecognizer, error) {
	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		return nil, errs.New("GEMINI_API_KEY is empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiRecognizer{
		apiKey: apiKey,
		model:  strings.TrimSpace(cfg.GeminiModel),
		logger: logger,
	}, nil
}

func (r *GeminiRecognizer) Recognize(ctx context.Context, image string) (float64, error) {
	data, mimeType, err := decodeImage(image)
	if err != nil {
		return 0, err
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(r.apiKey))
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "create gemini client"), ErrUnavailable)
	}
	defer cl.Close()

	m := cl.GenerativeModel(r.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(meterInstruction)},
	}

	resp, err := m.GenerateContent(ctx,
		genai.Text(meterPrompt),
		genai.Blob{MIMEType: mimeType, Data: data},
	)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "gemini generate content"), ErrUnavailable)
	}

	txt := stripCodeFences(firstText(resp))
	if txt == "" {
		return 0, errs.Mark(errs.New("gemini returned empty response"), ErrMalformedResponse)
	}

	value, err := decodeValue([]byte(txt))
	if err != nil {
		return 0, err
	}

	r.logger.DebugContext(ctx, "gemini recognition succeeded", "model", r.model, "value", value)
	return value, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
