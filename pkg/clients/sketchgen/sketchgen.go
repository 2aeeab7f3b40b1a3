package sketchgen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Generator produces botanical sketch images from a subject description.
// Results are base64 data URLs so the caller can cache and serve them
// without touching disk.
type Generator interface {
	GenerateSketch(ctx context.Context, subject string) (string, error)
}

type openAIGenerator struct {
	client *openai.Client
}

// NewGenerator creates an OpenAI-backed sketch generator.
func NewGenerator(apiKey string) Generator {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	return &openAIGenerator{client: openai.NewClientWithConfig(cfg)}
}

// GenerateSketch renders the subject in the house style: a vintage botanical
// pencil sketch on a white background.
func (g *openAIGenerator) GenerateSketch(ctx context.Context, subject string) (string, error) {
	prompt := fmt.Sprintf(
		"Vintage botanical pencil sketch illustration of %s, white background, scientific accuracy, detailed line work, subtle color.",
		subject,
	)

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          openai.CreateImageModelDallE3,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai image call: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", fmt.Errorf("empty image response")
	}

	return "data:image/png;base64," + resp.Data[0].B64JSON, nil
}
