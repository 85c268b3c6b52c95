package image

import (
	"context"
	"fmt"
	"strings"

	"imagecraft/internal/domain"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// GenerateRequest describes a normalized request passed to any image provider.
// Prompt is the final, already enhanced text.
type GenerateRequest struct {
	Prompt string
	Size   domain.ImageSize
}

// Asset is the single image a provider returns.
type Asset struct {
	URL           string
	RevisedPrompt string
}

// Generator is the contract implemented by all image providers. Exactly one
// upstream request is issued per call and failures are returned as
// *GenerationError.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (Asset, error)
}

// Options selects and configures the provider returned by NewGenerator.
type Options struct {
	Provider string
	OpenAI   OpenAIOptions
	Gemini   GeminiOptions
}

func NewGenerator(opts Options) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderOpenAI:
		return NewOpenAIGenerator(opts.OpenAI), nil
	case ProviderGemini:
		return NewGeminiGenerator(opts.Gemini), nil
	default:
		return nil, fmt.Errorf("unknown image provider %q", opts.Provider)
	}
}
