package image

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"

	"imagecraft/internal/domain"
)

const defaultGeminiImageModel = "imagen-3.0-generate-002"

type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// imagesAPI is the subset of *genai.Models used here.
type imagesAPI interface {
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// GeminiGenerator renders images with Imagen through the Gemini API. The
// genai client is created on first use so a missing key only fails requests.
type GeminiGenerator struct {
	opts  GeminiOptions
	model string

	mu  sync.Mutex
	api imagesAPI
}

func NewGeminiGenerator(opts GeminiOptions) *GeminiGenerator {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultGeminiImageModel
	}
	return &GeminiGenerator{opts: opts, model: model}
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (Asset, error) {
	api, err := g.imagesClient(ctx)
	if err != nil {
		return Asset{}, NewGenerationError(KindUnknown, fmt.Errorf("genai client: %w", err))
	}

	resp, err := api.GenerateImages(ctx, g.model, req.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages:   1,
		AspectRatio:      aspectRatio(req.Size),
		IncludeRAIReason: true,
	})
	if err != nil {
		return Asset{}, classifyGeminiError(err)
	}
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return Asset{}, NewGenerationError(KindUnknown, errors.New("gemini: no images returned"))
	}

	generated := resp.GeneratedImages[0]
	if generated.RAIFilteredReason != "" {
		return Asset{}, NewGenerationError(KindContentPolicy, fmt.Errorf("gemini: filtered: %s", generated.RAIFilteredReason))
	}
	if generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		return Asset{}, NewGenerationError(KindUnknown, errors.New("gemini: empty image payload"))
	}

	mimeType := generated.Image.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return Asset{
		URL:           "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(generated.Image.ImageBytes),
		RevisedPrompt: generated.EnhancedPrompt,
	}, nil
}

func (g *GeminiGenerator) imagesClient(ctx context.Context) (imagesAPI, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.api != nil {
		return g.api, nil
	}
	if strings.TrimSpace(g.opts.APIKey) == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	cfg := &genai.ClientConfig{
		APIKey:     strings.TrimSpace(g.opts.APIKey),
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.opts.HTTPClient,
	}
	if base := strings.TrimSpace(g.opts.BaseURL); base != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	g.api = client.Models
	return g.api, nil
}

func aspectRatio(size domain.ImageSize) string {
	switch size {
	case domain.ImageSizeLandscape:
		return "16:9"
	case domain.ImageSizePortrait:
		return "9:16"
	default:
		return "1:1"
	}
}

func classifyGeminiError(err error) *GenerationError {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return Classify(fmt.Errorf("gemini request: %w", err))
	}

	cause := fmt.Errorf("gemini status %d %s: %s", apiErr.Code, apiErr.Status, apiErr.Message)
	msg := strings.ToLower(apiErr.Message)
	switch {
	case apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED":
		// The per-minute limit text says "check quota", so quota alone is
		// not a billing signal.
		if strings.Contains(msg, "billing") || strings.Contains(msg, "insufficient") {
			return NewGenerationError(KindBilling, cause)
		}
		return NewGenerationError(KindRateLimit, cause)
	case strings.Contains(msg, "billing"):
		return NewGenerationError(KindBilling, cause)
	case strings.Contains(msg, "safety"), strings.Contains(msg, "blocked"), strings.Contains(msg, "policy"):
		return NewGenerationError(KindContentPolicy, cause)
	default:
		return NewGenerationError(KindUnknown, cause)
	}
}

var _ Generator = (*GeminiGenerator)(nil)
