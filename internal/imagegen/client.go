package imagegen

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"imagecraft/internal/domain"
	"imagecraft/internal/providers/image"
	"imagecraft/internal/providers/prompt"
)

type Request struct {
	Prompt   string
	MaskType domain.MaskType
	Size     domain.ImageSize
	Style    domain.ImageStyle
}

type Result struct {
	URL            string
	EnhancedPrompt string
}

// Client enhances a prompt and hands it to a single image provider call.
type Client struct {
	enhancer  prompt.Enhancer
	generator image.Generator
	logger    zerolog.Logger
}

func NewClient(enhancer prompt.Enhancer, generator image.Generator, logger zerolog.Logger) *Client {
	if enhancer == nil {
		enhancer = prompt.NewStaticEnhancer()
	}
	return &Client{enhancer: enhancer, generator: generator, logger: logger}
}

// Generate never retries. Every failure is a *image.GenerationError.
func (c *Client) Generate(ctx context.Context, req Request) (Result, error) {
	if c == nil || c.generator == nil {
		return Result{}, image.NewGenerationError(image.KindUnknown, errors.New("image generator not configured"))
	}
	size := req.Size
	if strings.TrimSpace(string(size)) == "" {
		size = domain.DefaultImageSize
	}
	style := req.Style
	if strings.TrimSpace(string(style)) == "" {
		style = domain.DefaultImageStyle
	}

	enhanced := c.enhancer.Enhance(req.Prompt, req.MaskType, style)
	c.logger.Debug().
		Str("mask_type", string(req.MaskType)).
		Str("size", string(size)).
		Str("style", string(style)).
		Str("enhanced_prompt", enhanced).
		Msg("imagegen: enhanced prompt")

	asset, err := c.generator.Generate(ctx, image.GenerateRequest{Prompt: enhanced, Size: size})
	if err != nil {
		genErr := image.Classify(err)
		c.logger.Warn().
			Err(genErr.Unwrap()).
			Str("kind", string(genErr.Kind)).
			Msg("imagegen: provider call failed")
		return Result{}, genErr
	}
	if strings.TrimSpace(asset.URL) == "" {
		return Result{}, image.NewGenerationError(image.KindUnknown, errors.New("provider returned no image url"))
	}

	c.logger.Debug().
		Str("revised_prompt", asset.RevisedPrompt).
		Msg("imagegen: image generated")
	return Result{URL: asset.URL, EnhancedPrompt: enhanced}, nil
}
