package image

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"imagecraft/internal/domain"
)

type fakeImagesAPI struct {
	calls  int
	model  string
	prompt string
	config *genai.GenerateImagesConfig
	resp   *genai.GenerateImagesResponse
	err    error
}

func (f *fakeImagesAPI) GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	f.calls++
	f.model = model
	f.prompt = prompt
	f.config = config
	return f.resp, f.err
}

func newTestGemini(api imagesAPI) *GeminiGenerator {
	g := NewGeminiGenerator(GeminiOptions{})
	g.api = api
	return g
}

func TestGeminiGeneratorReturnsDataURL(t *testing.T) {
	api := &fakeImagesAPI{resp: &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{
			Image: &genai.Image{ImageBytes: []byte("png"), MIMEType: "image/png"},
		}},
	}}
	g := newTestGemini(api)

	asset, err := g.Generate(context.Background(), GenerateRequest{Prompt: "enhanced", Size: domain.ImageSizePortrait})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,cG5n", asset.URL)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, defaultGeminiImageModel, api.model)
	assert.Equal(t, "enhanced", api.prompt)
	require.NotNil(t, api.config)
	assert.Equal(t, "9:16", api.config.AspectRatio)
}

func TestAspectRatio(t *testing.T) {
	assert.Equal(t, "1:1", aspectRatio(domain.ImageSizeSquare))
	assert.Equal(t, "16:9", aspectRatio(domain.ImageSizeLandscape))
	assert.Equal(t, "9:16", aspectRatio(domain.ImageSizePortrait))
	assert.Equal(t, "1:1", aspectRatio(domain.ImageSize("")))
}

func TestGeminiGeneratorClassifiesFailures(t *testing.T) {
	cases := []struct {
		name string
		resp *genai.GenerateImagesResponse
		err  error
		want Kind
	}{
		{
			name: "resource exhausted",
			err:  genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "Too many requests"},
			want: KindRateLimit,
		},
		{
			name: "check quota is rate limit",
			err:  genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "Resource has been exhausted (e.g. check quota)."},
			want: KindRateLimit,
		},
		{
			name: "billing on 429",
			err:  genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "You exceeded your current quota, please check your plan and billing details."},
			want: KindBilling,
		},
		{
			name: "insufficient credits",
			err:  genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "Insufficient credits for this project"},
			want: KindBilling,
		},
		{
			name: "pointer api error",
			err:  &genai.APIError{Code: 400, Status: "INVALID_ARGUMENT", Message: "Prompt was blocked by safety filters"},
			want: KindContentPolicy,
		},
		{
			name: "other api error",
			err:  genai.APIError{Code: 500, Status: "INTERNAL", Message: "internal"},
			want: KindUnknown,
		},
		{
			name: "plain error",
			err:  errors.New("dial tcp: timeout"),
			want: KindUnknown,
		},
		{
			name: "rai filtered",
			resp: &genai.GenerateImagesResponse{GeneratedImages: []*genai.GeneratedImage{{RAIFilteredReason: "filtered"}}},
			want: KindContentPolicy,
		},
		{
			name: "no images",
			resp: &genai.GenerateImagesResponse{},
			want: KindUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGemini(&fakeImagesAPI{resp: tc.resp, err: tc.err})
			_, err := g.Generate(context.Background(), GenerateRequest{Prompt: "p", Size: domain.ImageSizeSquare})
			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tc.want, genErr.Kind)
		})
	}
}

func TestGeminiGeneratorWithoutKey(t *testing.T) {
	g := NewGeminiGenerator(GeminiOptions{})
	_, err := g.Generate(context.Background(), GenerateRequest{Prompt: "p"})
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, KindUnknown, genErr.Kind)
}
