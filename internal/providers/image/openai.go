package image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	openAIImageModel     = "dall-e-3"
	openAIImageQuality   = "standard"
)

type OpenAIOptions struct {
	APIKey       string
	BaseURL      string
	Organization string
	HTTPClient   *http.Client
}

// OpenAIGenerator calls the DALL·E 3 images endpoint. A missing key is not
// rejected up front; the upstream 401 surfaces as an unknown failure.
type OpenAIGenerator struct {
	apiKey       string
	baseURL      string
	organization string
	client       *http.Client
}

type openAIImageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type openAIImageResponse struct {
	Data []struct {
		URL           string `json:"url"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}

type openAIErrorEnvelope struct {
	Error openAIAPIError `json:"error"`
}

type openAIAPIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

func NewOpenAIGenerator(opts OpenAIOptions) *OpenAIGenerator {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &OpenAIGenerator{
		apiKey:       strings.TrimSpace(opts.APIKey),
		baseURL:      baseURL,
		organization: strings.TrimSpace(opts.Organization),
		client:       client,
	}
}

func (o *OpenAIGenerator) Generate(ctx context.Context, req GenerateRequest) (Asset, error) {
	payload := openAIImageRequest{
		Model:   openAIImageModel,
		Prompt:  req.Prompt,
		N:       1,
		Size:    string(req.Size),
		Quality: openAIImageQuality,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return Asset{}, NewGenerationError(KindUnknown, fmt.Errorf("encode request: %w", err))
	}
	endpoint := fmt.Sprintf("%s/images/generations", o.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return Asset{}, NewGenerationError(KindUnknown, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	if o.organization != "" {
		httpReq.Header.Set("OpenAI-Organization", o.organization)
	}

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return Asset{}, Classify(fmt.Errorf("openai request: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Asset{}, NewGenerationError(KindUnknown, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode >= 300 {
		var envelope openAIErrorEnvelope
		_ = json.Unmarshal(body, &envelope)
		return Asset{}, classifyOpenAIError(resp.StatusCode, envelope.Error)
	}

	var decoded openAIImageResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Asset{}, NewGenerationError(KindUnknown, fmt.Errorf("decode response: %w", err))
	}
	if len(decoded.Data) == 0 || strings.TrimSpace(decoded.Data[0].URL) == "" {
		return Asset{}, NewGenerationError(KindUnknown, errors.New("openai: no image url returned"))
	}
	return Asset{
		URL:           decoded.Data[0].URL,
		RevisedPrompt: decoded.Data[0].RevisedPrompt,
	}, nil
}

// classifyOpenAIError checks billing before rate limits since quota
// exhaustion is also reported with HTTP 429.
func classifyOpenAIError(status int, apiErr openAIAPIError) *GenerationError {
	cause := fmt.Errorf("openai status %d: %s (type=%s code=%s)", status, apiErr.Message, apiErr.Type, apiErr.Code)
	msg := strings.ToLower(apiErr.Message)

	switch {
	case apiErr.Code == "billing_hard_limit_reached",
		apiErr.Code == "insufficient_quota",
		strings.Contains(msg, "billing"):
		return NewGenerationError(KindBilling, cause)
	case status == http.StatusTooManyRequests,
		apiErr.Code == "rate_limit_exceeded",
		strings.Contains(msg, "rate limit"):
		return NewGenerationError(KindRateLimit, cause)
	case apiErr.Code == "content_policy_violation",
		apiErr.Type == "image_generation_user_error",
		strings.Contains(msg, "content policy"),
		strings.Contains(msg, "safety system"):
		return NewGenerationError(KindContentPolicy, cause)
	default:
		return NewGenerationError(KindUnknown, cause)
	}
}

var _ Generator = (*OpenAIGenerator)(nil)
