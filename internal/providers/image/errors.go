package image

import (
	"errors"
	"strings"
)

// Kind classifies why an upstream generation failed.
type Kind string

const (
	KindBilling       Kind = "billing"
	KindRateLimit     Kind = "rate_limit"
	KindContentPolicy Kind = "content_policy"
	KindUnknown       Kind = "unknown"
)

var kindMessages = map[Kind]string{
	KindBilling:       "Image provider billing issue. Please check your account credits.",
	KindRateLimit:     "Rate limit exceeded. Please try again in a moment.",
	KindContentPolicy: "Content violates the provider's usage policies. Try a different description or mask type.",
	KindUnknown:       "Failed to generate image. Please try again with a different prompt.",
}

// Message returns the user-facing text for k.
func (k Kind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return kindMessages[KindUnknown]
}

// GenerationError is returned by providers for any failed generation. Error
// yields the user-facing message; the provider error is kept for logging.
type GenerationError struct {
	Kind Kind
	Err  error
}

func NewGenerationError(kind Kind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}

func (e *GenerationError) Error() string {
	return e.Kind.Message()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Classify wraps err into a GenerationError. Errors that already carry a kind
// keep it; anything else is classified from its message.
func Classify(err error) *GenerationError {
	if err == nil {
		return nil
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}
	return NewGenerationError(KindFromMessage(err.Error()), err)
}

// KindFromMessage maps free-form provider error text onto a Kind.
func KindFromMessage(msg string) Kind {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "billing"), strings.Contains(lower, "insufficient_quota"):
		return KindBilling
	case strings.Contains(lower, "rate limit"), strings.Contains(lower, "rate_limit"):
		return KindRateLimit
	case strings.Contains(lower, "content policy"),
		strings.Contains(lower, "content_policy"),
		strings.Contains(lower, "safety system"),
		strings.Contains(lower, "user_error"):
		return KindContentPolicy
	default:
		return KindUnknown
	}
}
