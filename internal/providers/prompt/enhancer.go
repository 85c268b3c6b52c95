package prompt

import (
	"regexp"
	"strings"

	"imagecraft/internal/domain"
)

// SafetySuffix is appended to every enhanced prompt.
const SafetySuffix = "friendly person, positive expression, well-lit, clean background"

// denylist holds terms that tend to trip provider content filters. They are
// removed wherever they occur, including inside longer words.
var denylist = []string{
	"violence", "violent", "blood", "gore", "death", "kill", "murder",
	"nude", "naked", "sexual", "sexy", "erotic", "adult",
	"weapon", "gun", "knife", "bomb", "explosive",
	"drug", "alcohol", "cigarette", "smoking",
}

var (
	denylistPattern = buildDenylistPattern(denylist)
	whitespace      = regexp.MustCompile(`\s+`)
)

var maskClauses = map[domain.MaskType]string{
	domain.MaskTypeMedical:  "wearing a protective medical face covering",
	domain.MaskTypeFashion:  "wearing a stylish designer face covering",
	domain.MaskTypeCarnival: "wearing a decorative festive mask",
	domain.MaskTypeSports:   "wearing a sports face covering",
	domain.MaskTypeArtistic: "wearing an artistic decorative face piece",
	domain.MaskTypeCustom:   "wearing a unique face covering",
}

var styleClauses = map[domain.ImageStyle]string{
	domain.ImageStyleRealistic: "photorealistic portrait, professional photography style",
	domain.ImageStyleArtistic:  "artistic portrait style, creative interpretation",
	domain.ImageStyleCartoon:   "cartoon illustration style, friendly character",
	domain.ImageStyleAbstract:  "abstract artistic interpretation",
}

// Enhancer turns a raw user prompt into the text sent to an image provider.
type Enhancer interface {
	Enhance(raw string, mask domain.MaskType, style domain.ImageStyle) string
}

// StaticEnhancer applies the fixed denylist and clause tables. It holds no
// state and is safe for concurrent use.
type StaticEnhancer struct{}

func NewStaticEnhancer() *StaticEnhancer {
	return &StaticEnhancer{}
}

func (s *StaticEnhancer) Enhance(raw string, mask domain.MaskType, style domain.ImageStyle) string {
	return Enhance(raw, mask, style)
}

var _ Enhancer = (*StaticEnhancer)(nil)

// Enhance strips denylisted terms, normalizes whitespace and appends the mask,
// style and safety clauses. A prompt emptied by stripping is not re-checked.
func Enhance(raw string, mask domain.MaskType, style domain.ImageStyle) string {
	enhanced := StripDenylisted(strings.TrimSpace(raw))
	enhanced = strings.TrimSpace(whitespace.ReplaceAllString(enhanced, " "))

	sb := &strings.Builder{}
	sb.WriteString(enhanced)

	lower := strings.ToLower(enhanced)
	if !strings.Contains(lower, "mask") && !strings.Contains(lower, "covering") {
		sb.WriteString(", ")
		sb.WriteString(MaskClause(mask))
	}
	sb.WriteString(", ")
	sb.WriteString(StyleClause(style))
	sb.WriteString(", ")
	sb.WriteString(SafetySuffix)
	return sb.String()
}

// StripDenylisted removes denylisted terms case-insensitively. Removal is
// repeated until stable so that stripping cannot splice a new match together.
func StripDenylisted(s string) string {
	for {
		next := denylistPattern.ReplaceAllString(s, "")
		if next == s {
			return s
		}
		s = next
	}
}

// ContainsDenylisted reports whether s contains any denylisted term in any casing.
func ContainsDenylisted(s string) bool {
	return denylistPattern.MatchString(s)
}

// Denylist returns a copy of the stripped terms.
func Denylist() []string {
	out := make([]string, len(denylist))
	copy(out, denylist)
	return out
}

// MaskClause returns the descriptive clause for mask, defaulting to custom.
func MaskClause(mask domain.MaskType) string {
	if clause, ok := maskClauses[mask]; ok {
		return clause
	}
	return maskClauses[domain.MaskTypeCustom]
}

// StyleClause returns the style modifier for style, defaulting to realistic.
func StyleClause(style domain.ImageStyle) string {
	if clause, ok := styleClauses[style]; ok {
		return clause
	}
	return styleClauses[domain.ImageStyleRealistic]
}

func buildDenylistPattern(terms []string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = regexp.QuoteMeta(term)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
}
