package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the two UI languages.
type Locale string

const (
	Spanish Locale = "es"
	English Locale = "en"
)

// Default is used when nothing about the request hints at a language.
const Default = Spanish

var Supported = []Locale{Spanish, English}

var matcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})

// spanishSpeaking lists ISO country codes whose visitors get the Spanish UI.
var spanishSpeaking = map[string]struct{}{
	"AR": {}, "BO": {}, "CL": {}, "CO": {}, "CR": {}, "CU": {}, "DO": {}, "EC": {},
	"ES": {}, "GQ": {}, "GT": {}, "HN": {}, "MX": {}, "NI": {}, "PA": {}, "PE": {},
	"PR": {}, "PY": {}, "SV": {}, "UY": {}, "VE": {},
}

func (l Locale) Valid() bool {
	return l == Spanish || l == English
}

// Parse accepts a bare code or a full BCP 47 tag such as "es-MX" and reports
// whether it names a supported language.
func Parse(s string) (Locale, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "es":
		return Spanish, true
	case "en":
		return English, true
	default:
		return "", false
	}
}

// MatchAcceptLanguage picks the best supported locale for an Accept-Language
// header. ok is false when the header lists nothing close to es or en.
func MatchAcceptLanguage(header string) (Locale, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	if idx == 0 {
		return Spanish, true
	}
	return English, true
}

// ForCountry maps an ISO country code to a locale. Unknown or empty codes
// report false.
func ForCountry(code string) (Locale, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", false
	}
	if _, ok := spanishSpeaking[code]; ok {
		return Spanish, true
	}
	return English, true
}
