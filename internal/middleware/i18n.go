package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"imagecraft/internal/i18n"
)

type localeContextKey struct{}
type countryContextKey struct{}

var (
	LocaleKey  = localeContextKey{}
	CountryKey = countryContextKey{}
)

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// I18N stores the detected locale and country in the request context and
// advertises the locale in Content-Language.
func I18N(defaultLocale i18n.Locale, lookup CountryLookup) func(http.Handler) http.Handler {
	if !defaultLocale.Valid() {
		defaultLocale = i18n.Default
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := ResolveCountry(r, lookup)
			locale := detectLocale(r, defaultLocale, country)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			if country != "" {
				ctx = context.WithValue(ctx, CountryKey, country)
			}
			w.Header().Set("Content-Language", string(locale))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// detectLocale prefers X-Locale, then Accept-Language, then the country and
// finally the configured fallback.
func detectLocale(r *http.Request, fallback i18n.Locale, country string) i18n.Locale {
	if l, ok := i18n.Parse(r.Header.Get("X-Locale")); ok {
		return l
	}
	if l, ok := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return l
	}
	if l, ok := i18n.ForCountry(country); ok {
		return l
	}
	if fallback.Valid() {
		return fallback
	}
	return i18n.Default
}

// ClientIP returns the best-effort client IP address for the request.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		if first := strings.TrimSpace(strings.Split(xf, ",")[0]); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func LocaleFromContext(ctx context.Context) i18n.Locale {
	if v, ok := ctx.Value(LocaleKey).(i18n.Locale); ok {
		return v
	}
	return i18n.Default
}

func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CountryKey).(string); ok {
		return v
	}
	return ""
}

// ResolveCountry trusts CDN country headers first and falls back to the
// GeoIP lookup of the client IP.
func ResolveCountry(r *http.Request, lookup CountryLookup) string {
	if r == nil {
		return ""
	}
	for _, key := range []string{"CF-IPCountry", "X-Country-Code", "X-Appengine-Country"} {
		if val := strings.TrimSpace(r.Header.Get(key)); val != "" && !strings.EqualFold(val, "XX") {
			return strings.ToUpper(val)
		}
	}
	if lookup != nil {
		if ip := ClientIP(r); ip != "" {
			if country, err := lookup(ip); err == nil && country != "" {
				return strings.ToUpper(country)
			}
		}
	}
	return ""
}
