package handlers

import (
	"bytes"
	"net/http"

	"imagecraft/internal/i18n"
	"imagecraft/internal/middleware"
)

// Locales returns the dictionary for ?locale= or, when absent or
// unsupported, for the locale detected from the request.
func (a *App) Locales(w http.ResponseWriter, r *http.Request) {
	locale, ok := i18n.Parse(r.URL.Query().Get("locale"))
	if !ok {
		locale = middleware.LocaleFromContext(r.Context())
	}
	a.json(w, http.StatusOK, i18n.For(locale))
}

func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	if a.UI == nil {
		http.NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := a.UI.RenderIndex(&buf, middleware.LocaleFromContext(r.Context())); err != nil {
		a.Logger.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("render index")
		http.Error(w, msgInternalServer, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
