package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"imagecraft/internal/http/handlers"
	"imagecraft/internal/i18n"
	"imagecraft/internal/middleware"
)

type Options struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	DefaultLocale  i18n.Locale
	CountryLookup  middleware.CountryLookup
	// Static serves UI assets under /static/. Nil disables the mount.
	Static http.Handler
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/i18n", app.Locales)

		r.Route("/images", func(r chi.Router) {
			r.Get("/", app.ImagesList)
			r.Post("/generate", app.ImagesGenerate)
			r.Get("/{id}", app.ImageGet)
			r.Delete("/{id}", app.ImageDelete)
		})
	})

	r.Get("/", app.Index)
	if opts.Static != nil {
		r.Handle("/static/*", opts.Static)
	}

	return r
}
