package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"imagecraft/internal/domain"
	"imagecraft/internal/i18n"
	"imagecraft/internal/imagegen"
	"imagecraft/internal/middleware"
)

// ImageGenerator runs prompt enhancement plus one provider call.
type ImageGenerator interface {
	Generate(ctx context.Context, req imagegen.Request) (imagegen.Result, error)
}

// PageRenderer renders the UI shell for a locale.
type PageRenderer interface {
	RenderIndex(w io.Writer, locale i18n.Locale) error
}

type App struct {
	Logger    zerolog.Logger
	Images    domain.ImageRepository
	Generator ImageGenerator
	UI        PageRenderer

	validate *validator.Validate
}

func NewApp(logger zerolog.Logger, images domain.ImageRepository, generator ImageGenerator, ui PageRenderer) *App {
	return &App{
		Logger:    logger,
		Images:    images,
		Generator: generator,
		UI:        ui,
		validate:  newValidator(),
	}
}

const (
	errTypeGeneration = "generation_error"
	errTypeServer     = "server_error"

	msgImageNotFound  = "Image not found"
	msgInternalServer = "Internal server error"
)

type errorResponse struct {
	Error   string        `json:"error"`
	Type    string        `json:"type,omitempty"`
	Details []fieldDetail `json:"details,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, msg string) {
	a.json(w, code, errorResponse{Error: msg, Type: kind})
}

func (a *App) notFound(w http.ResponseWriter) {
	a.json(w, http.StatusNotFound, errorResponse{Error: msgImageNotFound})
}

// internalError logs err with the request id and hides it from the client.
func (a *App) internalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	a.Logger.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("path", r.URL.Path).
		Msg(msg)
	a.error(w, http.StatusInternalServerError, errTypeServer, msgInternalServer)
}
