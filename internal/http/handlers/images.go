package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"imagecraft/internal/domain"
	"imagecraft/internal/imagegen"
	"imagecraft/internal/middleware"
	"imagecraft/internal/providers/image"
)

const maxGenerateBody = 1 << 20

type generateImageRequest struct {
	Prompt   string            `json:"prompt" validate:"required,min=1"`
	MaskType domain.MaskType   `json:"maskType" validate:"required,oneof=medical fashion carnival sports artistic custom"`
	Size     domain.ImageSize  `json:"size" validate:"required,oneof=1024x1024 1792x1024 1024x1792"`
	Style    domain.ImageStyle `json:"style" validate:"required,oneof=realistic artistic cartoon abstract"`
}

func (req *generateImageRequest) applyDefaults() {
	if req.Size == "" {
		req.Size = domain.DefaultImageSize
	}
	if req.Style == "" {
		req.Style = domain.DefaultImageStyle
	}
}

func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateImageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGenerateBody)).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, errTypeGeneration, "Invalid request body")
		return
	}
	req.applyDefaults()
	// Blank prompts fail validation but the stored prompt keeps the user's text.
	checked := req
	checked.Prompt = strings.TrimSpace(checked.Prompt)
	if err := a.validate.StructCtx(r.Context(), checked); err != nil {
		msg, details := describeValidation(err)
		a.json(w, http.StatusBadRequest, errorResponse{Error: msg, Type: errTypeGeneration, Details: details})
		return
	}

	result, err := a.Generator.Generate(r.Context(), imagegen.Request{
		Prompt:   req.Prompt,
		MaskType: req.MaskType,
		Size:     req.Size,
		Style:    req.Style,
	})
	if err != nil {
		var genErr *image.GenerationError
		if errors.As(err, &genErr) {
			a.Logger.Warn().
				Err(genErr.Unwrap()).
				Str("request_id", middleware.RequestIDFromContext(r.Context())).
				Str("kind", string(genErr.Kind)).
				Msg("image generation failed")
			a.error(w, http.StatusBadRequest, errTypeGeneration, genErr.Error())
			return
		}
		a.internalError(w, r, err, "image generation failed")
		return
	}

	record, err := a.Images.CreateImage(r.Context(), domain.NewImage{
		Prompt:   req.Prompt,
		MaskType: req.MaskType,
		ImageURL: result.URL,
		Size:     req.Size,
		Style:    req.Style,
	})
	if err != nil {
		a.internalError(w, r, err, "store generated image")
		return
	}
	a.json(w, http.StatusOK, record)
}

func (a *App) ImagesList(w http.ResponseWriter, r *http.Request) {
	images, err := a.Images.ListImages(r.Context())
	if err != nil {
		a.internalError(w, r, err, "list images")
		return
	}
	if images == nil {
		images = []domain.GeneratedImage{}
	}
	a.json(w, http.StatusOK, images)
}

func (a *App) ImageGet(w http.ResponseWriter, r *http.Request) {
	id, ok := imageID(r)
	if !ok {
		a.notFound(w)
		return
	}
	img, found, err := a.Images.ImageByID(r.Context(), id)
	if err != nil {
		a.internalError(w, r, err, "get image")
		return
	}
	if !found {
		a.notFound(w)
		return
	}
	a.json(w, http.StatusOK, img)
}

func (a *App) ImageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := imageID(r)
	if !ok {
		a.notFound(w)
		return
	}
	deleted, err := a.Images.DeleteImage(r.Context(), id)
	if err != nil {
		a.internalError(w, r, err, "delete image")
		return
	}
	if !deleted {
		a.notFound(w)
		return
	}
	a.json(w, http.StatusOK, map[string]bool{"success": true})
}

// imageID parses the {id} path segment. Anything that is not a base 10
// integer is treated as an unknown image.
func imageID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
