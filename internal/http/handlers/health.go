package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	n, err := a.Images.CountImages(r.Context())
	if err != nil {
		a.internalError(w, r, err, "count images")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"status": "ok", "images": n})
}
