package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/vendor-portal/internal/web"
)

type Handler struct{ provider Provider }

func NewHandler(provider Provider) *Handler { return &Handler{provider: provider} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/presign", h.presign)
}

func (h *Handler) presign(w http.ResponseWriter, r *http.Request) {
	target, err := h.provider.Target()
	if err != nil {
		web.WriteError(w, r, web.Misconfigured("upload provider not configured", err))
		return
	}
	web.JSON(w, http.StatusOK, target)
}
