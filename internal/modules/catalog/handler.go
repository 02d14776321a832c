package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/vendor-portal/internal/logger"
	"github.com/georgemunganga/vendor-portal/internal/web"
)

// maxSubmissionBytes bounds a submission body. Images arrive as URLs, so this
// only needs headroom for long descriptions.
const maxSubmissionBytes = 20 << 20

// Handler exposes the vendor submission endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/submit", h.submit)
}

type submitResponse struct {
	OK        bool  `json:"ok"`
	ProductID int64 `json:"productId"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var sub VendorSubmission
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmissionBytes)).Decode(&sub); err != nil {
		web.WriteError(w, r, web.Validation("invalid request body", err))
		return
	}

	p, err := h.service.SubmitProduct(r.Context(), sub)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			web.WriteError(w, r, web.Validation(verr.Error(), nil))
			return
		}
		web.WriteError(w, r, web.Remote("submit failed", err))
		return
	}

	logger.FromContext(r.Context()).Info("draft product created",
		zap.Int64("product_id", p.ID),
		zap.String("vendor", p.Vendor),
		zap.Int("images", len(p.ImageURLs)))
	web.JSON(w, http.StatusOK, submitResponse{OK: true, ProductID: p.ID})
}
