package order

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/vendor-portal/internal/logger"
	"github.com/georgemunganga/vendor-portal/internal/web"
)

// Handler exposes the vendor order listing.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/my-orders", h.listMyOrders)
}

type ordersResponse struct {
	Orders []VendorOrderView `json:"orders"`
}

func (h *Handler) listMyOrders(w http.ResponseWriter, r *http.Request) {
	vendorID := strings.TrimSpace(r.URL.Query().Get("vendorId"))
	if vendorID == "" {
		web.WriteError(w, r, web.Validation("vendorId required", nil))
		return
	}

	orders, err := h.service.GetOrdersForVendor(r.Context(), vendorID)
	if err != nil {
		web.WriteError(w, r, web.Remote("orders failed", err))
		return
	}

	logger.FromContext(r.Context()).Debug("vendor orders listed",
		zap.String("vendor_id", vendorID),
		zap.Int("orders", len(orders)))
	web.JSON(w, http.StatusOK, ordersResponse{Orders: orders})
}
