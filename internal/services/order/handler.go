package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cnres-bot/internal/logger"
)

// Handler handles HTTP requests for the direct order API.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Routes mounts the order endpoints on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
}

// CreateOrder handles POST /orders requests.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Header.Get("Content-Type") != "application/json" {
		h.writeError(w, http.StatusBadRequest, "Content-Type must be application/json", requestID)
		return
	}

	var req Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse order request", requestID, err, nil)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	resp, err := h.service.CreateOrder(ctx, &req, requestID)
	if err != nil {
		var unknown *UnknownDishError
		var invalid *ValidationError
		switch {
		case errors.As(err, &unknown):
			h.writeError(w, http.StatusUnprocessableEntity, unknown.Error(), requestID)
		case errors.As(err, &invalid):
			h.writeError(w, http.StatusBadRequest, invalid.Error(), requestID)
		default:
			h.logger.Error("order_creation_failed", "Failed to create order", requestID, err, nil)
			h.writeError(w, http.StatusInternalServerError, "Internal server error", requestID)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("response_failed", "Failed to write order response", requestID, err, nil)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":      message,
		"request_id": requestID,
	})
}
