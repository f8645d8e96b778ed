package fulfillment

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cnres-bot/internal/logger"
)

// Handler exposes the fulfillment service over HTTP for bot webhooks and
// local testing.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Routes mounts the fulfillment endpoints on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/fulfillment", h.Fulfill)
	r.Get("/health", h.Health)
}

// Fulfill handles POST /fulfillment with a bot event body.
func (h *Handler) Fulfill(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.logger.Error("validation_failed", "Failed to parse fulfillment event", requestID, err, nil)
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if event.SessionState.Intent.Name == "" {
		h.logger.Error("validation_failed", "Event has no intent", requestID, nil, nil)
		http.Error(w, "event has no intent", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response := h.service.HandleEvent(ctx, &event, requestID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("response_failed", "Failed to write fulfillment response", requestID, err, nil)
	}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
