package wake

import (
	"context"

	"remote-controller/core/request"
	"remote-controller/core/response"
	"remote-controller/core/router"
)

// Path is the route served by this feature.
const Path = "/turn_on"

// Handler handles wake requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the wake route.
func (h *Handler) RegisterRoutes(r *router.Router) error {
	return r.Post(Path, h.HandleTurnOn)
}

// HandleTurnOn sends the magic packet.
func (h *Handler) HandleTurnOn(ctx context.Context, req *request.Request) response.Response {
	if err := h.service.Wake(ctx, req.RemoteAddr); err != nil {
		return response.InternalError(err)
	}
	return response.OK("")
}
