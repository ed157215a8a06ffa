package wake

import (
	"remote-controller/core/audit"
	"remote-controller/core/router"
	"remote-controller/core/wol"

	"go.uber.org/zap"
)

// Feature implements loader.Feature for the wake route.
type Feature struct {
	handler *Handler
}

// NewFeature wires the wake service and handler.
func NewFeature(sender wol.Sender, physicalAddress string, recorder audit.Recorder, logger *zap.Logger) *Feature {
	svc := NewService(sender, physicalAddress, recorder, logger)
	return &Feature{handler: NewHandler(svc)}
}

func (f *Feature) Name() string {
	return "wake"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(r *router.Router) error {
	return f.handler.RegisterRoutes(r)
}
