package wake

import (
	"context"

	"remote-controller/core/audit"
	"remote-controller/core/logger"
	"remote-controller/core/wol"

	"go.uber.org/zap"
)

// Service wakes the configured machine.
type Service struct {
	sender          wol.Sender
	physicalAddress string
	recorder        audit.Recorder
	logger          *zap.Logger
}

// NewService creates a new wake service.
func NewService(sender wol.Sender, physicalAddress string, recorder audit.Recorder, logger *zap.Logger) *Service {
	return &Service{
		sender:          sender,
		physicalAddress: physicalAddress,
		recorder:        recorder,
		logger:          logger,
	}
}

// Wake sends one magic packet on behalf of remoteAddr and returns the send error, if any.
func (s *Service) Wake(ctx context.Context, remoteAddr string) error {
	l := logger.FromContext(ctx, s.logger).With(zap.String("physical_address", s.physicalAddress))

	err := s.sender.Send(ctx, s.physicalAddress)

	ev := audit.WakeEvent{
		PhysicalAddress: s.physicalAddress,
		RemoteAddr:      remoteAddr,
		Success:         err == nil,
	}
	if err != nil {
		ev.Error = err.Error()
		l.Error("Magic packet transmission failed", zap.Error(err))
	} else {
		l.Info("Magic packet sent")
	}

	if s.recorder != nil {
		if recErr := s.recorder.Record(ctx, ev); recErr != nil {
			l.Warn("Failed to record wake event", zap.Error(recErr))
		}
	}

	return err
}
