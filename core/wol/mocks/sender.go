package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Sender is a mock implementation of wol.Sender
type Sender struct {
	mock.Mock
}

func (m *Sender) Send(ctx context.Context, physicalAddress string) error {
	args := m.Called(ctx, physicalAddress)
	return args.Error(0)
}
