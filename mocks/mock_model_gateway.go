package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hsatrack/internal/port"
)

// MockModelGateway is a mock implementation of port.ModelGateway.
type MockModelGateway struct {
	mock.Mock
}

func (m *MockModelGateway) Generate(ctx context.Context, prompt string, doc port.InlineDocument) (*port.ModelResponse, error) {
	args := m.Called(ctx, prompt, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ModelResponse), args.Error(1)
}

func (m *MockModelGateway) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
