package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of provider.Client
type Client struct {
	mock.Mock
}

func (m *Client) AddSharedVoice(ctx context.Context, apiKey, ownerID, voiceID, name string) error {
	args := m.Called(ctx, apiKey, ownerID, voiceID, name)
	return args.Error(0)
}
