package messaging

import (
	"context"

	"github.com/stretchr/testify/mock"

	"slacknotifier/models/api"
)

// MockMessagingUseCase is a mock implementation of MessagingUseCaseInterface
type MockMessagingUseCase struct {
	mock.Mock
}

func (m *MockMessagingUseCase) Send(ctx context.Context, args api.NotifyArgs) *api.SendResponse {
	callArgs := m.Called(ctx, args)
	return callArgs.Get(0).(*api.SendResponse)
}

func (m *MockMessagingUseCase) AskUser(ctx context.Context, args api.AskUserArgs) *api.AskUserResponse {
	callArgs := m.Called(ctx, args)
	return callArgs.Get(0).(*api.AskUserResponse)
}

func (m *MockMessagingUseCase) GetThreadReplies(
	ctx context.Context,
	args api.ThreadRepliesArgs,
) *api.ThreadRepliesResponse {
	callArgs := m.Called(ctx, args)
	return callArgs.Get(0).(*api.ThreadRepliesResponse)
}
