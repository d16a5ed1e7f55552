package services

import (
	"context"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"slacknotifier/models"
)

// MockMessagingService is a mock implementation of MessagingService
type MockMessagingService struct {
	mock.Mock
}

func (m *MockMessagingService) SendMessage(
	ctx context.Context,
	text string,
	channel, threadTS mo.Option[string],
) *models.SendResult {
	args := m.Called(ctx, text, channel, threadTS)
	return args.Get(0).(*models.SendResult)
}

func (m *MockMessagingService) GetThreadReplies(
	ctx context.Context,
	channel, threadTS string,
	sinceTS mo.Option[string],
) ([]*models.Message, error) {
	args := m.Called(ctx, channel, threadTS, sinceTS)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Message), args.Error(1)
}

func (m *MockMessagingService) WaitForReply(
	ctx context.Context,
	channel, threadTS string,
	timeout, pollInterval time.Duration,
) (mo.Option[*models.Message], error) {
	args := m.Called(ctx, channel, threadTS, timeout, pollInterval)
	return args.Get(0).(mo.Option[*models.Message]), args.Error(1)
}

func (m *MockMessagingService) ResolveUserName(ctx context.Context, userID string) mo.Option[string] {
	args := m.Called(ctx, userID)
	return args.Get(0).(mo.Option[string])
}

func (m *MockMessagingService) ResolveChannelID(
	ctx context.Context,
	channelName string,
) (mo.Option[string], error) {
	args := m.Called(ctx, channelName)
	return args.Get(0).(mo.Option[string]), args.Error(1)
}

func (m *MockMessagingService) BotUserID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockMessagingService) UserMention() mo.Option[string] {
	args := m.Called()
	return args.Get(0).(mo.Option[string])
}
