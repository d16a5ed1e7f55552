package clients

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSlackClient implements SlackClient for testing
type MockSlackClient struct {
	mock.Mock
}

func (m *MockSlackClient) AuthTest(ctx context.Context) (*SlackAuthTestResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SlackAuthTestResponse), args.Error(1)
}

func (m *MockSlackClient) PostMessage(
	ctx context.Context,
	channelID string,
	params SlackMessageParams,
) (*SlackPostMessageResponse, error) {
	args := m.Called(ctx, channelID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SlackPostMessageResponse), args.Error(1)
}

func (m *MockSlackClient) GetThreadReplies(
	ctx context.Context,
	params SlackThreadRepliesParameters,
) ([]SlackThreadMessage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SlackThreadMessage), args.Error(1)
}

func (m *MockSlackClient) GetUserInfo(ctx context.Context, userID string) (*SlackUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SlackUser), args.Error(1)
}

func (m *MockSlackClient) ListChannels(ctx context.Context, cursor string) ([]SlackChannel, string, error) {
	args := m.Called(ctx, cursor)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]SlackChannel), args.String(1), args.Error(2)
}
