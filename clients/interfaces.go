package clients

import "context"

// SlackClient defines the interface for all interaction with the Slack API
type SlackClient interface {
	AuthTest(ctx context.Context) (*SlackAuthTestResponse, error)
	PostMessage(ctx context.Context, channelID string, params SlackMessageParams) (*SlackPostMessageResponse, error)
	GetThreadReplies(ctx context.Context, params SlackThreadRepliesParameters) ([]SlackThreadMessage, error)
	GetUserInfo(ctx context.Context, userID string) (*SlackUser, error)
	ListChannels(ctx context.Context, cursor string) ([]SlackChannel, string, error)
}
