package slack

import (
	"context"

	"github.com/slack-go/slack"

	"slacknotifier/clients"
)

// SlackClient implements the clients.SlackClient interface using the slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided bot token
func NewSlackClient(authToken string) clients.SlackClient {
	return &SlackClient{
		Client: slack.New(authToken),
	}
}

// AuthTest verifies the bot token and returns information about the bot
func (c *SlackClient) AuthTest(ctx context.Context) (*clients.SlackAuthTestResponse, error) {
	response, err := c.Client.AuthTestContext(ctx)
	if err != nil {
		return nil, err
	}

	return &clients.SlackAuthTestResponse{
		UserID: response.UserID,
		TeamID: response.TeamID,
	}, nil
}

// PostMessage sends a message to a Slack channel, optionally as a thread reply
func (c *SlackClient) PostMessage(
	ctx context.Context,
	channelID string,
	params clients.SlackMessageParams,
) (*clients.SlackPostMessageResponse, error) {
	options := []slack.MsgOption{slack.MsgOptionText(params.Text, false)}
	if threadTS, ok := params.ThreadTS.Get(); ok {
		options = append(options, slack.MsgOptionTS(threadTS))
	}

	channel, timestamp, err := c.Client.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return nil, err
	}

	return &clients.SlackPostMessageResponse{
		Channel:   channel,
		Timestamp: timestamp,
	}, nil
}

// GetThreadReplies lists all messages attached to a thread parent, following
// the response cursor until the thread is exhausted
func (c *SlackClient) GetThreadReplies(
	ctx context.Context,
	params clients.SlackThreadRepliesParameters,
) ([]clients.SlackThreadMessage, error) {
	sdkParams := &slack.GetConversationRepliesParameters{
		ChannelID: params.ChannelID,
		Timestamp: params.ThreadTS,
		Oldest:    params.Oldest,
	}

	var messages []clients.SlackThreadMessage
	for {
		page, hasMore, nextCursor, err := c.Client.GetConversationRepliesContext(ctx, sdkParams)
		if err != nil {
			return nil, err
		}

		for _, msg := range page {
			messages = append(messages, clients.SlackThreadMessage{
				Text:      msg.Text,
				UserID:    msg.User,
				BotID:     msg.BotID,
				Timestamp: msg.Timestamp,
				ThreadTS:  msg.ThreadTimestamp,
			})
		}

		if !hasMore {
			return messages, nil
		}
		sdkParams.Cursor = nextCursor
	}
}

// GetUserInfo gets information about a Slack user
func (c *SlackClient) GetUserInfo(ctx context.Context, userID string) (*clients.SlackUser, error) {
	user, err := c.Client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &clients.SlackUser{
		ID:   user.ID,
		Name: user.Name,
		Profile: clients.SlackUserProfile{
			DisplayName: user.Profile.DisplayName,
			RealName:    user.Profile.RealName,
		},
	}, nil
}

// ListChannels returns one page of public and private channels starting at
// the given cursor, together with the cursor for the next page
func (c *SlackClient) ListChannels(ctx context.Context, cursor string) ([]clients.SlackChannel, string, error) {
	sdkParams := &slack.GetConversationsParameters{
		Types:  []string{"public_channel", "private_channel"},
		Cursor: cursor,
		Limit:  200,
	}

	channels, nextCursor, err := c.Client.GetConversationsContext(ctx, sdkParams)
	if err != nil {
		return nil, "", err
	}

	customChannels := make([]clients.SlackChannel, 0, len(channels))
	for _, channel := range channels {
		customChannels = append(customChannels, clients.SlackChannel{
			ID:   channel.ID,
			Name: channel.Name,
		})
	}

	return customChannels, nextCursor, nil
}
