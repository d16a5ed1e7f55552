package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"slacknotifier/clients"
	"slacknotifier/config"
)

func setupMessagingService(cfg config.SlackConfig) (*MessagingService, *clients.MockSlackClient) {
	mockSlackClient := new(clients.MockSlackClient)
	service := NewMessagingService(mockSlackClient, cfg)
	return service, mockSlackClient
}

func TestSendMessage(t *testing.T) {
	t.Run("Success_ExplicitChannel", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{DefaultChannel: "C_DEFAULT"})

		mockSlackClient.On("PostMessage", mock.Anything, "C123", clients.SlackMessageParams{
			Text:     "hello",
			ThreadTS: mo.None[string](),
		}).Return(&clients.SlackPostMessageResponse{Channel: "C123", Timestamp: "1700000000.000100"}, nil)

		result := service.SendMessage(context.Background(), "hello", mo.Some("C123"), mo.None[string]())

		require.True(t, result.Ok)
		assert.Equal(t, "1700000000.000100", result.TS)
		assert.Equal(t, "C123", result.Channel)
		assert.Empty(t, result.Error)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("Success_DefaultChannelFallback", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{DefaultChannel: "C_DEFAULT"})

		mockSlackClient.On("PostMessage", mock.Anything, "C_DEFAULT", mock.Anything).
			Return(&clients.SlackPostMessageResponse{Channel: "C_DEFAULT", Timestamp: "1700000000.000200"}, nil)

		result := service.SendMessage(context.Background(), "hello", mo.None[string](), mo.None[string]())

		require.True(t, result.Ok)
		assert.Equal(t, "C_DEFAULT", result.Channel)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("Success_ThreadReply", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("PostMessage", mock.Anything, "C123", clients.SlackMessageParams{
			Text:     "in thread",
			ThreadTS: mo.Some("1700000000.000100"),
		}).Return(&clients.SlackPostMessageResponse{Channel: "C123", Timestamp: "1700000000.000300"}, nil)

		result := service.SendMessage(
			context.Background(),
			"in thread",
			mo.Some("C123"),
			mo.Some("1700000000.000100"),
		)

		require.True(t, result.Ok)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("Failure_NoChannelConfigured", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		result := service.SendMessage(context.Background(), "hello", mo.None[string](), mo.None[string]())

		require.False(t, result.Ok)
		assert.Contains(t, result.Error, "no channel specified")
		assert.Empty(t, result.TS)
		mockSlackClient.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure_APIError", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("PostMessage", mock.Anything, "C123", mock.Anything).
			Return(nil, errors.New("channel_not_found"))

		result := service.SendMessage(context.Background(), "hello", mo.Some("C123"), mo.None[string]())

		require.False(t, result.Ok)
		assert.Equal(t, "channel_not_found", result.Error)
		assert.Empty(t, result.TS)
		assert.Empty(t, result.Channel)
	})
}

func TestGetThreadReplies(t *testing.T) {
	parentTS := "1700000000.000100"

	t.Run("Success_FiltersParentAndBots", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetThreadReplies", mock.Anything, clients.SlackThreadRepliesParameters{
			ChannelID: "C123",
			ThreadTS:  parentTS,
		}).Return([]clients.SlackThreadMessage{
			{Text: "parent", UserID: "U1", Timestamp: parentTS},
			{Text: "bot message", BotID: "B1", Timestamp: "1700000000.000200"},
			{Text: "human reply", UserID: "U2", Timestamp: "1700000000.000300", ThreadTS: parentTS},
		}, nil)
		mockSlackClient.On("GetUserInfo", mock.Anything, "U2").
			Return(&clients.SlackUser{ID: "U2", Name: "jane", Profile: clients.SlackUserProfile{RealName: "Jane Doe"}}, nil)

		replies, err := service.GetThreadReplies(context.Background(), "C123", parentTS, mo.None[string]())

		require.NoError(t, err)
		require.Len(t, replies, 1)
		assert.Equal(t, "human reply", replies[0].Text)
		assert.Equal(t, "U2", replies[0].UserID)
		assert.Equal(t, "Jane Doe", replies[0].UserName)
		assert.Equal(t, "C123", replies[0].Channel)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("Success_SinceFilterIsNumeric", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		// "1700000000.2" is numerically after "1700000000.000150" even
		// though plain string order disagrees
		mockSlackClient.On("GetThreadReplies", mock.Anything, clients.SlackThreadRepliesParameters{
			ChannelID: "C123",
			ThreadTS:  parentTS,
			Oldest:    "1700000000.000150",
		}).Return([]clients.SlackThreadMessage{
			{Text: "at floor", UserID: "U1", Timestamp: "1700000000.000150"},
			{Text: "after floor", UserID: "U2", Timestamp: "1700000000.2"},
		}, nil)
		mockSlackClient.On("GetUserInfo", mock.Anything, "U2").
			Return(&clients.SlackUser{ID: "U2", Name: "jane"}, nil)

		replies, err := service.GetThreadReplies(
			context.Background(),
			"C123",
			parentTS,
			mo.Some("1700000000.000150"),
		)

		require.NoError(t, err)
		require.Len(t, replies, 1)
		assert.Equal(t, "after floor", replies[0].Text)
	})

	t.Run("Failure_APIErrorIsWrapped", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetThreadReplies", mock.Anything, mock.Anything).
			Return(nil, errors.New("thread_not_found"))

		replies, err := service.GetThreadReplies(context.Background(), "C123", parentTS, mo.None[string]())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get thread replies")
		assert.Contains(t, err.Error(), "thread_not_found")
		assert.Nil(t, replies)
	})
}

func TestWaitForReply(t *testing.T) {
	parentTS := "1700000000.000100"

	t.Run("Success_FirstReplyWins", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetThreadReplies", mock.Anything, clients.SlackThreadRepliesParameters{
			ChannelID: "C123",
			ThreadTS:  parentTS,
			Oldest:    parentTS,
		}).Return([]clients.SlackThreadMessage{
			{Text: "first", UserID: "U1", Timestamp: "1700000000.000200"},
			{Text: "second", UserID: "U2", Timestamp: "1700000000.000300"},
		}, nil)
		mockSlackClient.On("GetUserInfo", mock.Anything, mock.Anything).
			Return(nil, errors.New("user_not_found"))

		reply, err := service.WaitForReply(
			context.Background(),
			"C123",
			parentTS,
			time.Second,
			time.Millisecond,
		)

		require.NoError(t, err)
		require.True(t, reply.IsPresent())
		assert.Equal(t, "first", reply.MustGet().Text)
	})

	t.Run("Success_ReplyOnSecondPoll", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetThreadReplies", mock.Anything, mock.Anything).
			Return([]clients.SlackThreadMessage{}, nil).Once()
		mockSlackClient.On("GetThreadReplies", mock.Anything, mock.Anything).
			Return([]clients.SlackThreadMessage{
				{Text: "late reply", UserID: "U1", Timestamp: "1700000000.000200"},
			}, nil)
		mockSlackClient.On("GetUserInfo", mock.Anything, "U1").
			Return(&clients.SlackUser{ID: "U1", Name: "jane"}, nil)

		reply, err := service.WaitForReply(
			context.Background(),
			"C123",
			parentTS,
			time.Second,
			time.Millisecond,
		)

		require.NoError(t, err)
		require.True(t, reply.IsPresent())
		assert.Equal(t, "late reply", reply.MustGet().Text)
	})

	t.Run("Timeout_NoReply", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetThreadReplies", mock.Anything, mock.Anything).
			Return([]clients.SlackThreadMessage{}, nil)

		reply, err := service.WaitForReply(
			context.Background(),
			"C123",
			parentTS,
			20*time.Millisecond,
			5*time.Millisecond,
		)

		require.NoError(t, err)
		assert.False(t, reply.IsPresent())
	})

	t.Run("Timeout_BotRepliesIgnored", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetThreadReplies", mock.Anything, mock.Anything).
			Return([]clients.SlackThreadMessage{
				{Text: "bot noise", BotID: "B1", Timestamp: "1700000000.000200"},
			}, nil)

		reply, err := service.WaitForReply(
			context.Background(),
			"C123",
			parentTS,
			20*time.Millisecond,
			5*time.Millisecond,
		)

		require.NoError(t, err)
		assert.False(t, reply.IsPresent())
	})

	t.Run("Failure_ListingErrorPropagates", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetThreadReplies", mock.Anything, mock.Anything).
			Return(nil, errors.New("channel_not_found"))

		reply, err := service.WaitForReply(
			context.Background(),
			"C123",
			parentTS,
			time.Second,
			time.Millisecond,
		)

		require.Error(t, err)
		assert.False(t, reply.IsPresent())
	})

	t.Run("Failure_ContextCancelled", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetThreadReplies", mock.Anything, mock.Anything).
			Return([]clients.SlackThreadMessage{}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		reply, err := service.WaitForReply(ctx, "C123", parentTS, time.Second, 5*time.Millisecond)

		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, reply.IsPresent())
	})
}

func TestResolveUserName(t *testing.T) {
	t.Run("PrefersRealName", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetUserInfo", mock.Anything, "U1").
			Return(&clients.SlackUser{ID: "U1", Name: "jane", Profile: clients.SlackUserProfile{RealName: "Jane Doe"}}, nil)

		name := service.ResolveUserName(context.Background(), "U1")

		assert.Equal(t, "Jane Doe", name.MustGet())
	})

	t.Run("FallsBackToHandle", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetUserInfo", mock.Anything, "U1").
			Return(&clients.SlackUser{ID: "U1", Name: "jane"}, nil)

		name := service.ResolveUserName(context.Background(), "U1")

		assert.Equal(t, "jane", name.MustGet())
	})

	t.Run("FallsBackToUserID", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetUserInfo", mock.Anything, "U1").
			Return(&clients.SlackUser{ID: "U1"}, nil)

		name := service.ResolveUserName(context.Background(), "U1")

		assert.Equal(t, "U1", name.MustGet())
	})

	t.Run("CachesSuccessfulLookup", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetUserInfo", mock.Anything, "U1").
			Return(&clients.SlackUser{ID: "U1", Name: "jane"}, nil).
			Once()

		first := service.ResolveUserName(context.Background(), "U1")
		second := service.ResolveUserName(context.Background(), "U1")

		assert.Equal(t, "jane", first.MustGet())
		assert.Equal(t, "jane", second.MustGet())
		mockSlackClient.AssertNumberOfCalls(t, "GetUserInfo", 1)
	})

	t.Run("DoesNotCacheFailedLookup", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("GetUserInfo", mock.Anything, "U1").
			Return(nil, errors.New("user_not_found")).
			Once()
		mockSlackClient.On("GetUserInfo", mock.Anything, "U1").
			Return(&clients.SlackUser{ID: "U1", Name: "jane"}, nil).
			Once()

		first := service.ResolveUserName(context.Background(), "U1")
		second := service.ResolveUserName(context.Background(), "U1")

		assert.False(t, first.IsPresent())
		assert.Equal(t, "jane", second.MustGet())
		mockSlackClient.AssertNumberOfCalls(t, "GetUserInfo", 2)
	})

	t.Run("EmptyUserID", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		name := service.ResolveUserName(context.Background(), "")

		assert.False(t, name.IsPresent())
		mockSlackClient.AssertNotCalled(t, "GetUserInfo", mock.Anything, mock.Anything)
	})
}

func TestResolveChannelID(t *testing.T) {
	t.Run("Success_StripsHashPrefix", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("ListChannels", mock.Anything, "").
			Return([]clients.SlackChannel{
				{ID: "C111", Name: "general"},
				{ID: "C222", Name: "alerts"},
			}, "", nil)

		channelID, err := service.ResolveChannelID(context.Background(), "#alerts")

		require.NoError(t, err)
		assert.Equal(t, "C222", channelID.MustGet())
	})

	t.Run("Success_FollowsPagination", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("ListChannels", mock.Anything, "").
			Return([]clients.SlackChannel{{ID: "C111", Name: "general"}}, "cursor-1", nil)
		mockSlackClient.On("ListChannels", mock.Anything, "cursor-1").
			Return([]clients.SlackChannel{{ID: "C333", Name: "infra"}}, "", nil)

		channelID, err := service.ResolveChannelID(context.Background(), "infra")

		require.NoError(t, err)
		assert.Equal(t, "C333", channelID.MustGet())
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("ListChannels", mock.Anything, "").
			Return([]clients.SlackChannel{{ID: "C111", Name: "general"}}, "", nil)

		channelID, err := service.ResolveChannelID(context.Background(), "missing")

		require.NoError(t, err)
		assert.False(t, channelID.IsPresent())
	})

	t.Run("Failure_APIError", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("ListChannels", mock.Anything, "").
			Return(nil, "", errors.New("invalid_auth"))

		channelID, err := service.ResolveChannelID(context.Background(), "general")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list channels")
		assert.False(t, channelID.IsPresent())
	})
}

func TestBotUserID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("AuthTest", mock.Anything).
			Return(&clients.SlackAuthTestResponse{UserID: "UBOT", TeamID: "T123"}, nil)

		userID, err := service.BotUserID(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "UBOT", userID)
	})

	t.Run("Failure", func(t *testing.T) {
		service, mockSlackClient := setupMessagingService(config.SlackConfig{})

		mockSlackClient.On("AuthTest", mock.Anything).
			Return(nil, errors.New("invalid_auth"))

		userID, err := service.BotUserID(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to verify bot credentials")
		assert.Empty(t, userID)
	})
}

func TestUserMention(t *testing.T) {
	t.Run("Configured", func(t *testing.T) {
		service, _ := setupMessagingService(config.SlackConfig{UserID: "U123456789"})

		assert.Equal(t, "<@U123456789>", service.UserMention().MustGet())
	})

	t.Run("NotConfigured", func(t *testing.T) {
		service, _ := setupMessagingService(config.SlackConfig{})

		assert.False(t, service.UserMention().IsPresent())
	})
}
