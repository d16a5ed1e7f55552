package messaging

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/samber/mo"

	"slacknotifier/clients"
	"slacknotifier/config"
	"slacknotifier/models"
	"slacknotifier/utils"
)

// MessagingService wraps the Slack client with the messaging operations the
// tool layer needs: soft-fail sends, filtered thread listing, a blocking
// wait for the first human reply, and cached user name resolution.
type MessagingService struct {
	slackClient    clients.SlackClient
	defaultChannel string
	mentionUserID  string

	// userNames caches resolved display names per user ID for the lifetime
	// of the service. Failed lookups are not cached so a later call retries.
	mu        sync.Mutex
	userNames map[string]string
}

func NewMessagingService(slackClient clients.SlackClient, cfg config.SlackConfig) *MessagingService {
	return &MessagingService{
		slackClient:    slackClient,
		defaultChannel: cfg.DefaultChannel,
		mentionUserID:  cfg.UserID,
		userNames:      make(map[string]string),
	}
}

// SendMessage posts a message to a channel or thread. The effective channel
// is the explicit argument, else the configured default; with neither set it
// fails without a network call. Send failures are reported through
// SendResult rather than an error since the caller must branch on them.
func (s *MessagingService) SendMessage(
	ctx context.Context,
	text string,
	channel, threadTS mo.Option[string],
) *models.SendResult {
	targetChannel := channel.OrElse(s.defaultChannel)
	if targetChannel == "" {
		return &models.SendResult{
			Ok: false,
			Error: "no channel specified and no default channel configured - " +
				"set SLACK_DEFAULT_CHANNEL or pass a channel parameter",
		}
	}

	response, err := s.slackClient.PostMessage(ctx, targetChannel, clients.SlackMessageParams{
		Text:     text,
		ThreadTS: threadTS,
	})
	if err != nil {
		log.Printf("❌ Failed to send message to channel %s: %v", targetChannel, err)
		return &models.SendResult{Ok: false, Error: err.Error()}
	}

	log.Printf("📤 Sent message to channel %s at %s", response.Channel, response.Timestamp)
	return &models.SendResult{
		Ok:      true,
		TS:      response.Timestamp,
		Channel: response.Channel,
	}
}

// GetThreadReplies returns the human replies attached to the given thread
// parent. The parent message, bot-authored messages and anything at or
// before sinceTS are filtered out; author names are resolved via the cache.
func (s *MessagingService) GetThreadReplies(
	ctx context.Context,
	channel, threadTS string,
	sinceTS mo.Option[string],
) ([]*models.Message, error) {
	raw, err := s.slackClient.GetThreadReplies(ctx, clients.SlackThreadRepliesParameters{
		ChannelID: channel,
		ThreadTS:  threadTS,
		Oldest:    sinceTS.OrElse(""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get thread replies: %w", err)
	}

	var messages []*models.Message
	for _, msg := range raw {
		if msg.Timestamp == threadTS {
			continue
		}
		if msg.BotID != "" {
			continue
		}
		if since, ok := sinceTS.Get(); ok && !utils.TsAfter(msg.Timestamp, since) {
			continue
		}

		messages = append(messages, &models.Message{
			Text:      msg.Text,
			UserID:    msg.UserID,
			UserName:  s.ResolveUserName(ctx, msg.UserID).OrElse(""),
			Timestamp: msg.Timestamp,
			ThreadTS:  msg.ThreadTS,
			Channel:   channel,
		})
	}

	return messages, nil
}

// WaitForReply polls GetThreadReplies until the first human reply appears or
// the timeout elapses. The since floor stays at the parent's own timestamp
// on every iteration - only the earliest reply matters, and the parent
// itself is always excluded. Sleeps the full poll interval between polls, so
// the actual wait can overshoot the timeout by up to one interval.
func (s *MessagingService) WaitForReply(
	ctx context.Context,
	channel, threadTS string,
	timeout, pollInterval time.Duration,
) (mo.Option[*models.Message], error) {
	log.Printf("⏳ Waiting up to %s for a reply in thread %s", timeout, threadTS)

	start := time.Now()
	for time.Since(start) < timeout {
		replies, err := s.GetThreadReplies(ctx, channel, threadTS, mo.Some(threadTS))
		if err != nil {
			return mo.None[*models.Message](), err
		}
		if len(replies) > 0 {
			log.Printf("✅ Got reply in thread %s from user %s", threadTS, replies[0].UserID)
			return mo.Some(replies[0]), nil
		}

		select {
		case <-ctx.Done():
			return mo.None[*models.Message](), ctx.Err()
		case <-time.After(pollInterval):
		}
	}

	log.Printf("⌛ No reply in thread %s after %s", threadTS, timeout)
	return mo.None[*models.Message](), nil
}

// ResolveUserName returns the user's display name, preferring the profile
// real name, then the handle, then the raw ID. Successful lookups are
// cached; failures return None without caching so a future call retries.
func (s *MessagingService) ResolveUserName(ctx context.Context, userID string) mo.Option[string] {
	if userID == "" {
		return mo.None[string]()
	}

	s.mu.Lock()
	name, ok := s.userNames[userID]
	s.mu.Unlock()
	if ok {
		return mo.Some(name)
	}

	user, err := s.slackClient.GetUserInfo(ctx, userID)
	if err != nil {
		log.Printf("⚠️ Failed to resolve user name for %s: %v", userID, err)
		return mo.None[string]()
	}

	name = user.Profile.RealName
	if name == "" {
		name = user.Name
	}
	if name == "" {
		name = userID
	}

	s.mu.Lock()
	s.userNames[userID] = name
	s.mu.Unlock()

	return mo.Some(name)
}

// ResolveChannelID looks up a channel ID by name, with or without a leading
// '#', paginating through the channel list until a match is found
func (s *MessagingService) ResolveChannelID(
	ctx context.Context,
	channelName string,
) (mo.Option[string], error) {
	name := strings.TrimPrefix(channelName, "#")

	cursor := ""
	for {
		channels, nextCursor, err := s.slackClient.ListChannels(ctx, cursor)
		if err != nil {
			return mo.None[string](), fmt.Errorf("failed to list channels: %w", err)
		}

		for _, channel := range channels {
			if channel.Name == name {
				return mo.Some(channel.ID), nil
			}
		}

		if nextCursor == "" {
			return mo.None[string](), nil
		}
		cursor = nextCursor
	}
}

// BotUserID returns the bot's own user ID via auth.test
func (s *MessagingService) BotUserID(ctx context.Context) (string, error) {
	response, err := s.slackClient.AuthTest(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to verify bot credentials: %w", err)
	}
	return response.UserID, nil
}

// UserMention returns mention markup for the configured user, e.g. <@U12345>
func (s *MessagingService) UserMention() mo.Option[string] {
	if s.mentionUserID == "" {
		return mo.None[string]()
	}
	return mo.Some(fmt.Sprintf("<@%s>", s.mentionUserID))
}
