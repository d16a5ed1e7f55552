package services

import (
	"context"
	"time"

	"github.com/samber/mo"

	"slacknotifier/models"
)

// MessagingService defines the interface for all Slack messaging operations
type MessagingService interface {
	// SendMessage posts a message to a channel or thread. A failed send is a
	// normal outcome reported through SendResult, never through a Go error.
	SendMessage(ctx context.Context, text string, channel, threadTS mo.Option[string]) *models.SendResult
	// GetThreadReplies lists the human replies to a thread parent, excluding
	// the parent itself, bot messages and anything at or before sinceTS.
	GetThreadReplies(
		ctx context.Context,
		channel, threadTS string,
		sinceTS mo.Option[string],
	) ([]*models.Message, error)
	// WaitForReply polls the thread until the first human reply appears or
	// the timeout elapses. Returns None on timeout.
	WaitForReply(
		ctx context.Context,
		channel, threadTS string,
		timeout, pollInterval time.Duration,
	) (mo.Option[*models.Message], error)
	ResolveUserName(ctx context.Context, userID string) mo.Option[string]
	ResolveChannelID(ctx context.Context, channelName string) (mo.Option[string], error)
	BotUserID(ctx context.Context) (string, error)
	// UserMention returns mention markup for the configured user, no network call
	UserMention() mo.Option[string]
}
