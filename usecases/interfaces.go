package usecases

import (
	"context"

	"slacknotifier/models/api"
)

// MessagingUseCaseInterface defines the interface for the messaging tool
// operations. Every method returns a normalized response and never an
// error - remote failures are folded into the response shape.
type MessagingUseCaseInterface interface {
	Send(ctx context.Context, args api.NotifyArgs) *api.SendResponse
	AskUser(ctx context.Context, args api.AskUserArgs) *api.AskUserResponse
	GetThreadReplies(ctx context.Context, args api.ThreadRepliesArgs) *api.ThreadRepliesResponse
}
