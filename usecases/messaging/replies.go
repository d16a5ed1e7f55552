package messaging

import (
	"context"
	"fmt"
	"log"
	"strings"

	"slacknotifier/models/api"
)

// GetThreadReplies lists the human replies to a thread. Channel names with a
// leading '#' are resolved to IDs first since conversations.replies only
// accepts IDs. Remote failures are folded into a normalized failure response
// with an empty reply list - this tool never raises.
func (u *MessagingUseCase) GetThreadReplies(
	ctx context.Context,
	args api.ThreadRepliesArgs,
) *api.ThreadRepliesResponse {
	log.Printf("📥 Starting to get thread replies for thread %s in channel %s", args.ThreadTS, args.Channel)

	channel := args.Channel
	if strings.HasPrefix(channel, "#") {
		maybeChannelID, err := u.messagingService.ResolveChannelID(ctx, channel)
		if err != nil {
			return failedThreadReplies(fmt.Sprintf("Failed to resolve channel %s: %v", channel, err))
		}
		channelID, ok := maybeChannelID.Get()
		if !ok {
			return failedThreadReplies(fmt.Sprintf("Channel %s not found", channel))
		}
		channel = channelID
	}

	replies, err := u.messagingService.GetThreadReplies(
		ctx,
		channel,
		args.ThreadTS,
		optionalString(args.SinceTS),
	)
	if err != nil {
		log.Printf("❌ Failed to get thread replies: %v", err)
		return failedThreadReplies(err.Error())
	}

	normalized := make([]api.ThreadReply, 0, len(replies))
	for _, reply := range replies {
		user := reply.UserName
		if user == "" {
			user = reply.UserID
		}
		normalized = append(normalized, api.ThreadReply{
			Text:   reply.Text,
			User:   user,
			UserID: reply.UserID,
			TS:     reply.Timestamp,
		})
	}

	return &api.ThreadRepliesResponse{
		Success: true,
		Message: fmt.Sprintf("Found %d replies", len(normalized)),
		Replies: normalized,
		Count:   len(normalized),
	}
}

func failedThreadReplies(message string) *api.ThreadRepliesResponse {
	return &api.ThreadRepliesResponse{
		Success: false,
		Message: message,
		Replies: []api.ThreadReply{},
		Count:   0,
	}
}
