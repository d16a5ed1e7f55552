package messaging

import (
	"context"
	"fmt"
	"log"

	"slacknotifier/models"
	"slacknotifier/models/api"
)

// Send formats and posts a notification. The urgency tier controls the
// message prefix: normal has none, important gets a warning marker and
// critical gets an @here broadcast. A mention of the configured user is
// prepended when requested.
func (u *MessagingUseCase) Send(ctx context.Context, args api.NotifyArgs) *api.SendResponse {
	log.Printf("📤 Starting to send %s notification to channel %q", urgencyOrNormal(args.Urgency), args.Channel)

	mentionPrefix := ""
	if args.MentionUser {
		if mention, ok := u.messagingService.UserMention().Get(); ok {
			mentionPrefix = mention + " "
		} else {
			log.Printf("⚠️ mention_user requested but no SLACK_USER_ID configured")
		}
	}

	var text string
	switch urgencyOrNormal(args.Urgency) {
	case models.UrgencyCritical:
		text = fmt.Sprintf("%s<!here> :rotating_light: *CRITICAL*\n%s", mentionPrefix, args.Message)
	case models.UrgencyImportant:
		text = fmt.Sprintf("%s:warning: *Important*\n%s", mentionPrefix, args.Message)
	default:
		text = mentionPrefix + args.Message
	}

	result := u.messagingService.SendMessage(
		ctx,
		text,
		optionalString(args.Channel),
		optionalString(args.ThreadTS),
	)
	if !result.Ok {
		return &api.SendResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to send message: %s", result.Error),
			Error:   result.Error,
		}
	}

	return &api.SendResponse{
		Success: true,
		Message: "Message sent",
		TS:      result.TS,
		Channel: result.Channel,
	}
}

func urgencyOrNormal(urgency string) models.Urgency {
	switch models.Urgency(urgency) {
	case models.UrgencyImportant, models.UrgencyCritical:
		return models.Urgency(urgency)
	default:
		return models.UrgencyNormal
	}
}
