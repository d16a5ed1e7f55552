package messaging

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/samber/mo"

	"slacknotifier/models/api"
)

// AskUser posts a question to the user and blocks until a reply arrives in
// the question's thread or the timeout elapses. Only the first reply is
// consulted; later replies are ignored. On a reply an acknowledgment is
// posted into the thread, on timeout a "continuing without input" notice -
// both best-effort, their own failures are not surfaced.
func (u *MessagingUseCase) AskUser(ctx context.Context, args api.AskUserArgs) *api.AskUserResponse {
	timeoutMinutes := args.TimeoutMinutes
	if timeoutMinutes <= 0 {
		timeoutMinutes = int(defaultAskTimeout / time.Minute)
	}
	if timeoutMinutes > int(maxAskTimeout/time.Minute) {
		timeoutMinutes = int(maxAskTimeout / time.Minute)
	}
	timeout := time.Duration(timeoutMinutes) * time.Minute

	log.Printf("❓ Starting to ask user a question (timeout %d minutes)", timeoutMinutes)

	question := formatQuestion(args.Question, args.Context, timeoutMinutes)

	sendResult := u.messagingService.SendMessage(
		ctx,
		question,
		optionalString(args.Channel),
		mo.None[string](),
	)
	if !sendResult.Ok {
		log.Printf("❌ Failed to send question: %s", sendResult.Error)
		return &api.AskUserResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to send question: %s", sendResult.Error),
			Error:   sendResult.Error,
			Reply:   nil,
		}
	}

	maybeReply, err := u.messagingService.WaitForReply(
		ctx,
		sendResult.Channel,
		sendResult.TS,
		timeout,
		u.pollInterval,
	)
	if err != nil {
		log.Printf("❌ Failed while waiting for reply in thread %s: %v", sendResult.TS, err)
		return &api.AskUserResponse{
			Success:  false,
			Message:  fmt.Sprintf("Failed while waiting for reply: %v", err),
			Error:    err.Error(),
			Reply:    nil,
			Channel:  sendResult.Channel,
			ThreadTS: sendResult.TS,
		}
	}

	reply, ok := maybeReply.Get()
	if !ok {
		// Best-effort timeout notice into the thread
		u.messagingService.SendMessage(
			ctx,
			fmt.Sprintf(
				":hourglass: No reply received after %d minutes. Continuing without input.",
				timeoutMinutes,
			),
			mo.Some(sendResult.Channel),
			mo.Some(sendResult.TS),
		)

		return &api.AskUserResponse{
			Success:  false,
			Message:  fmt.Sprintf("No reply received within %d minutes", timeoutMinutes),
			Reply:    nil,
			Channel:  sendResult.Channel,
			ThreadTS: sendResult.TS,
		}
	}

	// Best-effort acknowledgment into the thread
	u.messagingService.SendMessage(
		ctx,
		":white_check_mark: Got it, thanks!",
		mo.Some(sendResult.Channel),
		mo.Some(sendResult.TS),
	)

	repliedBy := reply.UserName
	if repliedBy == "" {
		repliedBy = reply.UserID
	}

	log.Printf("✅ Completed successfully - received reply from %s in thread %s", repliedBy, sendResult.TS)
	return &api.AskUserResponse{
		Success:   true,
		Message:   "Received user reply",
		Reply:     &reply.Text,
		RepliedBy: repliedBy,
		UserID:    reply.UserID,
		TS:        reply.Timestamp,
		Channel:   sendResult.Channel,
		ThreadTS:  sendResult.TS,
	}
}

func formatQuestion(question, context string, timeoutMinutes int) string {
	if context != "" {
		return fmt.Sprintf(
			":question: *Agent needs your input*\n\n*Context:* %s\n\n*Question:* %s\n\n"+
				"_Reply in this thread within %d minutes._",
			context,
			question,
			timeoutMinutes,
		)
	}
	return fmt.Sprintf(
		":question: *Agent needs your input*\n\n%s\n\n_Reply in this thread within %d minutes._",
		question,
		timeoutMinutes,
	)
}
