package messaging

import (
	"time"

	"github.com/samber/mo"

	"slacknotifier/services"
)

const (
	// defaultAskTimeout applies when the caller does not pass a timeout
	defaultAskTimeout = 5 * time.Minute
	// maxAskTimeout caps the wait regardless of what the caller requests
	maxAskTimeout = 30 * time.Minute
	// defaultPollInterval is the fixed sleep between reply polls
	defaultPollInterval = 5 * time.Second
)

// MessagingUseCase implements the messaging tool operations on top of the
// messaging service
type MessagingUseCase struct {
	messagingService services.MessagingService
	pollInterval     time.Duration
}

// NewMessagingUseCase creates a new instance of MessagingUseCase
func NewMessagingUseCase(messagingService services.MessagingService) *MessagingUseCase {
	return &MessagingUseCase{
		messagingService: messagingService,
		pollInterval:     defaultPollInterval,
	}
}

func optionalString(value string) mo.Option[string] {
	if value == "" {
		return mo.None[string]()
	}
	return mo.Some(value)
}
