package clients

import "github.com/samber/mo"

// SlackAuthTestResponse represents the response from Slack's auth.test API
type SlackAuthTestResponse struct {
	UserID string
	TeamID string
}

// SlackUser represents a Slack user
type SlackUser struct {
	ID      string
	Name    string
	Profile SlackUserProfile
}

// SlackUserProfile represents a Slack user's profile information
type SlackUserProfile struct {
	DisplayName string
	RealName    string
}

// SlackMessageParams holds parameters for sending Slack messages
type SlackMessageParams struct {
	Text     string
	ThreadTS mo.Option[string]
}

// SlackPostMessageResponse represents the response from posting a message to Slack
type SlackPostMessageResponse struct {
	Channel   string
	Timestamp string
}

// SlackThreadRepliesParameters represents parameters for listing thread replies
type SlackThreadRepliesParameters struct {
	ChannelID string
	ThreadTS  string
	// Oldest restricts the listing to messages at or after this timestamp.
	// Empty means the whole thread.
	Oldest string
}

// SlackThreadMessage represents one raw message inside a Slack thread,
// including the parent message and bot messages
type SlackThreadMessage struct {
	Text      string
	UserID    string
	BotID     string
	Timestamp string
	ThreadTS  string
}

// SlackChannel represents a Slack channel as returned by conversations.list
type SlackChannel struct {
	ID   string
	Name string
}
