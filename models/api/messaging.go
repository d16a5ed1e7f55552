package api

// NotifyArgs is the input for the notify tool
type NotifyArgs struct {
	Message     string `json:"message"               jsonschema:"The notification message. Supports Slack mrkdwn formatting."`
	Channel     string `json:"channel,omitempty"     jsonschema:"Channel name or ID. Uses SLACK_DEFAULT_CHANNEL if not specified."`
	ThreadTS    string `json:"thread_ts,omitempty"   jsonschema:"Thread timestamp to post the notification as a thread reply."`
	Urgency     string `json:"urgency,omitempty"     jsonschema:"Message urgency level: normal, important or critical. 'critical' adds an @here mention."`
	MentionUser bool   `json:"mention_user,omitempty" jsonschema:"If true, @mentions the configured user (requires SLACK_USER_ID)."`
}

// SendMessageArgs is the input for the lower-level send_message tool
type SendMessageArgs struct {
	Message  string `json:"message"             jsonschema:"Message text. Supports Slack mrkdwn formatting."`
	Channel  string `json:"channel,omitempty"   jsonschema:"Channel name or ID. Uses SLACK_DEFAULT_CHANNEL if not specified."`
	ThreadTS string `json:"thread_ts,omitempty" jsonschema:"Thread timestamp to reply in a thread."`
}

// AskUserArgs is the input for the ask_user tool
type AskUserArgs struct {
	Question       string `json:"question"                  jsonschema:"The question to ask the user."`
	Channel        string `json:"channel,omitempty"         jsonschema:"Channel name or ID. Uses SLACK_DEFAULT_CHANNEL if not specified."`
	Context        string `json:"context,omitempty"         jsonschema:"Optional context to include (e.g. what you are working on)."`
	TimeoutMinutes int    `json:"timeout_minutes,omitempty" jsonschema:"How long to wait for a reply (default 5 minutes, max 30)."`
}

// ThreadRepliesArgs is the input for the get_thread_replies tool
type ThreadRepliesArgs struct {
	Channel  string `json:"channel"            jsonschema:"Channel ID (or #name) containing the thread."`
	ThreadTS string `json:"thread_ts"          jsonschema:"Timestamp of the parent message."`
	SinceTS  string `json:"since_ts,omitempty" jsonschema:"Only return messages after this timestamp."`
}

// SendResponse is the normalized result of the notify and send_message tools
type SendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TS      string `json:"ts,omitempty"`
	Channel string `json:"channel,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AskUserResponse is the normalized result of the ask_user tool.
// Reply is null whenever no reply was received; Channel and ThreadTS are
// still set after a successful send so the caller can correlate the thread.
type AskUserResponse struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Reply     *string `json:"reply"`
	RepliedBy string  `json:"replied_by,omitempty"`
	UserID    string  `json:"user_id,omitempty"`
	TS        string  `json:"ts,omitempty"`
	Channel   string  `json:"channel,omitempty"`
	ThreadTS  string  `json:"thread_ts,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// ThreadReply is one normalized reply in a ThreadRepliesResponse
type ThreadReply struct {
	Text   string `json:"text"`
	User   string `json:"user"`
	UserID string `json:"user_id"`
	TS     string `json:"ts"`
}

// ThreadRepliesResponse is the normalized result of the get_thread_replies
// tool. Replies is always present, empty on failure.
type ThreadRepliesResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Replies []ThreadReply `json:"replies"`
	Count   int           `json:"count"`
}
