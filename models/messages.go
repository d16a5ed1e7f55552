package models

// Urgency controls the visual prefix added to an outgoing notification
type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyImportant Urgency = "important"
	UrgencyCritical  Urgency = "critical"
)

// Message represents a human reply inside a Slack thread
type Message struct {
	Text     string
	UserID   string
	UserName string // resolved display name, empty when resolution failed
	// Timestamp is the Slack message timestamp, e.g. "1700000000.000100".
	// It doubles as the message's unique ID within a channel and orders
	// numerically in chronological order.
	Timestamp string
	ThreadTS  string
	Channel   string
}

// SendResult represents the outcome of one send attempt.
// TS and Channel are set only when Ok is true, Error only when it is false.
type SendResult struct {
	Ok      bool
	TS      string
	Channel string
	Error   string
}
