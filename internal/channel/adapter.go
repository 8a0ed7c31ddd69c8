package channel

import "context"

// Message represents an inbound message from a chat channel
type Message struct {
	ID        string
	Channel   string
	UserID    string
	Content   string
	Metadata  map[string]string
	Timestamp int64
}

// Response represents a reply to send back to a channel
type Response struct {
	Content  string
	Metadata map[string]string
}

// Adapter is the interface every chat channel implements
type Adapter interface {
	// Start starts the channel adapter
	Start(ctx context.Context) error

	// Stop stops the channel adapter
	Stop() error

	// SendMessage sends a reply to a user on the channel
	SendMessage(userID string, resp *Response) error

	// Incoming returns a channel of inbound messages
	Incoming() <-chan *Message

	// Name returns the name of the channel adapter
	Name() string

	// IsEnabled returns whether the channel is configured
	IsEnabled() bool
}
