package simplemessage

//go:generate mockgen -package mock_simplemessage -destination mock/mock_sender.go github.com/peteraglen/slack-simple-message Sender,RequestLogger

import "context"

// Message is a single chat.postMessage call.
type Message struct {
	Token     string
	Channel   string
	Text      string
	RequestID string
}

// Sender delivers a message to Slack. A non-nil error means no usable
// answer was received (connection failure, cancelled context); Slack-side
// rejections are returned as a [Response] with OK set to false.
type Sender interface {
	PostMessage(ctx context.Context, msg Message) (*Response, error)
}
