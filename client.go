package simplemessage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Client sends text messages to Slack channels and keeps every response it
// receives, most recent last.
type Client struct {
	options *Options
	sender  Sender

	mu      sync.Mutex
	history []Response
}

// New builds a Client. [WithToken] is required; without it New returns a
// [ConfigurationError] wrapping [ErrMissingToken]. No network calls are made.
func New(opts ...Option) (*Client, error) {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	sender := options.sender
	if sender == nil {
		sender = newHTTPSender(options)
	}

	return &Client{
		options: options,
		sender:  sender,
	}, nil
}

// Destination returns the default channel, which may be empty.
func (c *Client) Destination() string {
	if c == nil {
		return ""
	}

	return c.options.destination
}

// Send posts text to the default destination. See [Client.SendTo].
func (c *Client) Send(ctx context.Context, text string) bool {
	if c == nil {
		return false
	}

	return c.SendTo(ctx, c.options.destination, text)
}

// SendTo posts text to destination, which overrides the default even when
// empty. The destination is not validated locally; Slack decides.
//
// The response is always recorded. SendTo reports whether Slack accepted the
// message; failures are never returned as errors and can be inspected with
// [Client.LastAPIResponse]. When a log file is configured, failed messages
// are appended to it. Problems writing that file are reported to the
// RequestLogger and do not affect the result.
func (c *Client) SendTo(ctx context.Context, destination, text string) bool {
	if c == nil {
		return false
	}

	msg := Message{
		Token:     c.options.token,
		Channel:   destination,
		Text:      text,
		RequestID: uuid.NewString(),
	}

	resp := c.post(ctx, msg)
	c.record(resp)

	if resp.OK {
		c.options.requestLogger.Debugf("message %s delivered to %s (ts %s)", msg.RequestID, resp.Channel, resp.TS)
		return true
	}

	c.options.requestLogger.Warnf("message %s to %q failed: %s", msg.RequestID, destination, resp.Error)

	if c.options.logFilename != "" {
		if err := appendFallbackLog(c.options.logFilename, time.Now(), resp, text); err != nil {
			c.options.requestLogger.Errorf("failed to write fallback log: %v", err)
		}
	}

	return false
}

func (c *Client) post(ctx context.Context, msg Message) Response {
	var resp Response

	r, err := c.sender.PostMessage(ctx, msg)

	switch {
	case err != nil:
		resp = Response{Error: ErrorCodeRequestFailed, Detail: err.Error()}
	case r == nil:
		resp = Response{Error: ErrorCodeInvalidResponse, Detail: "sender returned no response"}
	default:
		resp = r.clone()
	}

	resp.Destination = msg.Channel
	resp.RequestID = msg.RequestID

	return resp
}

func (c *Client) record(resp Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, resp)
}

// ResponseCount returns the number of responses recorded so far, which is
// the number of sends made.
func (c *Client) ResponseCount() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.history)
}

// LastAPIResponse returns a copy of the most recent response, or
// [ErrNoResponses] if nothing has been sent yet.
func (c *Client) LastAPIResponse() (Response, error) {
	if c == nil {
		return Response{}, ErrNilClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.history) == 0 {
		return Response{}, ErrNoResponses
	}

	return c.history[len(c.history)-1].clone(), nil
}

// LastAPIResponses returns copies of the last n responses, oldest first.
// Asking for more responses than were recorded is an error wrapping
// [ErrNotEnoughResponses]; the result is not clamped.
func (c *Client) LastAPIResponses(n int) ([]Response, error) {
	if c == nil {
		return nil, ErrNilClient
	}

	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "got %d", n)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n > len(c.history) {
		return nil, errors.Wrapf(ErrNotEnoughResponses, "requested %d, recorded %d", n, len(c.history))
	}

	window := c.history[len(c.history)-n:]
	out := make([]Response, 0, n)

	for _, r := range window {
		out = append(out, r.clone())
	}

	return out, nil
}
