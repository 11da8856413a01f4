package simplemessage

import (
	"fmt"
	"strings"
)

// Error codes reported by Slack that callers commonly branch on.
const (
	ErrorCodeChannelNotFound  = "channel_not_found"
	ErrorCodeInvalidAuth      = "invalid_auth"
	ErrorCodeNotAuthed        = "not_authed"
	ErrorCodeInvalidArguments = "invalid_arguments"
	ErrorCodeRateLimited      = "ratelimited"
)

// Error codes set locally when Slack never produced a usable answer.
const (
	ErrorCodeRequestFailed    = "request_failed"
	ErrorCodeUnexpectedStatus = "unexpected_status"
	ErrorCodeInvalidResponse  = "invalid_response"
)

type ResponseMetadata struct {
	Messages []string `json:"messages,omitempty" yaml:"messages,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Response is the outcome of one send attempt. OK is the success
// discriminant; Error and ResponseMetadata are only populated on failure.
// The fields tagged json:"-" are filled in locally and never come from Slack.
type Response struct {
	OK               bool             `json:"ok" yaml:"ok"`
	Channel          string           `json:"channel,omitempty" yaml:"channel,omitempty"`
	TS               string           `json:"ts,omitempty" yaml:"ts,omitempty"`
	Error            string           `json:"error,omitempty" yaml:"error,omitempty"`
	Warning          string           `json:"warning,omitempty" yaml:"warning,omitempty"`
	ResponseMetadata ResponseMetadata `json:"response_metadata,omitempty" yaml:"response_metadata,omitempty"`

	Destination string `json:"-" yaml:"destination"`
	RequestID   string `json:"-" yaml:"request_id"`
	StatusCode  int    `json:"-" yaml:"status_code,omitempty"`
	Detail      string `json:"-" yaml:"detail,omitempty"`
}

// Err returns nil for a successful response and a descriptive error otherwise.
func (r Response) Err() error {
	if r.OK {
		return nil
	}

	msg := r.Error
	if msg == "" {
		msg = "unknown error"
	}

	if details := r.details(); details != "" {
		msg += ": " + details
	}

	return fmt.Errorf("chat.postMessage to %q failed: %s", r.Destination, msg)
}

func (r Response) details() string {
	parts := make([]string, 0, len(r.ResponseMetadata.Messages)+1)

	if r.Detail != "" {
		parts = append(parts, r.Detail)
	}

	parts = append(parts, r.ResponseMetadata.Messages...)

	return strings.Join(parts, "; ")
}

func (r Response) clone() Response {
	c := r
	if r.ResponseMetadata.Messages != nil {
		c.ResponseMetadata.Messages = append([]string(nil), r.ResponseMetadata.Messages...)
	}
	if r.ResponseMetadata.Warnings != nil {
		c.ResponseMetadata.Warnings = append([]string(nil), r.ResponseMetadata.Warnings...)
	}
	return c
}
