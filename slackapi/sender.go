// Package slackapi implements simplemessage.Sender on top of
// github.com/slack-go/slack.
package slackapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	slackgo "github.com/slack-go/slack"

	lib "github.com/peteraglen/slack-simple-message"
)

type Option func(*Sender)

// WithAPIURL points the sender at a different Web API root, such as a test server.
func WithAPIURL(apiURL string) Option {
	return func(s *Sender) {
		apiURL = strings.TrimSpace(apiURL)
		if apiURL == "" {
			return
		}

		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}

		s.apiURL = apiURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		if client != nil {
			s.httpClient = client
		}
	}
}

func WithDebug(debug bool) Option {
	return func(s *Sender) {
		s.debug = debug
	}
}

// Sender posts messages with slack-go. A slack-go client is built per call
// because the token travels with each message.
type Sender struct {
	apiURL     string
	httpClient *http.Client
	debug      bool
}

func NewSender(opts ...Option) *Sender {
	s := &Sender{
		apiURL:     slackgo.APIURL,
		httpClient: &http.Client{},
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

func (s *Sender) PostMessage(ctx context.Context, msg lib.Message) (*lib.Response, error) {
	api := slackgo.New(msg.Token,
		slackgo.OptionAPIURL(s.apiURL),
		slackgo.OptionHTTPClient(s.httpClient),
		slackgo.OptionDebug(s.debug),
	)

	channel, ts, err := api.PostMessageContext(ctx, msg.Channel, slackgo.MsgOptionText(msg.Text, false))
	if err == nil {
		return &lib.Response{OK: true, Channel: channel, TS: ts}, nil
	}

	return responseFromError(err)
}

// responseFromError turns slack-go's typed errors back into a Response.
// Anything else is a transport failure.
func responseFromError(err error) (*lib.Response, error) {
	var slackErr slackgo.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return &lib.Response{
			Error: slackErr.Err,
			ResponseMetadata: lib.ResponseMetadata{
				Messages: slackErr.ResponseMetadata.Messages,
				Warnings: slackErr.ResponseMetadata.Warnings,
			},
		}, nil
	}

	var rateErr *slackgo.RateLimitedError
	if errors.As(err, &rateErr) {
		return &lib.Response{
			Error:      lib.ErrorCodeRateLimited,
			StatusCode: http.StatusTooManyRequests,
			Detail:     rateErr.Error(),
		}, nil
	}

	var statusErr slackgo.StatusCodeError
	if errors.As(err, &statusErr) {
		return &lib.Response{
			Error:      lib.ErrorCodeUnexpectedStatus,
			StatusCode: statusErr.Code,
			Detail:     statusErr.Status,
		}, nil
	}

	return nil, errors.Wrap(err, "slack-go chat.postMessage")
}
