package simplemessage

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const postMessagePath = "/chat.postMessage"

type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// httpSender is the default [Sender], posting JSON to the Slack Web API with resty.
type httpSender struct {
	client *resty.Client
}

func newHTTPSender(o *Options) *httpSender {
	client := resty.New().
		SetBaseURL(o.baseURL).
		SetTimeout(o.timeout).
		SetRetryCount(o.retryCount).
		SetRetryWaitTime(o.retryWaitTime).
		SetRetryMaxWaitTime(o.retryMaxWaitTime).
		SetRetryAfter(retryAfter).
		AddRetryCondition(o.retryPolicy).
		SetHeaders(o.requestHeaders).
		SetLogger(o.requestLogger)

	return &httpSender{client: client}
}

func (s *httpSender) PostMessage(ctx context.Context, msg Message) (*Response, error) {
	req := s.client.R().
		SetContext(ctx).
		SetBody(postMessageRequest{Channel: msg.Channel, Text: msg.Text})

	// Slack answers not_authed when no credentials are presented at all.
	if msg.Token != "" {
		req.SetAuthToken(msg.Token)
	}

	if msg.RequestID != "" {
		req.SetHeader("X-Request-Id", msg.RequestID)
	}

	r, err := req.Post(postMessagePath)
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", postMessagePath)
	}

	return decodeResponse(r.StatusCode(), r.Body()), nil
}

func decodeResponse(statusCode int, body []byte) *Response {
	resp := &Response{}

	if len(body) > 0 && json.Unmarshal(body, resp) == nil && (resp.OK || resp.Error != "") {
		resp.StatusCode = statusCode
		return resp
	}

	resp = &Response{StatusCode: statusCode, Detail: bodySnippet(body)}

	if statusCode < 200 || statusCode > 299 {
		resp.Error = ErrorCodeUnexpectedStatus
	} else {
		resp.Error = ErrorCodeInvalidResponse
	}

	return resp
}

func bodySnippet(body []byte) string {
	const maxLen = 256

	s := strings.TrimSpace(string(body))
	if s == "" {
		return "(empty response body)"
	}

	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}

	return s
}
