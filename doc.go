// Package simplemessage provides a small client for posting text messages to
// Slack channels through the chat.postMessage Web API method.
//
// The default transport wraps [github.com/go-resty/resty/v2] with automatic
// retries and pluggable logging. A transport built on
// [github.com/slack-go/slack] is available in the slackapi subpackage.
//
// # Basic Usage
//
//	c, err := simplemessage.New(
//	    simplemessage.WithToken(os.Getenv("SLACK_BOT_TOKEN")),
//	    simplemessage.WithDestination("C0123456789"),
//	    simplemessage.WithLogFilename("undelivered.log"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !c.Send(ctx, "deploy finished") {
//	    resp, _ := c.LastAPIResponse()
//	    log.Printf("slack said: %s", resp.Error)
//	}
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// [WithToken] is mandatory: omitting it makes [New] fail with a
// [ConfigurationError]. An empty token is accepted and rejected by Slack
// with not_authed. Other invalid values are silently ignored and the
// default is retained.
//
// # Destinations
//
// [Client.Send] uses the default destination set with [WithDestination].
// [Client.SendTo] always uses the destination it is given, even an empty
// one. Destinations are never validated locally.
//
// # Responses
//
// Every send records exactly one [Response], successful or not, in call
// order. Slack failures (channel_not_found, invalid_auth, not_authed, ...)
// are not returned as errors: Send reports false and the details are
// available from [Client.LastAPIResponse] and [Client.LastAPIResponses].
// Asking for more responses than were recorded returns
// [ErrNotEnoughResponses]; nothing is clamped.
//
// # Fallback Log
//
// With [WithLogFilename], each failed send appends one line to the file
// containing a timestamp, the request id, the destination, the error and
// the literal message text. The file is opened and closed within the send.
// Errors writing it are reported to the [RequestLogger] and swallowed.
//
// # Retry Behaviour
//
// [DefaultRetryPolicy] retries on HTTP 429 (rate limit) and 5xx server
// errors, and on transient connection errors. It respects the Retry-After
// response header for rate-limit backoff. Context cancellation, deadline
// exceeded, and DNS resolution errors are never retried. Supply a custom
// function via [WithRetryPolicy] to override this behaviour.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or wrap a [log/slog.Logger] with
// [NewSlogLogger]. The default [NoopLogger] discards all log output.
package simplemessage
