package simplemessage

import (
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// DefaultBaseURL is the Slack Web API root used when [WithBaseURL] is not supplied.
const DefaultBaseURL = "https://slack.com/api"

type Option func(*Options)

type Options struct {
	token            string
	tokenSet         bool
	destination      string
	logFilename      string
	baseURL          string
	timeout          time.Duration
	sender           Sender
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(*resty.Response, error) bool
	requestHeaders   map[string]string
}

func newClientOptions() *Options {
	return &Options{
		baseURL:          DefaultBaseURL,
		timeout:          30 * time.Second,
		retryCount:       3,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 3 * time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
			"Accept":       "application/json",
		},
	}
}

// WithToken sets the Slack token used to authenticate every message. It is
// required. An empty token is accepted and passed through to Slack, which
// rejects the call with not_authed.
func WithToken(token string) Option {
	return func(o *Options) {
		o.token = token
		o.tokenSet = true
	}
}

// WithDestination sets the default channel used by [Client.Send].
func WithDestination(destination string) Option {
	return func(o *Options) {
		o.destination = destination
	}
}

// WithLogFilename enables the fallback log: every failed send appends a line
// containing the message text to the named file.
func WithLogFilename(filename string) Option {
	return func(o *Options) {
		filename = strings.TrimSpace(filename)

		if filename != "" {
			o.logFilename = filename
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

// WithSender replaces the default HTTP transport. The retry, header and
// timeout options only apply to the default transport.
func WithSender(sender Sender) Option {
	return func(o *Options) {
		if sender != nil {
			o.sender = sender
		}
	}
}

func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// Validate reports the first problem with the assembled options.
func (o *Options) Validate() error {
	if !o.tokenSet {
		return ErrMissingToken
	}

	if o.baseURL == "" {
		return errors.New("baseURL must be set")
	}

	if u, err := url.Parse(o.baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("baseURL %q is not an absolute URL", o.baseURL)
	}

	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > 100 {
		return errors.New("retryCount must not exceed 100")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return errors.New("retryWaitTime must be at least 100ms")
	}

	if o.retryWaitTime > time.Minute {
		return errors.Errorf("retryWaitTime must not exceed %v", time.Minute)
	}

	if o.retryMaxWaitTime < 100*time.Millisecond {
		return errors.New("retryMaxWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime > 5*time.Minute {
		return errors.Errorf("retryMaxWaitTime must not exceed %v", 5*time.Minute)
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return errors.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)", o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	return nil
}
