package simplemessage

import "github.com/pkg/errors"

var (
	// ErrMissingToken is returned by [New] when [WithToken] was never applied.
	ErrMissingToken = errors.New("token must be set - use WithToken")

	// ErrNoResponses is returned by [Client.LastAPIResponse] before the first send.
	ErrNoResponses = errors.New("no API responses recorded - call Send first")

	// ErrNotEnoughResponses is returned by [Client.LastAPIResponses] when more
	// responses are requested than have been recorded.
	ErrNotEnoughResponses = errors.New("not enough API responses recorded")

	ErrInvalidCount = errors.New("response count must be non-negative")

	ErrNilClient = errors.New("message client is nil")
)

// ConfigurationError is returned by [New] when the client cannot be built
// from the supplied options.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err, or any error it wraps, is a
// [ConfigurationError].
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
