package internal

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned before any network attempt when no API key is configured.
var ErrMissingCredential = errors.New("blank api key: set JSONRATES_API_KEY to the key issued by jsonrates.com")

// RemoteRequestError covers every upstream failure: transport errors, bad
// responses and errors reported by the rate service itself.
type RemoteRequestError struct {
	Message string
	Cause   error
}

func NewRemoteRequestError(message string, cause error) *RemoteRequestError {
	return &RemoteRequestError{Message: message, Cause: cause}
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("remote request failed: %s", e.Message)
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Cause
}

func IsRemoteRequestError(err error) bool {
	var rerr *RemoteRequestError
	return errors.As(err, &rerr)
}
