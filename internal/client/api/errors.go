package api

import (
	"errors"
	"net/http"

	"github.com/mkochanov/listkeeper/internal/common"
)

// FallbackMessage is shown when the server gives no message of its own or
// the call never reached it.
const FallbackMessage = "An error occurred"

// ErrUnavailable marks transport failures: the server could not be reached
// or returned a response the client could not parse.
var ErrUnavailable = errors.New("server unavailable")

// ServerError is a non-2xx response. Error() returns the server-supplied
// message verbatim so callers can surface it to the user unchanged, while
// Unwrap exposes the sentinel matching the status code for errors.Is.
type ServerError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *ServerError) Error() string { return e.Message }

func (e *ServerError) Unwrap() error { return e.kind }

func newServerError(statusCode int, message string) *ServerError {
	if message == "" {
		message = FallbackMessage
	}

	var kind error
	switch statusCode {
	case http.StatusBadRequest:
		kind = common.ErrValidation
	case http.StatusUnauthorized:
		kind = common.ErrAuthRequired
	case http.StatusNotFound:
		kind = common.ErrorNotFound
	case http.StatusConflict:
		kind = common.ErrAlreadyExists
	default:
		kind = common.ErrorInternal
	}

	return &ServerError{StatusCode: statusCode, Message: message, kind: kind}
}

// asCredentialsError rewrites the 401 sentinel for login/register, where an
// unauthorized status means bad credentials rather than a missing session.
func asCredentialsError(err error) error {
	var se *ServerError
	if errors.As(err, &se) && se.StatusCode == http.StatusUnauthorized {
		return &ServerError{StatusCode: se.StatusCode, Message: se.Message, kind: common.ErrorUnauthorized}
	}
	return err
}
