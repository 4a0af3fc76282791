package adapter

import (
	"errors"
	"fmt"
)

// Status classes returned by mapHTTPError. They are wrapped inside a
// [*RemoteAPIError] so callers can test them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("forum rejected api credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrInternalServerError = errors.New("forum internal error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrCreateRejected marks a create call the forum answered without
	// success=true and without an account id, even with a 2xx status.
	ErrCreateRejected = errors.New("account creation rejected")

	// ErrAccountTaken marks a creation rejected because the username,
	// email or external id already belongs to a forum account.
	ErrAccountTaken = errors.New("account already taken")

	// ErrMalformedResponse marks a 2xx answer whose body could not be
	// decoded.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrInvalidConfig is returned by NewForumAdapter.
	ErrInvalidConfig = errors.New("invalid forum adapter configuration")
)

// RemoteAPIError is returned by every [ForumAdapter] call that failed to
// get a usable answer from the forum: transport errors (Status 0), non-2xx
// statuses and undecodable bodies.
type RemoteAPIError struct {
	// Op is the adapter operation, e.g. "create_account".
	Op string
	// Status is the HTTP status, 0 when no response arrived.
	Status int
	// Cause is the underlying error.
	Cause error
}

func (e *RemoteAPIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("forum API communication error: %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("forum API communication error: %s: status %d: %v", e.Op, e.Status, e.Cause)
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a forum 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAccountTaken reports whether err is a creation rejected because the
// account already exists.
func IsAccountTaken(err error) bool {
	return errors.Is(err, ErrAccountTaken)
}
