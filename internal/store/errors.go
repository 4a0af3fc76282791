package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no local user has the requested id.
	ErrUserNotFound = errors.New("user was not found")

	// ErrMappingNotFound is returned when a local user has no forum profile
	// mapping yet.
	ErrMappingNotFound = errors.New("forum profile mapping was not found")

	// ErrRemoteIDAlreadyClaimed is returned when a mapping write would give
	// a forum account id to a second local user.
	ErrRemoteIDAlreadyClaimed = errors.New("forum account is already linked to another user")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver name it
	// does not know.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
