package store

import "errors"

// Sentinel errors returned by the credential stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyCredential is returned by Set when asked to persist "".
	ErrEmptyCredential = errors.New("credential is empty")

	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when the credential row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan credential row")
)
