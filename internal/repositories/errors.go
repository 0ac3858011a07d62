package repositories

import "errors"

// Sentinel errors shared by every repository. Handlers translate these into
// 404 and 409 responses; anything else surfaces as a server error.
var (
	// ErrNotFound reports that no row matched the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrConflict reports a write rejected by a uniqueness constraint, such
	// as a duplicate email, handle, or playlist name.
	ErrConflict = errors.New("record conflict")
)
