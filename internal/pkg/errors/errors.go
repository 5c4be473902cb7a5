package errors

import "errors"

var (
	// ErrNotFound marks a referenced user, recipe, category or edge that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument marks blank identifiers, out-of-range values or missing fields.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreUnavailable marks a transport or transaction failure in the graph store.
	// Callers may retry: every operation is a read or an atomic write.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return errors.Is(err, target) }
