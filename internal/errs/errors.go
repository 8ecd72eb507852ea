package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	// ErrNotFound indicates a mutation referenced a nonexistent entity id.
	ErrNotFound = errors.New("not_found")
	// ErrDanglingReference indicates an entity referenced a since-deleted
	// account, person, or category.
	ErrDanglingReference = errors.New("dangling_reference")
	// ErrCategoryInUse indicates a category delete was blocked by live references.
	ErrCategoryInUse = errors.New("category_in_use")
	// ErrImport indicates a malformed snapshot was rejected before any
	// collection was replaced.
	ErrImport = errors.New("import_error")
	// ErrInvalid is used for field validation failures (amounts, dates, ranges).
	ErrInvalid = errors.New("validation_error")
)
