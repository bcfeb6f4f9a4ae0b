package pathengine

import "fmt"

// ValidationError reports why a graph could not be constructed. It is
// returned by Load and is fatal to construction: the engine never builds a
// graph that violates its invariants.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return "pathengine: invalid graph: " + e.Detail
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a query that referenced a location absent from the
// graph. It is recoverable by the caller (e.g. re-prompt for a valid id).
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pathengine: location %q not found", e.ID)
}
