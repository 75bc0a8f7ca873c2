package flex

import "errors"

var (
	// ErrNotAbsolute is returned when an operation needs an absolute root.
	ErrNotAbsolute = errors.New("flex: node is not an absolute root")

	// ErrScopedUpdateActive is returned when a scoped update is already
	// active for a root.
	ErrScopedUpdateActive = errors.New("flex: scoped update already active")

	// ErrNotRoot is returned when an element has no node that can be laid
	// out as a root.
	ErrNotRoot = errors.New("flex: element has no root node")

	// ErrNoScheduler is returned when a root has no scheduler to run on.
	ErrNoScheduler = errors.New("flex: node has no scheduler")
)
