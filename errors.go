package sorted

import "errors"

var (
	// ErrNotFound signals that a value is not a member of a list.
	ErrNotFound = errors.New("sorted: value not found")
	// ErrOutOfRange is flagged whenever a position is outside the bounds of a
	// list after normalization of negative positions.
	ErrOutOfRange = errors.New("sorted: index out of range")
	// ErrOrderViolation signals that a mutation would break the sort order.
	ErrOrderViolation = errors.New("sorted: order violation")
	// ErrInvalidArgument is flagged for malformed slice specifications and
	// mismatched strided assignments.
	ErrInvalidArgument = errors.New("sorted: invalid argument")
	// ErrInvalidConfig signals an invalid list configuration.
	ErrInvalidConfig = errors.New("sorted: invalid configuration")
	// ErrBuilderCompleted is flagged when values are staged to a builder
	// after its list has been requested.
	ErrBuilderCompleted = errors.New("sorted: builder has already completed its list")
)
