package rail

import "time"

// ValueProvider exposes the success payload and construction time.
type ValueProvider[S any] interface {
	// Value returns the success payload
	Value() S
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Outcome is the read-only view of a Result: payload access plus variant
// predicates. Result[S, E] satisfies it.
type Outcome[S, E any] interface {
	ValueProvider[S]
	// Error returns the failure payload
	Error() E
	// IsSuccess reports whether the success variant holds
	IsSuccess() bool
	// IsFailure reports whether the failure variant holds
	IsFailure() bool
}
