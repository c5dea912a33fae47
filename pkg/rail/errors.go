package rail

import "fmt"

// AccessError reports a wrong-variant access, e.g. calling Value on a
// failure. It marks a contract violation in the calling code, not a runtime
// condition, so it is raised as a panic rather than returned.
type AccessError struct {
	// Op is the accessor that was misused ("Value", "Error", "FailureFrom").
	Op string
	// Variant is the variant the Result actually held.
	Variant string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("rail: %s called on a %s result", e.Op, e.Variant)
}
