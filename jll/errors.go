package jll

import "fmt"

// InvalidEnumError reports a settings value that matches none of the
// defined constants of its enum. Matching is exact and case-sensitive.
type InvalidEnumError struct {
	Kind  string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Value)
}
