package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMaterials is returned when the requested item exists but its recipe
// has no material lines, so there is nothing to route for.
var ErrNoMaterials = errors.New("item has no material requirements")

// LookupError reports an item name that matched no catalog. Suggestion, if
// non-empty, is the closest known item name.
type LookupError struct {
	Name       string
	Suggestion string
}

func (e *LookupError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown item %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown item %q", e.Name)
}

// UnreachableError reports materials with no resolvable source at the
// selected stage. Route generation aborts before producing any route.
type UnreachableError struct {
	Materials []string
}

func (e *UnreachableError) Error() string {
	return "no accessible sources for: " + strings.Join(e.Materials, ", ")
}

// PathError reports that no remaining material source is reachable from the
// current position (a disconnected graph region).
type PathError struct {
	From string
}

func (e *PathError) Error() string {
	return "cannot reach all material sources from " + e.From
}
