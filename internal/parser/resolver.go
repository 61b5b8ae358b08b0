package parser

import (
	"strings"

	"github.com/drivelinehq/driver-profile-api/internal/catalog"
)

// Attempt records the outcome of trying one pattern against the text. Pattern
// failure is a value, not a swallowed exception; callers and tests can inspect
// exactly which pattern produced a value.
type Attempt struct {
	PatternIndex int
	Matched      bool
	Capture      string
}

// Resolver applies a field's ordered pattern list to document text. It holds
// no per-document state; one instance serves any number of concurrent calls.
type Resolver struct{}

// Resolve tries each of the field's patterns in declaration order and coerces
// the first capture into the field's type. No match yields the absent value.
func (Resolver) Resolve(text string, field *catalog.Field) TypedValue {
	value, _ := Resolver{}.ResolveTraced(text, field)
	return value
}

// ResolveTraced is Resolve plus the per-pattern attempt trail.
func (Resolver) ResolveTraced(text string, field *catalog.Field) (TypedValue, []Attempt) {
	attempts := make([]Attempt, 0, len(field.Regexps))
	for i, re := range field.Regexps {
		m := re.FindStringSubmatch(text)
		if m == nil {
			attempts = append(attempts, Attempt{PatternIndex: i})
			continue
		}
		capture := strings.TrimSpace(m[1])
		attempts = append(attempts, Attempt{PatternIndex: i, Matched: true, Capture: capture})
		// First match wins regardless of what later patterns would find.
		return Coerce(capture, field.Type), attempts
	}
	return Absent(), attempts
}
