// Package parser turns raw driver-application text into typed field values,
// repeated employment/accident records, and a scored extraction result.
package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags the concrete type held by a TypedValue.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindString
	KindBool
	KindInt
	KindFloat
)

func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// TypedValue is the tagged union produced by field resolution. Absent means no
// pattern matched or the capture was blank-like; it is distinct from a value
// that matched but could not be coerced, which degrades to a KindString
// carrying the raw capture.
type TypedValue struct {
	Kind  ValueKind
	Str   string
	Bool  bool
	Int   int64
	Float float64
}

// Absent returns the absent value.
func Absent() TypedValue { return TypedValue{Kind: KindAbsent} }

// StringValue wraps s as a string-kinded value.
func StringValue(s string) TypedValue { return TypedValue{Kind: KindString, Str: s} }

// BoolValue wraps b as a bool-kinded value.
func BoolValue(b bool) TypedValue { return TypedValue{Kind: KindBool, Bool: b} }

// IntValue wraps n as an int-kinded value.
func IntValue(n int64) TypedValue { return TypedValue{Kind: KindInt, Int: n} }

// FloatValue wraps f as a float-kinded value.
func FloatValue(f float64) TypedValue { return TypedValue{Kind: KindFloat, Float: f} }

// IsAbsent reports whether the value carries nothing.
func (v TypedValue) IsAbsent() bool { return v.Kind == KindAbsent }

// IsPresent reports whether the value carries something.
func (v TypedValue) IsPresent() bool { return v.Kind != KindAbsent }

// AsString renders the value for display or free-text scanning. Absent renders
// as the empty string.
func (v TypedValue) AsString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return ""
	}
}

// AsBool returns the boolean payload, false for every other kind.
func (v TypedValue) AsBool() bool { return v.Kind == KindBool && v.Bool }

// MarshalJSON emits the underlying value, or null for absent.
func (v TypedValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindInt:
		return json.Marshal(v.Int)
	case KindFloat:
		return json.Marshal(v.Float)
	default:
		return []byte("null"), nil
	}
}
