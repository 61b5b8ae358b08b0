package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivelinehq/driver-profile-api/internal/catalog"
)

func TestCoerceBlankLike(t *testing.T) {
	for _, raw := range []string{"", "none", "None", "NONE", "n/a", "N/A", "not found", "Not Found"} {
		for _, ft := range []catalog.FieldType{
			catalog.FieldTypeText, catalog.FieldTypeBoolean, catalog.FieldTypeNumber,
			catalog.FieldTypeDate, catalog.FieldTypePhone, catalog.FieldTypeEmail,
			catalog.FieldTypeIdentity,
		} {
			v := Coerce(raw, ft)
			assert.True(t, v.IsAbsent(), "raw=%q type=%s", raw, ft)
		}
	}
}

func TestCoerceBoolean(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"Yes", true},
		{"yes", true},
		{"TRUE", true},
		{"1", true},
		{"y", true},
		{"No", false},
		{"false", false},
		{"0", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		v := Coerce(tt.raw, catalog.FieldTypeBoolean)
		assert.Equal(t, KindBool, v.Kind, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, v.Bool, "raw=%q", tt.raw)
	}
}

func TestCoerceNumber(t *testing.T) {
	v := Coerce("42", catalog.FieldTypeNumber)
	assert.Equal(t, KindInt, v.Kind)
	assert.Equal(t, int64(42), v.Int)

	v = Coerce("3.5", catalog.FieldTypeNumber)
	assert.Equal(t, KindFloat, v.Kind)
	assert.Equal(t, 3.5, v.Float)

	// Unparseable numbers degrade to the raw string.
	v = Coerce("3 years", catalog.FieldTypeNumber)
	assert.Equal(t, KindString, v.Kind)
	assert.Equal(t, "3 years", v.Str)
}

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"3-15-2024", "2024-03-15"},
		{"03-15-2024", "2024-03-15"},
		{"3/5/2024", "2024-03-05"},
		{"12/31/2023", "2023-12-31"},
		{"2024-3-5", "2024-03-05"},
		{"2024-03-15", "2024-03-15"},
		{"3-15-24", "2024-03-15"},
		{"05/20/21", "2021-05-20"},
		{"March 15, 2024", "March 15, 2024"}, // unrecognized, returned verbatim
	}
	for _, tt := range tests {
		v := Coerce(tt.raw, catalog.FieldTypeDate)
		assert.Equal(t, KindString, v.Kind, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, v.Str, "raw=%q", tt.raw)
	}
}

func TestCoercePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"(555) 123-4567", "555-123-4567"},
		{"555.123.4567", "555-123-4567"},
		{"5551234567", "555-123-4567"},
		{"123-4567", "123-4567"}, // not ten digits, kept as-is
	}
	for _, tt := range tests {
		v := Coerce(tt.raw, catalog.FieldTypePhone)
		assert.Equal(t, tt.want, v.Str, "raw=%q", tt.raw)
	}
}

func TestCoerceEmail(t *testing.T) {
	v := Coerce("John.Driver@Example.COM", catalog.FieldTypeEmail)
	assert.Equal(t, KindString, v.Kind)
	assert.Equal(t, "john.driver@example.com", v.Str)

	// Email is strict: malformed input is dropped entirely.
	for _, raw := range []string{"not-an-email", "missing@tld", "@example.com"} {
		v := Coerce(raw, catalog.FieldTypeEmail)
		assert.True(t, v.IsAbsent(), "raw=%q", raw)
	}
}

func TestCoerceIdentity(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"123-45-6789", "123-45-6789"},
		{"123456789", "123-45-6789"},
		{"123 45 6789", "123-45-6789"},
		{"12345", "12345"}, // not nine digits, kept as-is
	}
	for _, tt := range tests {
		v := Coerce(tt.raw, catalog.FieldTypeIdentity)
		assert.Equal(t, tt.want, v.Str, "raw=%q", tt.raw)
	}
}

func TestCoerceText(t *testing.T) {
	v := Coerce("  John Driver  ", catalog.FieldTypeText)
	assert.Equal(t, "John Driver", v.Str)
}
