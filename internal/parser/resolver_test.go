package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelinehq/driver-profile-api/internal/catalog"
)

func testField(t *testing.T, def catalog.FieldDefinition) *catalog.Field {
	t.Helper()
	c, err := catalog.New([]catalog.FieldDefinition{def})
	require.NoError(t, err)
	f, ok := c.Lookup(def.Name)
	require.True(t, ok)
	return f
}

func TestResolveFirstMatchWins(t *testing.T) {
	f := testField(t, catalog.FieldDefinition{
		Name: "full_name",
		Type: catalog.FieldTypeText,
		Patterns: []string{
			`Name\s+([^\n\r]+)`,
			`Applicant\s+([^\n\r]+)`,
		},
	})

	text := "Applicant Jane Smith\nName John Driver\n"
	v, attempts := Resolver{}.ResolveTraced(text, f)

	// The first pattern matched, so the second was never consulted even
	// though it appears earlier in the text.
	assert.Equal(t, "John Driver", v.Str)
	require.Len(t, attempts, 1)
	assert.True(t, attempts[0].Matched)
	assert.Equal(t, 0, attempts[0].PatternIndex)
}

func TestResolveFallsThroughToLaterPattern(t *testing.T) {
	f := testField(t, catalog.FieldDefinition{
		Name: "email",
		Type: catalog.FieldTypeEmail,
		Patterns: []string{
			`E-Mail Address\s+(\S+)`,
			`Email\s+(\S+)`,
		},
	})

	v, attempts := Resolver{}.ResolveTraced("Email JOHN@example.com\n", f)
	assert.Equal(t, "john@example.com", v.Str)
	require.Len(t, attempts, 2)
	assert.False(t, attempts[0].Matched)
	assert.True(t, attempts[1].Matched)
}

func TestResolveNoMatchIsAbsent(t *testing.T) {
	f := testField(t, catalog.FieldDefinition{
		Name:     "phone",
		Type:     catalog.FieldTypePhone,
		Patterns: []string{`Phone\s+([^\n\r]+)`},
	})

	v := Resolver{}.Resolve("nothing relevant here", f)
	assert.True(t, v.IsAbsent())
}

func TestResolveCaseInsensitiveAcrossLines(t *testing.T) {
	f := testField(t, catalog.FieldDefinition{
		Name:     "license_number",
		Type:     catalog.FieldTypeText,
		Patterns: []string{`LICENSE NUMBER\s+([^\n\r]+)`},
	})

	v := Resolver{}.Resolve("preamble\nlicense number D1234567\n", f)
	assert.Equal(t, "D1234567", v.Str)
}

func TestResolveBlankCaptureIsAbsent(t *testing.T) {
	f := testField(t, catalog.FieldDefinition{
		Name:     "other_name",
		Type:     catalog.FieldTypeText,
		Patterns: []string{`Other Name\s+([^\n\r]+)`},
	})

	v := Resolver{}.Resolve("Other Name N/A\n", f)
	assert.True(t, v.IsAbsent())
}
