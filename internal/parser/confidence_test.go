package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelinehq/driver-profile-api/internal/catalog"
)

func confidenceCatalog(t *testing.T, names ...string) *catalog.Catalog {
	t.Helper()
	defs := make([]catalog.FieldDefinition, 0, len(names))
	for _, name := range names {
		defs = append(defs, catalog.FieldDefinition{
			Name:     name,
			Type:     catalog.FieldTypeText,
			Patterns: []string{name + `\s+(\S+)`},
		})
	}
	c, err := catalog.New(defs)
	require.NoError(t, err)
	return c
}

func TestConfidenceScoreEmptyCatalog(t *testing.T) {
	c, err := catalog.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ConfidenceScore(c, nil, 0))
}

func TestConfidenceScoreNoFieldsExtracted(t *testing.T) {
	c := confidenceCatalog(t, "a", "b", "c", "d")
	assert.Equal(t, 0.0, ConfidenceScore(c, map[string]TypedValue{}, 0))
}

func TestConfidenceScoreAllFieldsExtracted(t *testing.T) {
	c := confidenceCatalog(t, "a", "b")
	fields := map[string]TypedValue{
		"a": StringValue("x"),
		"b": StringValue("y"),
	}
	assert.Equal(t, 100.0, ConfidenceScore(c, fields, 0))
}

func TestConfidenceScoreEmploymentBonus(t *testing.T) {
	c := confidenceCatalog(t, "a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	fields := map[string]TypedValue{"a": StringValue("x")}

	without := ConfidenceScore(c, fields, 0)
	with := ConfidenceScore(c, fields, 2)
	assert.Equal(t, 10.0, without)
	assert.Equal(t, 60.0, with)
}

func TestConfidenceScoreRequiredFieldBonus(t *testing.T) {
	c := confidenceCatalog(t, "full_name", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	fields := map[string]TypedValue{"full_name": StringValue("John Driver")}

	// 1 populated + 2 bonus = 3 of 10.
	assert.Equal(t, 30.0, ConfidenceScore(c, fields, 0))
}

func TestConfidenceScoreNeverExceedsHundred(t *testing.T) {
	c := confidenceCatalog(t, "full_name", "email")
	fields := map[string]TypedValue{
		"full_name": StringValue("John Driver"),
		"email":     StringValue("john@example.com"),
	}
	assert.Equal(t, 100.0, ConfidenceScore(c, fields, 5))
}

func TestConfidenceScoreAbsentValuesDoNotCount(t *testing.T) {
	c := confidenceCatalog(t, "a", "b")
	fields := map[string]TypedValue{
		"a": StringValue("x"),
		"b": Absent(),
	}
	assert.Equal(t, 50.0, ConfidenceScore(c, fields, 0))
}
