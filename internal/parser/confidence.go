package parser

import (
	"math"

	"github.com/drivelinehq/driver-profile-api/internal/catalog"
)

const (
	employmentHistoryBonus = 5
	requiredFieldBonus     = 2
)

// requiredScoreFields get extra weight in the confidence score on top of their
// base count, matching how the form is triaged: a record without a name, email
// or license number is close to useless downstream.
var requiredScoreFields = []string{"full_name", "email", "license_number"}

// ConfidenceScore measures how much of the catalog was populated, in [0,100].
// Populated fields count once, a non-empty employment history adds a fixed
// bonus, and the required triage fields add extra weight even though they are
// already in the base count. An empty catalog scores 0.
func ConfidenceScore(c *catalog.Catalog, fields map[string]TypedValue, employmentCount int) float64 {
	total := c.Len()
	if total == 0 {
		return 0
	}

	extracted := 0
	for _, field := range c.Fields() {
		if v, ok := fields[field.Name]; ok && v.IsPresent() {
			extracted++
		}
	}

	if employmentCount > 0 {
		extracted += employmentHistoryBonus
	}
	for _, name := range requiredScoreFields {
		if v, ok := fields[name]; ok && v.IsPresent() {
			extracted += requiredFieldBonus
		}
	}

	score := math.Min(100, float64(extracted)/float64(total)*100)
	return math.Round(score*100) / 100
}
