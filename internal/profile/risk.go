package profile

import (
	"fmt"
	"strings"
)

// Risk levels, ordered from least to most concerning.
const (
	RiskUnknown = "Unknown"
	RiskLow     = "Low"
	RiskMedium  = "Medium"
	RiskHigh    = "High"
)

// AssessRisk scans the free-text safety answers for known risk indicators.
// Each category is checked only against its own field and adds its points at
// most once, so a record mentioning both "felony" and "conviction" still
// counts as a single criminal-record finding.
func AssessRisk(safety SafetyRecord) RiskAssessment {
	score := 0
	factors := []string{}

	criminal := strings.ToLower(safety.CriminalRecordStatus)
	switch {
	case containsAny(criminal, "felony", "conviction"):
		score += 3
		factors = append(factors, "Criminal record found")
	case strings.Contains(criminal, "misdemeanor"):
		score += 1
		factors = append(factors, "Minor criminal record")
	}

	if containsAny(strings.ToLower(safety.AccidentHistory), "accident", "collision") {
		score += 2
		factors = append(factors, "Accident history reported")
	}
	if containsAny(strings.ToLower(safety.LicenseSuspensions), "suspended", "revoked") {
		score += 3
		factors = append(factors, "License suspension/revocation")
	}
	if containsAny(strings.ToLower(safety.DrugTestResults), "failed", "positive") {
		score += 3
		factors = append(factors, "Drug test failure")
	}
	if containsAny(strings.ToLower(safety.TrafficViolations), "violation", "ticket") {
		score += 1
		factors = append(factors, "Traffic violations")
	}

	level, color := riskLevel(score)
	return RiskAssessment{
		Level:          level,
		Score:          score,
		Color:          color,
		Factors:        factors,
		Recommendation: recommendation(level, score),
	}
}

func containsAny(haystack string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(haystack, w) {
			return true
		}
	}
	return false
}

func riskLevel(score int) (level, color string) {
	switch {
	case score >= 5:
		return RiskHigh, "red"
	case score >= 2:
		return RiskMedium, "yellow"
	default:
		return RiskLow, "green"
	}
}

func recommendation(level string, score int) string {
	switch level {
	case RiskHigh:
		return fmt.Sprintf("Manual review required before hiring (risk score %d)", score)
	case RiskMedium:
		return fmt.Sprintf("Verify flagged items with the applicant (risk score %d)", score)
	default:
		return "No safety concerns detected in application"
	}
}
