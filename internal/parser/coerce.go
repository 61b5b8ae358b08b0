package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/drivelinehq/driver-profile-api/internal/catalog"
)

var (
	nonDigitRe = regexp.MustCompile(`[^\d]`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Date layouts tried in order, 4-digit years before 2-digit so a full
	// year is never split. Group 3 carries the year except in the year-first
	// layout, where group 1 does.
	dateRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`),
		regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`),
		regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`),
		regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{2})`),
		regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2})`),
	}
)

// blankLike reports whether a captured string carries no information. Checked
// before any type-specific rule, for every type.
func blankLike(raw string) bool {
	switch strings.ToLower(raw) {
	case "", "none", "n/a", "not found":
		return true
	}
	return false
}

// Coerce converts a captured, trimmed string into the field's semantic type.
// Coercion is total: unparseable numbers, dates, phones, and identity numbers
// degrade to the raw string rather than failing. Email is the one strict type:
// a malformed address is dropped to absent.
func Coerce(raw string, fieldType catalog.FieldType) TypedValue {
	if blankLike(raw) {
		return Absent()
	}

	switch fieldType {
	case catalog.FieldTypeBoolean:
		return coerceBool(raw)
	case catalog.FieldTypeNumber:
		return coerceNumber(raw)
	case catalog.FieldTypeDate:
		return StringValue(coerceDate(raw))
	case catalog.FieldTypePhone:
		return StringValue(coercePhone(raw))
	case catalog.FieldTypeEmail:
		return coerceEmail(raw)
	case catalog.FieldTypeIdentity:
		return StringValue(coerceIdentity(raw))
	default: // text, address, array, object
		return StringValue(strings.TrimSpace(raw))
	}
}

func coerceBool(raw string) TypedValue {
	switch strings.ToLower(raw) {
	case "yes", "true", "1", "y":
		return BoolValue(true)
	}
	return BoolValue(false)
}

func coerceNumber(raw string) TypedValue {
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
	} else if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntValue(n)
	}
	return StringValue(raw)
}

// coerceDate normalizes a date to YYYY-MM-DD with zero padding. Unrecognized
// input is returned verbatim. A 2-digit year is prefixed with "20", matching
// the known form template's date range.
func coerceDate(raw string) string {
	for i, re := range dateRes {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		if i == 2 {
			// YYYY-D-D layout: year leads.
			return fmt.Sprintf("%s-%s-%s", m[1], pad2(m[2]), pad2(m[3]))
		}
		year := m[3]
		if len(year) != 4 {
			year = "20" + year
		}
		return fmt.Sprintf("%s-%s-%s", year, pad2(m[1]), pad2(m[2]))
	}
	return raw
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func coercePhone(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) == 10 {
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
	return strings.TrimSpace(raw)
}

func coerceEmail(raw string) TypedValue {
	if emailRe.MatchString(raw) {
		return StringValue(strings.ToLower(raw))
	}
	return Absent()
}

func coerceIdentity(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) == 9 {
		return digits[:3] + "-" + digits[3:5] + "-" + digits[5:]
	}
	return strings.TrimSpace(raw)
}
