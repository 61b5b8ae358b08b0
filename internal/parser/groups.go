package parser

import (
	"regexp"
	"sort"

	"github.com/drivelinehq/driver-profile-api/internal/catalog"
)

// GroupRecord is one instance of a repeating form section: one employment
// entry or one accident entry, keyed by sub-field name.
type GroupRecord map[string]TypedValue

// SortPolicy controls how employment entries are ordered after collection.
type SortPolicy string

const (
	// SortSkipOnMissing preserves the historical behavior: entries are
	// sorted by start date descending, but if any entry lacks a comparable
	// start date the whole sort is skipped and detection order is kept.
	SortSkipOnMissing SortPolicy = "skip-on-missing"

	// SortMissingLast sorts comparable entries by start date descending and
	// places entries without a comparable start date at the end, keeping
	// their relative detection order.
	SortMissingLast SortPolicy = "missing-last"
)

var (
	employmentOpenRe = regexp.MustCompile(`(?i)Company\s+[^\n\r]+`)
	employmentStopRe = regexp.MustCompile(`(?i)Unemployment|Trucking School`)
	accidentOpenRe   = regexp.MustCompile(`(?i)Type of Accident`)
	accidentStopRe   = regexp.MustCompile(`(?i)Traffic Convictions|Criminal Record`)
	unemploymentRe   = regexp.MustCompile(`(?is)Unemployment.*?Start Date\s+([^\n\r]+).*?End Date\s+([^\n\r]+).*?Comment\s+([^\n\r]+)`)
	isoDateRe        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func employmentSubfields() []catalog.FieldDefinition {
	text := func(name, pattern string) catalog.FieldDefinition {
		return catalog.FieldDefinition{Name: name, Type: catalog.FieldTypeText, Section: "employment", Patterns: []string{pattern}}
	}
	boolean := func(name, pattern string) catalog.FieldDefinition {
		return catalog.FieldDefinition{Name: name, Type: catalog.FieldTypeBoolean, Section: "employment", Patterns: []string{pattern}}
	}
	date := func(name, pattern string) catalog.FieldDefinition {
		return catalog.FieldDefinition{Name: name, Type: catalog.FieldTypeDate, Section: "employment", Patterns: []string{pattern}}
	}
	return []catalog.FieldDefinition{
		text("company_name", `Company\s+([^\n\r]+)`),
		date("start_date", `Start Date\s+([^\n\r]+)`),
		date("end_date", `End Date\s+([^\n\r]+)`),
		text("address", `Address\s+([^\n\r]+)`),
		text("city_state_zip", `City, State/Province Zip/Postal\s+([^\n\r]+)`),
		text("country", `Country\s+([^\n\r]+)`),
		text("phone", `Phone\s+([^\n\r]+)`),
		text("fax", `Fax\s+([^\n\r]+)`),
		text("position_held", `Position Held\s+([^\n\r]+)`),
		text("reason_for_leaving", `Reason for leaving\?\s+([^\n\r]+)`),
		boolean("terminated", `Were you terminated.*?\s+(Yes|No)`),
		boolean("current_employer", `Is this your current employer\?\s+(Yes|No)`),
		boolean("may_contact", `May we contact this employer.*?\s+(Yes|No)`),
		boolean("operated_cmv", `Did you operate a commercial motor vehicle\?\s+(Yes|No)`),
		boolean("subject_to_fmcsr", `Were you subject to the Federal Motor Carrier.*?\s+(Yes|No)`),
		boolean("safety_sensitive_functions", `Did you perform any safety sensitive functions.*?\s+(Yes|No)`),
		text("areas_driven", `Areas Driven\s+([^\n\r]+)`),
		text("miles_driven_weekly", `Miles driven weekly\s+([^\n\r]+)`),
		text("pay_range", `Pay Range.*?\s+([^\n\r]+)`),
		text("most_common_truck", `Most common truck driven\s+([^\n\r]+)`),
		text("most_common_trailer", `Most common trailer\s+([^\n\r]+)`),
		text("trailer_length", `Trailer length\s+([^\n\r]+)`),
	}
}

func accidentSubfields() []catalog.FieldDefinition {
	text := func(name, pattern string) catalog.FieldDefinition {
		return catalog.FieldDefinition{Name: name, Type: catalog.FieldTypeText, Section: "accident", Patterns: []string{pattern}}
	}
	boolean := func(name, pattern string) catalog.FieldDefinition {
		return catalog.FieldDefinition{Name: name, Type: catalog.FieldTypeBoolean, Section: "accident", Patterns: []string{pattern}}
	}
	date := func(name, pattern string) catalog.FieldDefinition {
		return catalog.FieldDefinition{Name: name, Type: catalog.FieldTypeDate, Section: "accident", Patterns: []string{pattern}}
	}
	return []catalog.FieldDefinition{
		text("type", `Type of Accident\s+([^\n\r]+)`),
		date("date", `Date of Accident\s+([^\n\r]+)`),
		boolean("hazmat_involved", `Hazmat Accident.*?\s+(Yes|No)`),
		boolean("vehicle_towed", `any vehicle towed away\?\s+(Yes|No)`),
		text("city", `City\s+([^\n\r]+)`),
		text("state", `State/Province\s+([^\n\r]+)`),
		boolean("commercial_vehicle", `Were you in a commercial vehicle\?\s+(Yes|No)`),
		boolean("dot_recordable", `Department of Transportation recordable accident\?\s+(Yes|No)`),
		boolean("at_fault", `Were you at fault\?\s+(Yes|No)`),
		boolean("ticketed", `Were you ticketed\?\s+(Yes|No)`),
		text("description", `Description\s+([^\n\r]+(?:\n[^\n\r]+)*)`),
	}
}

// GroupExtractor segments document text into repeated employment and accident
// blocks and resolves the fixed sub-field set within each block.
type GroupExtractor struct {
	employment *catalog.Catalog
	accident   *catalog.Catalog
	policy     SortPolicy
	resolver   Resolver
}

// NewGroupExtractor builds a group extractor with the given sort policy. An
// unrecognized policy falls back to SortSkipOnMissing.
func NewGroupExtractor(policy SortPolicy) *GroupExtractor {
	if policy != SortMissingLast {
		policy = SortSkipOnMissing
	}
	emp, err := catalog.New(employmentSubfields())
	if err != nil {
		panic("parser: invalid employment sub-field table: " + err.Error())
	}
	acc, err := catalog.New(accidentSubfields())
	if err != nil {
		panic("parser: invalid accident sub-field table: " + err.Error())
	}
	return &GroupExtractor{employment: emp, accident: acc, policy: policy}
}

// segment returns the text spans of repeated blocks. Each span starts at an
// occurrence of openRe and ends at the next occurrence of openRe, the nearest
// later stopRe match, or the end of text, whichever comes first. This keeps
// adjacent blocks from bleeding into each other and bounds the final block at
// end-of-document.
func segment(text string, openRe, stopRe *regexp.Regexp) []string {
	opens := openRe.FindAllStringIndex(text, -1)
	if len(opens) == 0 {
		return nil
	}
	stops := stopRe.FindAllStringIndex(text, -1)

	spans := make([]string, 0, len(opens))
	for i, open := range opens {
		end := len(text)
		if i+1 < len(opens) {
			end = opens[i+1][0]
		}
		for _, stop := range stops {
			if stop[0] > open[0] && stop[0] < end {
				end = stop[0]
				break
			}
		}
		spans = append(spans, text[open[0]:end])
	}
	return spans
}

// extractBlock resolves every sub-field of the given catalog within one block
// span, keeping only present values.
func (g *GroupExtractor) extractBlock(block string, c *catalog.Catalog) GroupRecord {
	record := make(GroupRecord)
	for _, field := range c.Fields() {
		f := field
		if v := g.resolver.Resolve(block, &f); v.IsPresent() {
			record[f.Name] = v
		}
	}
	return record
}

// ExtractEmployment returns employment entries in sorted (or detection) order.
// A block without a company name is discarded. Unemployment gaps matching the
// three-part pattern are appended as synthetic entries before sorting.
func (g *GroupExtractor) ExtractEmployment(text string) []GroupRecord {
	var records []GroupRecord

	for _, block := range segment(text, employmentOpenRe, employmentStopRe) {
		record := g.extractBlock(block, g.employment)
		if record["company_name"].IsPresent() {
			records = append(records, record)
		}
	}

	for _, m := range unemploymentRe.FindAllStringSubmatch(text, -1) {
		record := GroupRecord{
			"company_name":    StringValue("UNEMPLOYMENT"),
			"employment_type": StringValue("unemployment"),
		}
		if v := Coerce(m[1], catalog.FieldTypeDate); v.IsPresent() {
			record["start_date"] = v
		}
		if v := Coerce(m[2], catalog.FieldTypeDate); v.IsPresent() {
			record["end_date"] = v
		}
		if v := Coerce(m[3], catalog.FieldTypeText); v.IsPresent() {
			record["reason_for_leaving"] = v
		}
		records = append(records, record)
	}

	g.sortEmployment(records)
	return records
}

// ExtractAccidents returns accident entries in detection order. A block with
// neither a type nor a date is discarded.
func (g *GroupExtractor) ExtractAccidents(text string) []GroupRecord {
	var records []GroupRecord
	for _, block := range segment(text, accidentOpenRe, accidentStopRe) {
		record := g.extractBlock(block, g.accident)
		if record["type"].IsPresent() || record["date"].IsPresent() {
			records = append(records, record)
		}
	}
	return records
}

// sortKey returns the entry's normalized start date, or "" when the entry has
// none or the date did not normalize to YYYY-MM-DD.
func sortKey(r GroupRecord) string {
	v, ok := r["start_date"]
	if !ok || v.Kind != KindString || !isoDateRe.MatchString(v.Str) {
		return ""
	}
	return v.Str
}

// sortEmployment orders entries most recent first according to the configured
// policy. Under SortSkipOnMissing a single incomparable entry leaves the whole
// slice in detection order.
func (g *GroupExtractor) sortEmployment(records []GroupRecord) {
	if len(records) < 2 {
		return
	}
	if g.policy == SortSkipOnMissing {
		for _, r := range records {
			if sortKey(r) == "" {
				return
			}
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		ki, kj := sortKey(records[i]), sortKey(records[j])
		if ki == "" {
			return false
		}
		if kj == "" {
			return true
		}
		return ki > kj
	})
}
