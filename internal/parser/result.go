package parser

import "time"

// Metadata describes how an extraction run went.
type Metadata struct {
	SourceFile       string    `json:"source_file"`
	ParsedAt         time.Time `json:"parsed_at"`
	SectionsFound    []string  `json:"sections_found"`
	FieldsAttempted  int       `json:"fields_attempted"`
	FieldsExtracted  int       `json:"fields_extracted"`
	EmploymentCount  int       `json:"employment_count"`
	AccidentCount    int       `json:"accident_count"`
	SectionsTotal    int       `json:"sections_total"`
}

// ExtractionResult is the complete output for one document: every catalog
// field's typed value, the repeated-group histories, and run metadata. It is
// assembled once per document and not mutated afterwards. RawText is retained
// for audit so a stored profile can be re-checked against what the extractor
// actually saw.
type ExtractionResult struct {
	Fields            map[string]TypedValue `json:"fields"`
	EmploymentHistory []GroupRecord         `json:"employment_history"`
	AccidentHistory   []GroupRecord         `json:"accident_history"`
	Confidence        float64               `json:"confidence"`
	RawText           string                `json:"raw_text"`
	Metadata          Metadata              `json:"metadata"`
}

// Field returns the typed value for a catalog field, absent when the field was
// never resolved.
func (r *ExtractionResult) Field(name string) TypedValue {
	if v, ok := r.Fields[name]; ok {
		return v
	}
	return Absent()
}

// FieldString returns the field rendered as a string, "" when absent.
func (r *ExtractionResult) FieldString(name string) string {
	return r.Field(name).AsString()
}
