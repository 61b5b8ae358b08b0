package parser

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/drivelinehq/driver-profile-api/internal/catalog"
)

// TextExtractor obtains raw text from a source document.
type TextExtractor interface {
	ExtractFile(path string) (string, error)
}

// Parser is the extraction entry point: text acquisition, catalog-wide field
// resolution, repeated-group extraction, and confidence scoring. It holds only
// immutable state and is safe for concurrent use; each Parse call is
// independent.
type Parser struct {
	catalog   *catalog.Catalog
	extractor TextExtractor
	groups    *GroupExtractor
	resolver  Resolver
}

// New builds a parser over the given catalog and text extractor.
func New(c *catalog.Catalog, extractor TextExtractor, policy SortPolicy) *Parser {
	return &Parser{
		catalog:   c,
		extractor: extractor,
		groups:    NewGroupExtractor(policy),
	}
}

// Parse extracts text from the document at path and resolves it into an
// ExtractionResult. It fails only when no text can be extracted; individual
// field non-matches are absent values, never errors.
func (p *Parser) Parse(path string) (*ExtractionResult, error) {
	text, err := p.extractor.ExtractFile(path)
	if err != nil {
		return nil, err
	}

	result := p.ParseText(text, filepath.Base(path))

	zap.L().Info("document parsed",
		zap.String("file", result.Metadata.SourceFile),
		zap.Float64("confidence", result.Confidence),
		zap.Int("fields_extracted", result.Metadata.FieldsExtracted),
		zap.Int("employment_records", result.Metadata.EmploymentCount),
		zap.Int("accident_records", result.Metadata.AccidentCount),
	)
	return result, nil
}

// ParseText resolves already-extracted text. Exposed separately so callers
// holding text from another source (tests, re-audits of stored raw text) can
// skip document I/O.
func (p *Parser) ParseText(text, sourceFile string) *ExtractionResult {
	fields := make(map[string]TypedValue, p.catalog.Len())
	sectionsFound := make([]string, 0, len(p.catalog.Sections()))

	for _, section := range p.catalog.Sections() {
		found := false
		for _, field := range p.catalog.Section(section) {
			v := p.resolver.Resolve(text, field)
			fields[field.Name] = v
			if v.IsPresent() {
				found = true
			}
		}
		if found {
			sectionsFound = append(sectionsFound, section)
		}
	}

	employment := p.groups.ExtractEmployment(text)
	accidents := p.groups.ExtractAccidents(text)

	extracted := 0
	for _, v := range fields {
		if v.IsPresent() {
			extracted++
		}
	}

	return &ExtractionResult{
		Fields:            fields,
		EmploymentHistory: employment,
		AccidentHistory:   accidents,
		Confidence:        ConfidenceScore(p.catalog, fields, len(employment)),
		RawText:           text,
		Metadata: Metadata{
			SourceFile:      sourceFile,
			ParsedAt:        time.Now().UTC(),
			SectionsFound:   sectionsFound,
			FieldsAttempted: p.catalog.Len(),
			FieldsExtracted: extracted,
			EmploymentCount: len(employment),
			AccidentCount:   len(accidents),
			SectionsTotal:   len(p.catalog.Sections()),
		},
	}
}
