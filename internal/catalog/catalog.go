// Package catalog defines the static table of extractable driver-application
// fields and compiles it into an immutable, shareable lookup structure.
package catalog

import (
	"fmt"
	"regexp"
)

// FieldType identifies the semantic type a captured value is coerced into.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeDate     FieldType = "date"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeNumber   FieldType = "number"
	FieldTypeAddress  FieldType = "address"
	FieldTypeIdentity FieldType = "identity_number"
	FieldTypeArray    FieldType = "array"
	FieldTypeObject   FieldType = "object"
)

// FieldDefinition describes one extractable field: its semantic type, the
// ordered candidate patterns tried against the document text, and the section
// of the application form it belongs to.
//
// Patterns are tried in declaration order and the first match wins, even if a
// later pattern would match a more specific location. Authors must therefore
// order patterns most-specific-first.
type FieldDefinition struct {
	Name     string
	Type     FieldType
	Patterns []string
	Required bool
	Section  string
}

// Field is a FieldDefinition with its patterns compiled. Compilation happens
// once at catalog construction so a bad pattern fails at startup rather than
// silently during resolution.
type Field struct {
	FieldDefinition
	Regexps []*regexp.Regexp
}

// Catalog is the read-only, process-wide table of field definitions. Build it
// once and share it freely; it has no mutation API and is safe for concurrent
// use.
type Catalog struct {
	fields    []Field
	byName    map[string]*Field
	bySection map[string][]*Field
	sections  []string
}

// New compiles the given definitions into a Catalog. It rejects duplicate
// field names, empty pattern lists, patterns that fail to compile, and
// patterns without a capturing group.
func New(defs []FieldDefinition) (*Catalog, error) {
	c := &Catalog{
		fields:    make([]Field, 0, len(defs)),
		byName:    make(map[string]*Field, len(defs)),
		bySection: make(map[string][]*Field),
	}

	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("field definition with empty name in section %q", def.Section)
		}
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("duplicate field name %q", def.Name)
		}
		seen[def.Name] = struct{}{}
		if len(def.Patterns) == 0 {
			return nil, fmt.Errorf("field %q has no patterns", def.Name)
		}

		field := Field{
			FieldDefinition: def,
			Regexps:         make([]*regexp.Regexp, 0, len(def.Patterns)),
		}
		for i, pattern := range def.Patterns {
			// Case-insensitive, multiline, dot-matches-newline: the
			// document text keeps its line breaks and patterns anchor
			// on them.
			re, err := regexp.Compile("(?ims)" + pattern)
			if err != nil {
				return nil, fmt.Errorf("field %q pattern %d: %w", def.Name, i, err)
			}
			if re.NumSubexp() < 1 {
				return nil, fmt.Errorf("field %q pattern %d has no capturing group", def.Name, i)
			}
			field.Regexps = append(field.Regexps, re)
		}

		c.fields = append(c.fields, field)
	}

	// Index after the slice is final so pointers stay valid.
	for i := range c.fields {
		f := &c.fields[i]
		c.byName[f.Name] = f
		if _, seen := c.bySection[f.Section]; !seen {
			c.sections = append(c.sections, f.Section)
		}
		c.bySection[f.Section] = append(c.bySection[f.Section], f)
	}

	return c, nil
}

// Default returns a catalog built from the built-in driver-application field
// table. It panics if the table is invalid, which is a programming error
// caught by the catalog tests.
func Default() *Catalog {
	c, err := New(DefaultFields())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in field table: %v", err))
	}
	return c
}

// Lookup returns the compiled field with the given name.
func (c *Catalog) Lookup(name string) (*Field, bool) {
	f, ok := c.byName[name]
	return f, ok
}

// Section returns the fields belonging to the given section, in declaration
// order.
func (c *Catalog) Section(name string) []*Field {
	return c.bySection[name]
}

// Sections returns the deduplicated section names in first-appearance order.
func (c *Catalog) Sections() []string {
	return c.sections
}

// Fields returns all compiled fields in declaration order.
func (c *Catalog) Fields() []Field {
	return c.fields
}

// Len returns the total number of fields in the catalog.
func (c *Catalog) Len() int {
	return len(c.fields)
}
