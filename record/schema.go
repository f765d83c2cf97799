package record

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/sv/mcp-paradex-go/errs"
	"github.com/sv/mcp-paradex-go/internal/hash"
)

// Kind is the semantic type of a schema field.
type Kind uint8

const (
	KindString  Kind = 0x1 // KindString represents a string field.
	KindNumber  Kind = 0x2 // KindNumber represents a floating-point field.
	KindInteger Kind = 0x3 // KindInteger represents an integer field.
	KindBool    Kind = 0x4 // KindBool represents a boolean field.
	KindObject  Kind = 0x5 // KindObject represents a nested object field.
	KindArray   Kind = 0x6 // KindArray represents a sequence field.
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindInteger:
		return "Integer"
	case KindBool:
		return "Bool"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// jsonTypes maps a Kind to its JSON Schema type descriptor. Object and
// array fields also accept null: a Go nil slice or nil map erases to JSON
// null, and a record carrying one must still round-trip losslessly.
func (k Kind) jsonTypes() any {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBool:
		return "boolean"
	case KindObject:
		return []string{"object", "null"}
	case KindArray:
		return []string{"array", "null"}
	default:
		return nil
	}
}

// zeroValue returns the erased zero value for a Kind, used as the implicit
// default of an optional field that declares none.
func (k Kind) zeroValue() any {
	switch k {
	case KindString:
		return ""
	case KindNumber:
		return 0.0
	case KindInteger:
		return 0
	case KindBool:
		return false
	case KindObject:
		return map[string]any{}
	case KindArray:
		return []any{}
	default:
		return nil
	}
}

// Field describes one typed field of a schema.
type Field struct {
	// Name is the field name as it appears in the erased form (the JSON
	// tag of the corresponding struct field).
	Name string

	// Kind is the field's semantic type.
	Kind Kind

	// Required marks the field as mandatory under strict validation.
	Required bool

	// Default is the value substituted for an absent optional field before
	// strict validation. A nil Default falls back to the Kind's zero value.
	// Ignored for required fields.
	Default any
}

// Schema is a named record type with an ordered set of typed fields.
//
// Schemas are immutable after construction and safe for concurrent use:
// both validators are compiled once by New, and every accessor returns
// copies of internal state.
type Schema struct {
	name    string
	fields  []Field
	index   map[string]int
	id      uint64
	strict  *gojsonschema.Schema
	partial *gojsonschema.Schema
}

// New builds a Schema from an ordered field list and compiles its strict
// and partial validators.
//
// Parameters:
//   - name: Record type name, must be non-empty
//   - fields: Ordered field descriptors, at least one, unique non-empty names
//
// Returns:
//   - *Schema: The compiled schema
//   - error: errs.ErrInvalidSchema for a malformed definition
func New(name string, fields ...Field) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty schema name", errs.ErrInvalidSchema)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: schema %q has no fields", errs.ErrInvalidSchema, name)
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: schema %q field %d has an empty name", errs.ErrInvalidSchema, name, i)
		}
		if f.Kind.jsonTypes() == nil {
			return nil, fmt.Errorf("%w: schema %q field %q has unknown kind", errs.ErrInvalidSchema, name, f.Name)
		}
		if _, ok := index[f.Name]; ok {
			return nil, fmt.Errorf("%w: schema %q has duplicate field %q", errs.ErrInvalidSchema, name, f.Name)
		}
		index[f.Name] = i
	}

	s := &Schema{
		name:   name,
		fields: append([]Field(nil), fields...),
		index:  index,
		id:     hash.SchemaID(name, fieldNames(fields)),
	}

	strict, err := compileValidator(s.document(true, false))
	if err != nil {
		return nil, fmt.Errorf("%w: schema %q: %v", errs.ErrInvalidSchema, name, err)
	}
	partial, err := compileValidator(s.document(false, true))
	if err != nil {
		return nil, fmt.Errorf("%w: schema %q: %v", errs.ErrInvalidSchema, name, err)
	}

	s.strict = strict
	s.partial = partial

	return s, nil
}

// MustNew is like New but panics on a malformed definition. Intended for
// package-level schema declarations.
func MustNew(name string, fields ...Field) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Name returns the record type name.
func (s *Schema) Name() string {
	return s.name
}

// ID returns the 64-bit fingerprint of the schema, derived from its name
// and ordered field names.
func (s *Schema) ID() uint64 {
	return s.id
}

// Fields returns a copy of the ordered field descriptors.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// FieldNames returns the field names in declaration order.
func (s *Schema) FieldNames() []string {
	return fieldNames(s.fields)
}

// Field looks up a field descriptor by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// ApplyDefaults returns a copy of m with every absent optional field set
// to its declared default (or the kind's zero value when none is declared).
// Required fields are never filled in; their absence is a validation error.
func (s *Schema) ApplyDefaults(m map[string]any) map[string]any {
	out := make(map[string]any, len(s.fields))
	for k, v := range m {
		out[k] = v
	}
	for _, f := range s.fields {
		if f.Required {
			continue
		}
		if _, ok := out[f.Name]; ok {
			continue
		}
		if f.Default != nil {
			out[f.Name] = f.Default
		} else {
			out[f.Name] = f.Kind.zeroValue()
		}
	}

	return out
}

// document builds the JSON Schema description backing one validator.
// requireAll keeps the required-field list; allowUnknown tolerates fields
// outside the declared set (projection results may rename fields).
func (s *Schema) document(requireAll, allowUnknown bool) map[string]any {
	props := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		props[f.Name] = map[string]any{"type": f.Kind.jsonTypes()}
	}

	doc := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": allowUnknown,
	}

	if requireAll {
		var required []string
		for _, f := range s.fields {
			if f.Required {
				required = append(required, f.Name)
			}
		}
		if len(required) > 0 {
			doc["required"] = required
		}
	}

	return doc
}

func compileValidator(doc map[string]any) (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
}

func fieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	return names
}
