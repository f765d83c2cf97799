package record

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Dump erases a record to its generic form: a map from field name to
// JSON-shaped value (map[string]any, []any, float64, string, bool, nil).
// Erasure goes through a JSON round-trip so that every value in the
// result is normalized, which makes structural equality between dumps of
// different records well defined.
func Dump[T any](rec T) (map[string]any, error) {
	raw, err := sonic.ConfigFastest.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("dump record: %w", err)
	}

	var m map[string]any
	if err := sonic.ConfigFastest.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("dump record: %w", err)
	}

	return m, nil
}

// DumpSlice erases an ordered collection, preserving order.
func DumpSlice[T any](records []T) ([]map[string]any, error) {
	out := make([]map[string]any, len(records))
	for i, rec := range records {
		m, err := Dump(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = m
	}

	return out, nil
}

// Parse converts an erased map back into a typed record under the strict
// contract. Declared defaults are applied for absent optional fields
// before validation, so a valid parse always yields a complete record.
func Parse[T any](s *Schema, m map[string]any) (T, error) {
	var zero T

	full := s.ApplyDefaults(m)
	if err := s.ValidateStrict(full); err != nil {
		return zero, err
	}

	return bind[T](full)
}

// ParsePartial converts an erased map back into a typed record under the
// lenient contract. Absent fields are left at their zero values; this is
// a best-effort typed view of whatever shape a query produced, not a
// guaranteed-complete record.
func ParsePartial[T any](s *Schema, m map[string]any) (T, error) {
	var zero T

	if err := s.ValidatePartial(m); err != nil {
		return zero, err
	}

	return bind[T](m)
}

func bind[T any](m map[string]any) (T, error) {
	var rec T

	raw, err := sonic.ConfigFastest.Marshal(m)
	if err != nil {
		return rec, fmt.Errorf("bind record: %w", err)
	}
	if err := sonic.ConfigFastest.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("bind record: %w", err)
	}

	return rec, nil
}
