package compact

import (
	"fmt"
	"reflect"

	"github.com/sv/mcp-paradex-go/record"
)

// Form is the compressed representation of a record collection: the fields
// shared by every record, and the per-record remainder. Items is
// positionally aligned with the source collection, and its key sets are
// disjoint from Common's by construction.
type Form struct {
	Common map[string]any   `json:"common"`
	Items  []map[string]any `json:"items"`
}

// Compress factors the fields whose values are identical across all
// records out of the collection.
//
// An empty collection yields (nil, nil), the absent marker. A singleton
// collection yields an empty Common and the verbatim record as the sole
// item. Larger collections are folded in a single pass: the candidate
// common set starts as the first record's dump and shrinks as later
// records disagree; once a field leaves the candidate set it never
// returns, so the scan stops early when nothing is left.
func Compress[T any](records []T) (*Form, error) {
	if len(records) == 0 {
		return nil, nil
	}

	dumps, err := record.DumpSlice(records)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	if len(dumps) == 1 {
		return &Form{Common: map[string]any{}, Items: dumps}, nil
	}

	candidate := make(map[string]any, len(dumps[0]))
	for name, value := range dumps[0] {
		candidate[name] = value
	}

	for _, dump := range dumps[1:] {
		for name, common := range candidate {
			value, ok := dump[name]
			if !ok || !valuesEqual(value, common) {
				delete(candidate, name)
			}
		}
		if len(candidate) == 0 {
			break
		}
	}

	items := make([]map[string]any, len(dumps))
	for i, dump := range dumps {
		item := make(map[string]any, len(dump)-len(candidate))
		for name, value := range dump {
			if _, ok := candidate[name]; !ok {
				item[name] = value
			}
		}
		items[i] = item
	}

	return &Form{Common: candidate, Items: items}, nil
}

// Decompress reconstructs the typed collection from a Form. Each item is
// merged with the common fields, completed with declared defaults, and
// validated strictly: a Form produced by Compress always passes, so a
// failure here means the Form was modified externally.
//
// A nil Form (the absent marker) decompresses to an empty collection.
func Decompress[T any](form *Form, schema *record.Schema) ([]T, error) {
	if form == nil {
		return []T{}, nil
	}

	out := make([]T, 0, len(form.Items))
	for i, item := range form.Items {
		merged := make(map[string]any, len(form.Common)+len(item))
		for name, value := range form.Common {
			merged[name] = value
		}
		for name, value := range item {
			merged[name] = value
		}

		rec, err := record.Parse[T](schema, merged)
		if err != nil {
			return nil, fmt.Errorf("decompress item %d: %w", i, err)
		}
		out = append(out, rec)
	}

	return out, nil
}

// valuesEqual reports deep structural equality of two erased values.
// Dumps normalize everything to JSON-shaped trees, so DeepEqual compares
// sequences element-wise in order and maps by key/value sets.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
