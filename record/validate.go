package record

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/sv/mcp-paradex-go/errs"
)

// ValidateStrict checks m against the full schema contract: every required
// field present, all value types correct, no fields outside the declared
// set. This is the decompression contract; a failure here means the erased
// data was corrupted or hand-edited.
func (s *Schema) ValidateStrict(m map[string]any) error {
	return s.validate(s.strict, m)
}

// ValidatePartial checks m leniently: missing required fields and unknown
// fields are tolerated, but every present declared field must still carry
// the correct type. This is the filter-path contract, where a projection
// may legitimately drop or rename fields.
func (s *Schema) ValidatePartial(m map[string]any) error {
	return s.validate(s.partial, m)
}

func (s *Schema) validate(validator *gojsonschema.Schema, m map[string]any) error {
	result, err := validator.Validate(gojsonschema.NewGoLoader(m))
	if err != nil {
		return fmt.Errorf("%w: schema %q: %v", errs.ErrSchemaViolation, s.name, err)
	}
	if !result.Valid() {
		return fmt.Errorf("%w: schema %q: %s", errs.ErrSchemaViolation, s.name, describeResult(result))
	}

	return nil
}

func describeResult(result *gojsonschema.Result) string {
	descs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		descs = append(descs, re.String())
	}

	return strings.Join(descs, "; ")
}
