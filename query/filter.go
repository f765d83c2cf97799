package query

import (
	"fmt"

	"github.com/jmespath/go-jmespath"

	"github.com/sv/mcp-paradex-go/errs"
	"github.com/sv/mcp-paradex-go/internal/options"
	"github.com/sv/mcp-paradex-go/record"
)

// Option configures a single Apply call.
type Option = options.Option[*config]

type config struct {
	sink func(string)
}

// WithErrorSink registers a callable that receives each diagnostic string
// before the corresponding error is returned. Sink failures are ignored.
func WithErrorSink(sink func(string)) Option {
	return options.NoError(func(c *config) {
		c.sink = sink
	})
}

// Apply evaluates a JMESPath expression against a record collection and
// reattaches the result to the schema.
//
// The call is a single synchronous pure computation:
//
//  1. Empty or "null" expression returns records unchanged.
//  2. The expression is compiled; a syntax error fails fast with
//     errs.ErrQueryParse before any record is touched.
//  3. The collection is erased to generic form, order preserved, and the
//     compiled expression evaluated against it.
//  4. A nil or empty result yields an empty collection. Any other
//     non-array result, or an array element that is not an object, fails
//     with errs.ErrQueryEvaluation.
//  5. Each element is validated partially and parsed leniently, so
//     projections that drop required fields still produce typed results.
func Apply[T any](records []T, expression string, schema *record.Schema, opts ...Option) ([]T, error) {
	if expression == "" || expression == "null" {
		return records, nil
	}

	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	compiled, err := jmespath.Compile(expression)
	if err != nil {
		return nil, cfg.fail(errs.ErrQueryParse, fmt.Sprintf("compile expression %q: %v", expression, err))
	}

	dumps, err := record.DumpSlice(records)
	if err != nil {
		return nil, err
	}
	erased := make([]any, len(dumps))
	for i, dump := range dumps {
		erased[i] = dump
	}

	result, err := compiled.Search(erased)
	if err != nil {
		return nil, cfg.fail(errs.ErrQueryEvaluation, fmt.Sprintf("evaluate expression %q: %v", expression, err))
	}
	if result == nil {
		return []T{}, nil
	}

	rows, ok := result.([]any)
	if !ok {
		return nil, cfg.fail(errs.ErrQueryEvaluation,
			fmt.Sprintf("expression %q produced %T, want an array of records", expression, result))
	}

	out := make([]T, 0, len(rows))
	for i, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			return nil, cfg.fail(errs.ErrQueryEvaluation,
				fmt.Sprintf("expression %q produced element %d of type %T, want an object", expression, i, row))
		}

		rec, err := record.ParsePartial[T](schema, obj)
		if err != nil {
			return nil, cfg.fail(errs.ErrSchemaViolation, fmt.Sprintf("result element %d: %v", i, err))
		}
		out = append(out, rec)
	}

	return out, nil
}

// fail reports the diagnostic to the sink, then wraps it with the sentinel.
// The sink is best effort: a panic inside it must not mask the error.
func (c *config) fail(sentinel error, diagnostic string) error {
	c.report(diagnostic)

	return fmt.Errorf("%w: %s", sentinel, diagnostic)
}

func (c *config) report(diagnostic string) {
	if c.sink == nil {
		return
	}
	defer func() { _ = recover() }()
	c.sink(diagnostic)
}
