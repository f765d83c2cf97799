// Package errs defines the sentinel errors shared across the library.
//
// All failure paths wrap one of these sentinels with fmt.Errorf("...: %w", ...),
// so callers can classify failures with errors.Is while still seeing the
// original diagnostic in the message.
package errs

import "errors"

// Query expression failures.
var (
	// ErrQueryParse indicates a malformed query expression. It is always
	// detected before any record data is touched.
	ErrQueryParse = errors.New("invalid query expression")

	// ErrQueryEvaluation indicates the expression compiled but failed during
	// evaluation, or produced a result that cannot be reattached to a schema
	// (a scalar instead of an array, an array of non-objects).
	ErrQueryEvaluation = errors.New("query evaluation failed")
)

// Schema failures.
var (
	// ErrSchemaViolation indicates data that does not conform to its declared
	// schema. On the decompression path this means the compressed form was
	// corrupted or hand-edited.
	ErrSchemaViolation = errors.New("record does not conform to schema")

	// ErrInvalidSchema indicates a malformed schema definition: empty name,
	// no fields, duplicate or empty field names, or an unknown field kind.
	ErrInvalidSchema = errors.New("invalid schema definition")
)

// Envelope decoding failures.
var (
	ErrInvalidMagicNumber     = errors.New("invalid envelope magic number")
	ErrUnsupportedVersion     = errors.New("unsupported envelope version")
	ErrInvalidCompressionType = errors.New("invalid envelope compression type")
	ErrSchemaMismatch         = errors.New("envelope schema fingerprint mismatch")
	ErrPayloadTruncated       = errors.New("envelope payload truncated")
)
