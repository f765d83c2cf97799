// Package paradex provides the record transformation layer of a Paradex
// trading API service: loss-less collection compaction, JMESPath
// filtering with schema reattachment, and a binary wire envelope.
//
// The heavy lifting lives in the sub-packages:
//
//   - record: typed schemas with strict and partial validation
//   - compact: common-field factoring of record collections
//   - query: JMESPath filtering over schema-erased data
//   - envelope: self-describing binary framing of compacted collections
//   - models: the concrete Paradex record types and their schemas
//   - client: the lazily dialed exchange client handle
//
// This package re-exports the common entry points so simple callers need
// a single import.
package paradex

import (
	"github.com/sv/mcp-paradex-go/compact"
	"github.com/sv/mcp-paradex-go/envelope"
	"github.com/sv/mcp-paradex-go/query"
	"github.com/sv/mcp-paradex-go/record"
)

// CompressRecords factors the field values shared by every record of a
// collection into a common block. An empty collection compresses to nil.
func CompressRecords[T any](records []T) (*compact.Form, error) {
	return compact.Compress(records)
}

// DecompressRecords restores the typed collection from a compacted form,
// re-validating every reconstructed record against the schema.
func DecompressRecords[T any](form *compact.Form, schema *record.Schema) ([]T, error) {
	return compact.Decompress[T](form, schema)
}

// FilterRecords evaluates a JMESPath expression over a record collection
// and reattaches the result to the schema with lenient validation.
func FilterRecords[T any](records []T, expression string, schema *record.Schema, opts ...query.Option) ([]T, error) {
	return query.Apply(records, expression, schema, opts...)
}

// EncodeEnvelope frames a compacted collection as a self-describing
// binary payload for the given schema.
func EncodeEnvelope(form *compact.Form, schema *record.Schema, opts ...envelope.Option) ([]byte, error) {
	return envelope.Encode(form, schema, opts...)
}

// DecodeEnvelope verifies a binary payload against the schema and
// restores the compacted collection.
func DecodeEnvelope(data []byte, schema *record.Schema) (*compact.Form, error) {
	return envelope.Decode(data, schema)
}
