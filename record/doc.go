// Package record defines the typed-record abstraction shared by the
// compact and query packages.
//
// A Schema is a named record type with an ordered set of typed fields,
// supplied by the surrounding service and immutable after construction.
// Records are ordinary Go structs with JSON tags matching the schema's
// field names; this package converts between the typed form and a
// schema-erased generic form (map[string]any trees) so the transformation
// engines never need runtime reflection over arbitrary struct types.
//
// # Validation modes
//
// A Schema exposes two distinct validation entry points rather than a
// single mode flag:
//
//   - ValidateStrict: every required field present, all value types
//     correct, no unknown fields. Used by decompression, which must never
//     need lenient tolerance.
//   - ValidatePartial: required-ness relaxed and unknown fields tolerated,
//     per-field types still enforced. Used only by the filter path, where
//     a projection may legitimately drop required fields.
//
// Both validators are compiled once at schema construction from the field
// descriptors, so validation itself allocates only the result.
//
// # Erasure and parsing
//
// Dump converts a record to its generic form through a JSON round-trip;
// Parse and ParsePartial convert a generic map back to a typed record,
// validating first. Parse applies each optional field's declared default
// before strict validation, mirroring record creation: a well-formed
// record always carries every field.
package record
