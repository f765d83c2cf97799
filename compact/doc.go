// Package compact factors repeated field values out of homogeneous record
// collections.
//
// Trading endpoints frequently return collections where most fields repeat
// on every element: every position in a response may share the same
// market, account and status while only sizes and prices vary. Compress
// splits such a collection into a single shared "common" object and a
// positionally aligned list of per-record "items" carrying only the
// varying fields; Decompress reverses the split exactly.
//
// # Laws
//
// For any non-empty collection C with Compress(C) = (common, items):
//
//   - Round-trip: merging common into items[i] reproduces C[i] for every i,
//     order preserved.
//   - Partition: every schema field appears in exactly one of common or
//     items[i], never both, never neither.
//   - Maximality: a field is in common if and only if every record carries
//     it with the same (deeply equal) value.
//   - Singleton: a one-element collection compresses to an empty common and
//     the verbatim record, so a consumer reading only items loses nothing.
//   - Empty: an empty collection compresses to nil, a marker distinct from
//     any Form.
//
// Compression is a pure structural fold and cannot fail on well-formed
// records; decompression validates strictly and fails only when the Form
// was tampered with after the fact.
package compact
