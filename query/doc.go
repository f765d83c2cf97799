// Package query narrows, reorders and projects record collections with
// JMESPath expressions.
//
// Callers pass an opaque expression alongside any homogeneous collection;
// the engine validates the expression, evaluates it against the
// schema-erased form of the data, and reattaches the result to the schema
// leniently. Endpoints gain filtering, sorting, slicing and projection
// without per-endpoint code:
//
//	// numerically sorted top 3 by a string-encoded volume field
//	rows, err := query.Apply(summaries,
//	    "reverse(sort_by(@, &to_number(volume_24h)))[:3]", schema)
//
//	// predicate filter plus projection
//	rows, err = query.Apply(positions,
//	    "[?status=='OPEN'].{id: id, size: size}", schema)
//
// The expression language is side-effect free and schema-agnostic; it
// operates on plain maps, sequences and scalars. Because a projection may
// legitimately drop required fields, results are re-validated with the
// schema's partial mode; decompression-style strictness does not apply
// here.
//
// An empty or "null" expression is the identity: the input collection is
// returned untouched, with no validation performed. A syntactically
// invalid expression fails before any record is erased. An expression
// matching nothing yields an empty collection, never an error.
//
// The optional error sink receives every diagnostic before the error is
// returned; it exists so the request-handling layer can attach structured
// logging without the engine logging on its own behalf. A panicking sink
// never suppresses the original error.
package query
