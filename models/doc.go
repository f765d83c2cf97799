// Package models defines the Paradex record types served by the
// surrounding endpoints and their schema descriptors.
//
// Each exported struct mirrors one upstream response shape; the matching
// record.Schema carries the ordered field list, required/default markers
// and compiled validators consumed by the compact and query packages.
// Struct field order, JSON tags and schema field order are kept aligned
// so erased dumps and schema fingerprints stay stable.
//
// All schemas are registered in the package-level Registry under their
// type name ("Position", "MarketSummary", ...), which is how endpoint
// handlers resolve the schema for a response collection.
package models
