// Package hash computes 64-bit schema fingerprints using xxHash64.
package hash

import "github.com/cespare/xxhash/v2"

// SchemaID computes the xxHash64 fingerprint of a schema from its name and
// its ordered field names. Field order is significant: two schemas with the
// same fields in a different order produce different fingerprints.
func SchemaID(name string, fields []string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)
	for _, f := range fields {
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(f)
	}

	return d.Sum64()
}
