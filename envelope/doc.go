// Package envelope frames a compacted record collection as a
// self-describing binary payload.
//
// Request handlers sometimes need to hand a compressed collection across a
// process boundary (a worker queue, a spool file, a sidecar cache owned by
// the caller). The envelope makes that safe without re-deriving the
// schema on the far side: a fixed little-endian header carries a magic
// number, a format version, a flag byte, the byte-level compression type
// and a 64-bit schema fingerprint, followed by the length-prefixed JSON
// payload run through the selected codec.
//
// Layout (all multi-byte fields little-endian):
//
//	offset  size  field
//	0       2     magic number (0x5058, "PX")
//	2       1     version
//	3       1     flags (bit 0: absent collection)
//	4       1     compression type
//	5       8     schema fingerprint (xxHash64 of name + ordered fields)
//	13      4     payload length
//	17      n     payload (sonic-encoded Form, compressed)
//
// The absent marker (a nil Form, produced by compressing an empty
// collection) is preserved through the flag bit and round-trips to nil.
// Decode verifies every header field against the supplied schema before
// touching the payload and fails with the matching errs sentinel.
package envelope
