// Package endian provides byte order utilities for the envelope's binary
// header.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into one EndianEngine interface, so header fields can be
// both appended during encoding and read back during decoding through a
// single value. Envelopes are always little-endian on the wire; the
// big-endian engine exists for tests and diagnostics.
package endian

import "encoding/binary"

// EndianEngine combines read and append byte-order operations. It is
// satisfied by binary.LittleEndian and binary.BigEndian, so instances are
// immutable, stateless and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the wire order
// for envelope headers.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
