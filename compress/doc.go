// Package compress provides byte-level codecs for serialized record
// payloads.
//
// The compact package removes structural redundancy from a collection;
// this package squeezes whatever remains once the compact form has been
// serialized, so envelopes handed across process boundaries stay small.
// Compression is optional and chosen per envelope.
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Algorithms
//
//   - None (format.CompressionNone): pass-through. Use when payloads are
//     tiny or CPU matters more than size.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. JSON
//     record payloads are highly repetitive and typically shrink 4-8x.
//     The default build uses klauspost/compress; the cgo-backed
//     valyala/gozstd implementation is available behind the gozstd build
//     tag.
//   - S2 (format.CompressionS2): balanced speed and ratio, good default
//     for hot request paths.
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio.
//     Block format with an adaptive decompression buffer.
//
// All codecs are stateless values and safe for concurrent use; the Zstd
// and LZ4 implementations pool their underlying encoder/decoder state.
//
// Every Compress/Decompress pair treats empty input as empty output, so a
// zero-length payload round-trips without error regardless of algorithm.
package compress
