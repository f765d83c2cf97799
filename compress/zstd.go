package compress

// ZstdCompressor provides Zstandard compression for serialized record
// payloads. JSON-shaped payloads are highly repetitive, so Zstd gives the
// best ratio of the supported algorithms at a moderate CPU cost; prefer
// it when envelopes are spooled or sent over constrained links.
//
// The default build uses the pure-Go klauspost/compress implementation
// with pooled encoder/decoder state. Builds with the gozstd tag use the
// cgo-backed valyala/gozstd library instead.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
