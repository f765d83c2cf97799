package envelope

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/sv/mcp-paradex-go/compact"
	"github.com/sv/mcp-paradex-go/compress"
	"github.com/sv/mcp-paradex-go/endian"
	"github.com/sv/mcp-paradex-go/errs"
	"github.com/sv/mcp-paradex-go/format"
	"github.com/sv/mcp-paradex-go/internal/options"
	"github.com/sv/mcp-paradex-go/record"
)

const (
	// MagicNumber identifies an envelope ("PX" little-endian).
	MagicNumber uint16 = 0x5058

	// Version is the current envelope format version.
	Version uint8 = 1

	headerSize = 17

	flagAbsent uint8 = 0x01
)

// Option configures envelope encoding.
type Option = options.Option[*encodeConfig]

type encodeConfig struct {
	compression format.CompressionType
}

// WithCompression selects the byte-level codec applied to the payload.
// The default is no compression.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(c *encodeConfig) error {
		if !compressionType.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
		}
		c.compression = compressionType

		return nil
	})
}

// Encode frames a compacted collection for the given schema. A nil form
// (the absent marker) is encoded as a header-only envelope.
func Encode(form *compact.Form, schema *record.Schema, opts ...Option) ([]byte, error) {
	cfg := &encodeConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var (
		payload []byte
		flags   uint8
	)

	if form == nil {
		flags |= flagAbsent
	} else {
		raw, err := sonic.Marshal(form)
		if err != nil {
			return nil, fmt.Errorf("encode envelope payload: %w", err)
		}

		codec, err := compress.GetCodec(cfg.compression)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, cfg.compression)
		}
		payload, err = codec.Compress(raw)
		if err != nil {
			return nil, fmt.Errorf("compress envelope payload: %w", err)
		}
	}

	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, headerSize+len(payload))
	buf = engine.AppendUint16(buf, MagicNumber)
	buf = append(buf, Version, flags, byte(cfg.compression))
	buf = engine.AppendUint64(buf, schema.ID())
	buf = engine.AppendUint32(buf, uint32(len(payload)))
	buf = append(buf, payload...)

	return buf, nil
}

// Decode verifies the header against the schema and restores the
// compacted collection. The absent marker decodes to a nil form.
func Decode(data []byte, schema *record.Schema) (*compact.Form, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", errs.ErrPayloadTruncated, len(data), headerSize)
	}

	engine := endian.GetLittleEndianEngine()

	if magic := engine.Uint16(data[0:2]); magic != MagicNumber {
		return nil, fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, magic)
	}
	if version := data[2]; version != Version {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	flags := data[3]

	compression := format.CompressionType(data[4])
	if !compression.Valid() {
		return nil, fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, data[4])
	}

	if id := engine.Uint64(data[5:13]); id != schema.ID() {
		return nil, fmt.Errorf("%w: envelope 0x%016X, schema %q 0x%016X",
			errs.ErrSchemaMismatch, id, schema.Name(), schema.ID())
	}

	payloadLen := int(engine.Uint32(data[13:17]))
	if len(data)-headerSize != payloadLen {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, found %d",
			errs.ErrPayloadTruncated, payloadLen, len(data)-headerSize)
	}

	if flags&flagAbsent != 0 {
		return nil, nil
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compression)
	}
	raw, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress envelope payload: %w", err)
	}

	var form compact.Form
	if err := sonic.Unmarshal(raw, &form); err != nil {
		return nil, fmt.Errorf("decode envelope payload: %w", err)
	}

	return &form, nil
}
