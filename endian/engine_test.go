package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Equal(t, binary.ByteOrder(binary.LittleEndian), binary.ByteOrder(engine))

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, buf)
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, buf)
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestEngines_AppendReadRoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, 0x1122334455667788)
		buf = engine.AppendUint32(buf, 0xAABBCCDD)

		require.Equal(t, uint64(0x1122334455667788), engine.Uint64(buf[:8]))
		require.Equal(t, uint32(0xAABBCCDD), engine.Uint32(buf[8:]))
	}
}
