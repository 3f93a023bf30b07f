package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsviz/downsample/format"
)

// payload mimics a frame column: raw float64 bytes with repetitive
// structure that every codec should shrink.
func testPayload() []byte {
	data := make([]byte, 0, 8*1024)
	for i := 0; i < 1024; i++ {
		data = append(data, byte(i%16), 0, 0, 0, byte(i%4), 0, 0, 0x40)
	}

	return data
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := testPayload()

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodec_CompressesRepetitiveData(t *testing.T) {
	payload := testPayload()

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestNoOp_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.True(t, bytes.Equal(payload, compressed))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(payload, decompressed))
}
