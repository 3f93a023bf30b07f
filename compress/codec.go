// Package compress provides the compression codecs used for frame
// column payloads.
//
// Payloads are small (a downsampled series rarely exceeds a few
// thousand points, so columns stay in the 1KB-64KB range) and consist
// of raw IEEE-754 float64 columns. Zstd gives the best ratio, S2 the
// best speed, LZ4 sits in between, and NoOp bypasses compression for
// callers that ship frames over already-compressed transports.
package compress

import (
	"fmt"

	"github.com/tsviz/downsample/format"
)

// Compressor compresses a single column payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//     (except NoOpCompressor, which returns the input as-is)
//   - Input slice is not modified
//   - Internal state may be pooled for reuse
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a column payload produced by the matching
// Compressor. It returns an error if the data is corrupted or was
// compressed with an incompatible algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; all implementations in this package
// are stateless values safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
