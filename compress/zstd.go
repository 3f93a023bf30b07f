package compress

// ZstdCompressor provides Zstandard compression for frame column
// payloads. It favors compression ratio over speed, which suits frames
// headed for storage or constrained links.
//
// Two implementations exist behind build tags: cgo builds use the
// native gozstd bindings, pure-Go builds use klauspost/compress/zstd.
// Both produce standard Zstd streams and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
