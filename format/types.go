package format

type (
	MethodType      uint8
	CompressionType uint8
)

const (
	MethodLTTB MethodType = 0x1 // MethodLTTB is the static near-equal bucket variant.
	MethodLTD  MethodType = 0x2 // MethodLTD is the dynamically refined bucket variant.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m MethodType) String() string {
	switch m {
	case MethodLTTB:
		return "LTTB"
	case MethodLTD:
		return "LTD"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
