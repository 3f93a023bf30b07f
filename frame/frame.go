// Package frame serializes a downsampled series into a compact,
// self-describing binary frame for handoff to rendering or transport
// layers.
//
// Frame layout (header fields little-endian):
//
//	offset  size  field
//	0       4     magic "LTTF"
//	4       1     version (currently 1)
//	5       1     method (format.MethodType)
//	6       1     compression (format.CompressionType)
//	7       1     flags (bit 0: payload floats are big-endian)
//	8       4     point count
//	12      8     xxHash64 of the series name
//	20      8     xxHash64 checksum of the raw x||y column bytes
//	28      ...   length-prefixed x payload, length-prefixed y payload
//
// Payloads are columnar IEEE-754 float64 values, each column compressed
// independently with the configured codec. The checksum covers the
// uncompressed column bytes, so corruption is detected after
// decompression regardless of codec.
package frame

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/tsviz/downsample/compress"
	"github.com/tsviz/downsample/errs"
	"github.com/tsviz/downsample/format"
	"github.com/tsviz/downsample/internal/options"
	"github.com/tsviz/downsample/internal/pool"
	"github.com/tsviz/downsample/series"
)

const (
	frameMagic   uint32 = 0x4654544C // "LTTF" in little-endian byte order
	frameVersion byte   = 1

	flagBigEndian byte = 0x01

	headerSize = 28
)

// byteOrder combines the read and append interfaces of encoding/binary;
// binary.LittleEndian and binary.BigEndian satisfy both.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// NameID computes the xxHash64 identity of a series name, as stored in
// the frame header.
func NameID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Encoder encodes downsampled series into frames. The zero-value
// configuration (little-endian, no compression) is obtained from
// NewEncoder without options. An Encoder is stateless and safe for
// concurrent use.
type Encoder struct {
	compression format.CompressionType
	bigEndian   bool
}

// Option configures an Encoder.
type Option = options.Option[*Encoder]

// WithCompression selects the payload compression codec.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(e *Encoder) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		e.compression = compression

		return nil
	})
}

// WithLittleEndian stores payload floats in little-endian order (default).
func WithLittleEndian() Option {
	return options.NoError(func(e *Encoder) { e.bigEndian = false })
}

// WithBigEndian stores payload floats in big-endian order.
func WithBigEndian() Option {
	return options.NoError(func(e *Encoder) { e.bigEndian = true })
}

// NewEncoder creates a frame encoder.
//
// Example:
//
//	encoder, err := frame.NewEncoder(
//	    frame.WithCompression(format.CompressionZstd),
//	)
func NewEncoder(opts ...Option) (*Encoder, error) {
	e := &Encoder{compression: format.CompressionNone}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Encoder) order() byteOrder {
	if e.bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Encode produces a frame holding the given series.
//
// Parameters:
//   - name: Series name; only its xxHash64 is stored
//   - method: The variant that produced the points, recorded for readers
//   - pts: The downsampled series
//
// Returns:
//   - []byte: The encoded frame, newly allocated and owned by the caller
//   - error: Compression error if any
func (e *Encoder) Encode(name string, method format.MethodType, pts series.Series) ([]byte, error) {
	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, err
	}

	order := e.order()

	rawX, releaseX := pool.GetByteSlice(len(pts) * 8)
	defer releaseX()
	rawY, releaseY := pool.GetByteSlice(len(pts) * 8)
	defer releaseY()

	for _, p := range pts {
		rawX = order.AppendUint64(rawX, math.Float64bits(p.X))
		rawY = order.AppendUint64(rawY, math.Float64bits(p.Y))
	}

	digest := xxhash.New()
	_, _ = digest.Write(rawX)
	_, _ = digest.Write(rawY)
	checksum := digest.Sum64()

	payloadX, err := codec.Compress(rawX)
	if err != nil {
		return nil, fmt.Errorf("compress x payload: %w", err)
	}
	payloadY, err := codec.Compress(rawY)
	if err != nil {
		return nil, fmt.Errorf("compress y payload: %w", err)
	}

	var flags byte
	if e.bigEndian {
		flags |= flagBigEndian
	}

	out := make([]byte, 0, headerSize+8+len(payloadX)+len(payloadY))
	out = binary.LittleEndian.AppendUint32(out, frameMagic)
	out = append(out, frameVersion, byte(method), byte(e.compression), flags)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(pts)))
	out = binary.LittleEndian.AppendUint64(out, NameID(name))
	out = binary.LittleEndian.AppendUint64(out, checksum)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payloadX)))
	out = append(out, payloadX...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payloadY)))
	out = append(out, payloadY...)

	return out, nil
}

// Frame is a decoded frame.
type Frame struct {
	// NameID is the xxHash64 of the series name.
	NameID uint64
	// Method is the downsampling variant recorded by the producer.
	Method format.MethodType
	// Compression is the payload codec the frame was encoded with.
	Compression format.CompressionType
	// Points is the decoded series.
	Points series.Series
}

// Decode parses and verifies a frame.
//
// Returns:
//   - *Frame: The decoded frame
//   - error: errs.ErrFrameTooSmall, errs.ErrInvalidMagic,
//     errs.ErrUnsupportedVersion, errs.ErrPayloadTruncated,
//     errs.ErrChecksumMismatch, or a codec error
func Decode(data []byte) (*Frame, error) {
	if len(data) < headerSize {
		return nil, errs.ErrFrameTooSmall
	}
	if binary.LittleEndian.Uint32(data[0:4]) != frameMagic {
		return nil, errs.ErrInvalidMagic
	}
	if data[4] != frameVersion {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[4])
	}

	method := format.MethodType(data[5])
	compression := format.CompressionType(data[6])
	flags := data[7]
	count := int(binary.LittleEndian.Uint32(data[8:12]))
	nameID := binary.LittleEndian.Uint64(data[12:20])
	checksum := binary.LittleEndian.Uint64(data[20:28])

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	payloadX, off, err := readPayload(data, headerSize)
	if err != nil {
		return nil, err
	}
	payloadY, _, err := readPayload(data, off)
	if err != nil {
		return nil, err
	}

	rawX, err := codec.Decompress(payloadX)
	if err != nil {
		return nil, fmt.Errorf("decompress x payload: %w", err)
	}
	rawY, err := codec.Decompress(payloadY)
	if err != nil {
		return nil, fmt.Errorf("decompress y payload: %w", err)
	}

	if len(rawX) != count*8 || len(rawY) != count*8 {
		return nil, errs.ErrPayloadTruncated
	}

	digest := xxhash.New()
	_, _ = digest.Write(rawX)
	_, _ = digest.Write(rawY)
	if digest.Sum64() != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	var order byteOrder = binary.LittleEndian
	if flags&flagBigEndian != 0 {
		order = binary.BigEndian
	}

	pts := make(series.Series, count)
	for i := range pts {
		pts[i] = series.Point{
			X: math.Float64frombits(order.Uint64(rawX[i*8:])),
			Y: math.Float64frombits(order.Uint64(rawY[i*8:])),
		}
	}

	return &Frame{
		NameID:      nameID,
		Method:      method,
		Compression: compression,
		Points:      pts,
	}, nil
}

// readPayload reads one length-prefixed payload starting at off and
// returns the payload along with the offset past it.
func readPayload(data []byte, off int) ([]byte, int, error) {
	if len(data) < off+4 {
		return nil, 0, errs.ErrPayloadTruncated
	}
	length := int(binary.LittleEndian.Uint32(data[off : off+4]))
	off += 4
	if len(data) < off+length {
		return nil, 0, errs.ErrPayloadTruncated
	}

	return data[off : off+length], off + length, nil
}
