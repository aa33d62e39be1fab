package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/galspc/endian"
	"github.com/arloliu/galspc/format"
)

// SampleCodec reads and writes fixed-width numeric samples of one SPC y layout.
//
// Implementations are stateless values; a codec may be shared between goroutines.
type SampleCodec interface {
	// Layout returns the y layout handled by the codec.
	Layout() format.YLayout

	// Width returns the size of one sample in bytes.
	Width() int

	// At decodes the i-th sample of src.
	At(src []byte, i int) float64

	// Put encodes v into dst[:Width()].
	//
	// Returns errs.ErrValueNotRepresentable if v cannot be stored without loss.
	// Float32 codecs never fail; they round to the nearest single-precision value.
	Put(dst []byte, v float64) error
}

// NewSampleCodec returns the codec for a y layout.
//
// Parameters:
//   - layout: Y layout resolved from the header
//   - exponent: Effective y exponent (ignored for YFloat32)
//   - engine: Byte order of the file
//
// Returns:
//   - SampleCodec: Codec for the layout
//   - error: If the layout is unknown
func NewSampleCodec(layout format.YLayout, exponent int8, engine endian.EndianEngine) (SampleCodec, error) {
	switch layout {
	case format.YFloat32:
		return NewFloat32Codec(engine), nil
	case format.YFixed32:
		return NewFixed32Codec(exponent, engine), nil
	case format.YFixed16:
		return NewFixed16Codec(exponent, engine), nil
	default:
		return nil, fmt.Errorf("unknown y layout: %s", layout)
	}
}

// All returns an iterator over the first count samples of src.
//
// The caller must ensure len(src) >= count*codec.Width().
func All(codec SampleCodec, src []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range count {
			if !yield(codec.At(src, i)) {
				return
			}
		}
	}
}

// DecodeSlice decodes count samples of src into a new slice.
func DecodeSlice(codec SampleCodec, src []byte, count int) []float64 {
	out := make([]float64, 0, count)
	for v := range All(codec, src, count) {
		out = append(out, v)
	}

	return out
}

// Representable reports whether every value can be written by codec without loss.
//
// Returns the index of the first offending value, or -1.
func Representable(codec SampleCodec, values []float64) int {
	var scratch [8]byte
	for i, v := range values {
		if err := codec.Put(scratch[:codec.Width()], v); err != nil {
			return i
		}
	}

	return -1
}
