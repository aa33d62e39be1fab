package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/galspc/endian"
	"github.com/arloliu/galspc/errs"
	"github.com/arloliu/galspc/format"
)

// FixedCodec reads and writes the legacy integer-plus-exponent samples.
//
// A stored integer i represents i × 2^(exponent-bits), where bits is 32 for the
// default layout and 16 when TSPREC is set. Every decoded value is exactly
// representable as a float64, so decode followed by encode of an unchanged value
// reproduces the original integer.
type FixedCodec struct {
	engine   endian.EndianEngine
	exponent int8
	bits     int
}

var _ SampleCodec = FixedCodec{}

// NewFixed32Codec creates a codec for 32-bit fixed-point samples.
func NewFixed32Codec(exponent int8, engine endian.EndianEngine) FixedCodec {
	return FixedCodec{engine: engine, exponent: exponent, bits: 32}
}

// NewFixed16Codec creates a codec for 16-bit fixed-point samples.
func NewFixed16Codec(exponent int8, engine endian.EndianEngine) FixedCodec {
	return FixedCodec{engine: engine, exponent: exponent, bits: 16}
}

func (c FixedCodec) Layout() format.YLayout {
	if c.bits == 16 {
		return format.YFixed16
	}

	return format.YFixed32
}

func (c FixedCodec) Width() int {
	return c.bits / 8
}

// Exponent returns the scaling exponent.
func (c FixedCodec) Exponent() int8 {
	return c.exponent
}

func (c FixedCodec) At(src []byte, i int) float64 {
	var raw float64
	if c.bits == 16 {
		raw = float64(int16(c.engine.Uint16(src[i*2:])))
	} else {
		raw = float64(int32(c.engine.Uint32(src[i*4:])))
	}

	return math.Ldexp(raw, int(c.exponent)-c.bits)
}

func (c FixedCodec) Put(dst []byte, v float64) error {
	scaled := math.Ldexp(v, c.bits-int(c.exponent))
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) || scaled != math.Trunc(scaled) {
		return fmt.Errorf("%w: %g loses precision at exponent %d", errs.ErrValueNotRepresentable, v, c.exponent)
	}

	if c.bits == 16 {
		if scaled < math.MinInt16 || scaled > math.MaxInt16 {
			return fmt.Errorf("%w: %g out of 16-bit range at exponent %d", errs.ErrValueNotRepresentable, v, c.exponent)
		}
		c.engine.PutUint16(dst, uint16(int16(scaled)))

		return nil
	}

	if scaled < math.MinInt32 || scaled > math.MaxInt32 {
		return fmt.Errorf("%w: %g out of 32-bit range at exponent %d", errs.ErrValueNotRepresentable, v, c.exponent)
	}
	c.engine.PutUint32(dst, uint32(int32(scaled)))

	return nil
}
