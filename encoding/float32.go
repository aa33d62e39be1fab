package encoding

import (
	"math"

	"github.com/arloliu/galspc/endian"
	"github.com/arloliu/galspc/format"
)

// Float32Codec reads and writes IEEE 754 single-precision samples.
//
// Decoding widens to float64, which is exact; encoding narrows with round-to-nearest,
// so any value that came from a float32 sample is written back bit for bit.
type Float32Codec struct {
	engine endian.EndianEngine
}

var _ SampleCodec = Float32Codec{}

// NewFloat32Codec creates a float32 codec for the given byte order.
func NewFloat32Codec(engine endian.EndianEngine) Float32Codec {
	return Float32Codec{engine: engine}
}

func (c Float32Codec) Layout() format.YLayout {
	return format.YFloat32
}

func (c Float32Codec) Width() int {
	return 4
}

func (c Float32Codec) At(src []byte, i int) float64 {
	return float64(math.Float32frombits(c.engine.Uint32(src[i*4:])))
}

func (c Float32Codec) Put(dst []byte, v float64) error {
	c.engine.PutUint32(dst, math.Float32bits(float32(v)))

	return nil
}

// Append appends v as a float32 sample to dst.
func (c Float32Codec) Append(dst []byte, v float64) []byte {
	return c.engine.AppendUint32(dst, math.Float32bits(float32(v)))
}
