// Package encoding provides the sample codecs for SPC x and y arrays.
//
// An SPC file stores its y block in one of three encodings, selected by the header's
// exponent byte and the TSPREC flag:
//
//   - Float32Codec: IEEE 754 single precision (exponent byte 0x80)
//   - FixedCodec, 32-bit: int32 × 2^(exp-32)
//   - FixedCodec, 16-bit: int16 × 2^(exp-16) (TSPREC set)
//
// Explicit x arrays are always float32.
//
// All codecs implement SampleCodec, which works on caller-provided byte slices so the
// spectrum encoder can patch samples in place inside a copy of the source file:
//
//	codec, err := encoding.NewSampleCodec(layout.Y, layout.Exponent, header.Engine())
//	if err != nil {
//	    return err
//	}
//	y := encoding.DecodeSlice(codec, data[layout.YOffset:layout.YEnd], layout.PointCount)
//
// Fixed-point codecs refuse values that cannot be stored exactly. Representable checks a
// whole slice up front so a writer can decide between patching in place and converting
// the block to float32.
package encoding
