package spectrum

import (
	"bytes"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/galspc/encoding"
	"github.com/arloliu/galspc/format"
	"github.com/arloliu/galspc/internal/logging"
	"github.com/arloliu/galspc/internal/options"
	"github.com/arloliu/galspc/section"
)

// Decoder turns SPC byte buffers into Documents.
//
// A Decoder holds only configuration and may be shared between goroutines.
type Decoder struct {
	logf logging.Func
}

// DecoderOption represents a functional option for configuring a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithDecoderLogger sets the logger used for decode diagnostics. A nil logger falls back
// to the package logger.
func WithDecoderLogger(logf logging.Func) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.logf = logf
	})
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}
	d.logf = logging.Or(d.logf)

	return d, nil
}

// Decode parses a complete single-subfile SPC file.
//
// The input is copied before interpretation; the caller may reuse data afterwards. Version
// bytes other than 0x4B, 0x4C and the old-format 0x4D are read as little-endian.
//
// Returns:
//   - Document: Decoded spectrum retaining a copy of data
//   - error: errs.ErrMalformedHeader, errs.ErrUnsupportedVersion (old format only),
//     errs.ErrUnsupportedSubfile or errs.ErrPointCountMismatch
func (d *Decoder) Decode(data []byte) (Document, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return Document{}, err
	}

	source := bytes.Clone(data)

	layout, sub, err := section.ResolveLayout(header, source)
	if err != nil {
		return Document{}, err
	}

	x := decodeX(header, layout, source)

	codec, err := encoding.NewSampleCodec(layout.Y, layout.Exponent, header.Engine())
	if err != nil {
		return Document{}, err
	}
	y := encoding.DecodeSlice(codec, source[layout.YOffset:layout.YEnd], layout.PointCount)

	if !header.IsStandardVersion() {
		d.logf("galspc: non-standard version byte 0x%02X, reading as little-endian", header.Version)
	}
	if !header.Experiment.IsKnown() {
		d.logf("galspc: unknown experiment type %d, unit detection will use range rules only", header.Experiment)
	}
	d.logf("galspc: decoded %s spectrum, %d points, x %s, y %s, exponent %d, %d trailer bytes",
		header.Experiment, layout.PointCount, layout.X, layout.Y, layout.Exponent, len(source)-layout.YEnd)

	return Document{
		header: header,
		sub:    sub,
		layout: layout,
		source: source,
		origY:  y,
		x:      x,
		y:      y,
	}, nil
}

func decodeX(h section.Header, layout section.Layout, src []byte) []float64 {
	n := layout.PointCount

	switch {
	case layout.X == format.XExplicit:
		codec := encoding.NewFloat32Codec(h.Engine())
		return encoding.DecodeSlice(codec, src[layout.XOffset:], n)
	case n == 0:
		return []float64{}
	case n == 1:
		return []float64{h.FirstX}
	default:
		return floats.Span(make([]float64, n), h.FirstX, h.LastX)
	}
}

// Decode parses data with a default Decoder.
func Decode(data []byte) (Document, error) {
	d, err := NewDecoder()
	if err != nil {
		return Document{}, err
	}

	return d.Decode(data)
}
