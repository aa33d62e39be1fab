package section

import (
	"fmt"

	"github.com/arloliu/galspc/errs"
	"github.com/arloliu/galspc/format"
)

// Layout is the data layout of a single-subfile SPC file, resolved once from the header
// flags, the exponent and the size of the data region. Readers and writers dispatch on X
// and Y instead of re-testing flag bits at each site.
type Layout struct {
	X          format.XLayout
	Y          format.YLayout
	Exponent   int8 // effective y exponent, FloatExponent for float32 data
	PointCount int

	// HasSubheader reports whether a 32-byte subfile header sits between the x data and
	// the y array. Simple writers put y straight after the header or x array.
	HasSubheader bool

	XOffset         int // start of the x array, 0 when x is synthesized
	SubheaderOffset int // start of the subfile header, -1 when absent
	YOffset         int // start of the y array
	YEnd            int // end of the y array; everything after it is trailer
}

// ResolveLayout derives the layout of data from its parsed header and checks that the
// buffer holds exactly the declared number of samples.
//
// The region between the x data and the log block (or EOF) decides the variant: exactly
// n samples means y follows the x data directly, a 32-byte subheader plus n samples means
// the subheader is parsed and may carry the exponent. Anything else is a count mismatch.
//
// Parameters:
//   - h: Header parsed from data
//   - data: The complete file buffer
//
// Returns:
//   - Layout: Resolved layout with absolute offsets
//   - Subheader: The single subfile's header, zero when HasSubheader is false
//   - error: ErrUnsupportedSubfile, ErrPointCountMismatch or ErrMalformedHeader
func ResolveLayout(h Header, data []byte) (Layout, Subheader, error) {
	if n := h.Subfiles(); n > 1 {
		return Layout{}, Subheader{}, fmt.Errorf("%w: file holds %d subfiles", errs.ErrUnsupportedSubfile, n)
	}

	if h.Flags.HasXYXYs() {
		return Layout{}, Subheader{}, fmt.Errorf("%w: per-subfile x arrays (TXYXYS)", errs.ErrUnsupportedSubfile)
	}

	size := int64(len(data))
	count := int64(h.PointCount)
	pos := int64(HeaderSize)

	layout := Layout{
		X:               h.Flags.XLayout(),
		PointCount:      int(h.PointCount),
		SubheaderOffset: -1,
	}

	if layout.X == format.XExplicit {
		xEnd := pos + count*XSampleSize
		if xEnd > size {
			return Layout{}, Subheader{}, fmt.Errorf("%w: x array of %d points needs %d bytes, %d available",
				errs.ErrPointCountMismatch, count, xEnd-pos, size-pos)
		}
		layout.XOffset = int(pos)
		pos = xEnd
	}

	dataEnd := size
	if logOff := int64(h.LogOffset); logOff != 0 && logOff >= pos && logOff <= size {
		dataEnd = logOff
	}
	region := dataEnd - pos

	bareExp := effectiveExponent(h, nil)
	bare := h.Flags.YLayout(bareExp)
	bareWidth := int64(bare.SampleWidth())

	recoverable := region / bareWidth
	if recoverable == count {
		layout.Exponent = bareExp
		layout.Y = bare
		layout.YOffset = int(pos)
		layout.YEnd = int(pos + count*bareWidth)

		return layout, Subheader{}, nil
	}

	if region < SubheaderSize {
		return Layout{}, Subheader{}, mismatch(count, recoverable)
	}

	var sub Subheader
	if err := sub.Parse(data[pos:pos+SubheaderSize], h.Engine()); err != nil {
		return Layout{}, Subheader{}, err
	}

	layout.HasSubheader = true
	layout.SubheaderOffset = int(pos)
	layout.YOffset = int(pos + SubheaderSize)
	layout.Exponent = effectiveExponent(h, &sub)
	layout.Y = h.Flags.YLayout(layout.Exponent)

	width := int64(layout.Y.SampleWidth())
	if recoverable = (region - SubheaderSize) / width; recoverable != count {
		return Layout{}, Subheader{}, mismatch(count, recoverable)
	}

	layout.YEnd = layout.YOffset + int(count*width)

	return layout, sub, nil
}

func mismatch(declared, recoverable int64) error {
	return fmt.Errorf("%w: header declares %d points, data region holds %d",
		errs.ErrPointCountMismatch, declared, recoverable)
}

// effectiveExponent returns the exponent governing the y block. A float marker in the main
// header applies to every subfile; otherwise multifile writers store it per subfile. A file
// without a subheader uses the main header exponent.
func effectiveExponent(h Header, sub *Subheader) int8 {
	if h.Exponent == FloatExponent {
		return FloatExponent
	}

	if sub != nil && h.Flags.IsMultiFile() {
		return sub.Exponent
	}

	return h.Exponent
}

// YWidth returns the size of one y sample in bytes.
func (l Layout) YWidth() int {
	return l.Y.SampleWidth()
}

// YSize returns the size of the y block in bytes.
func (l Layout) YSize() int {
	return l.YEnd - l.YOffset
}

// AsFloat32 returns the layout the same file would have if its y block were rewritten as
// IEEE float32 samples at the same offset.
func (l Layout) AsFloat32() Layout {
	out := l
	out.Y = format.YFloat32
	out.Exponent = FloatExponent
	out.YEnd = l.YOffset + l.PointCount*out.Y.SampleWidth()

	return out
}
