package spectrum

import (
	"bytes"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/galspc/errs"
	"github.com/arloliu/galspc/format"
	"github.com/arloliu/galspc/internal/hash"
	"github.com/arloliu/galspc/section"
)

// Document is an immutable decoded SPC spectrum.
//
// A Document keeps a private copy of the complete source buffer and the y values as they
// were decoded; both are the baseline the Encoder preserves. Derived documents created with
// WithYValues or WithUnit share that baseline and never modify it, so Documents are safe to
// pass between goroutines.
//
// The zero Document is empty: accessors return zero values and encoding it fails with
// errs.ErrEmptyDocument.
type Document struct {
	header section.Header
	sub    section.Subheader
	layout section.Layout

	source []byte    // complete source buffer, never mutated
	origY  []float64 // y as decoded from source, never mutated
	x      []float64
	y      []float64

	unit    format.Unit
	hasUnit bool
}

// IsEmpty reports whether d holds no decoded file.
func (d Document) IsEmpty() bool {
	return d.source == nil
}

// Header returns the typed main header.
func (d Document) Header() section.Header {
	return d.header
}

// Subheader returns the header of the single subfile. The boolean is false for files that
// store y directly after the header or x array.
func (d Document) Subheader() (section.Subheader, bool) {
	return d.sub, d.layout.HasSubheader
}

// Layout returns the data layout resolved at decode time.
func (d Document) Layout() section.Layout {
	return d.layout
}

// RawHeader returns a copy of the 512 main header bytes exactly as they appeared in the source.
func (d Document) RawHeader() []byte {
	if d.IsEmpty() {
		return nil
	}

	return bytes.Clone(d.source[:section.HeaderSize])
}

// Source returns a copy of the complete source buffer.
func (d Document) Source() []byte {
	return bytes.Clone(d.source)
}

// PointCount returns the number of samples.
func (d Document) PointCount() int {
	return len(d.y)
}

// XValues returns a copy of the x axis.
func (d Document) XValues() []float64 {
	return slices.Clone(d.x)
}

// YValues returns a copy of the y values.
func (d Document) YValues() []float64 {
	return slices.Clone(d.y)
}

// DetectedUnit returns the unit attached with WithUnit. The bool result is false until a
// unit has been attached.
func (d Document) DetectedUnit() (format.Unit, bool) {
	return d.unit, d.hasUnit
}

// Fingerprint returns the xxHash64 of the source buffer. Documents derived from the same
// source share a fingerprint.
func (d Document) Fingerprint() uint64 {
	return hash.Fingerprint(d.source)
}

// Modified reports whether the y values differ from the decoded ones, comparing bit
// patterns so a rewritten NaN or a sign change of zero counts as a change.
func (d Document) Modified() bool {
	return !sameBits(d.y, d.origY)
}

// WithYValues returns a new Document carrying y in place of the current y values. The
// header, raw bytes, x axis and unit are shared with d.
//
// Returns errs.ErrPointCountMismatch if len(y) differs from the point count.
func (d Document) WithYValues(y []float64) (Document, error) {
	if len(y) != len(d.origY) {
		return Document{}, fmt.Errorf("%w: got %d y values, document has %d points",
			errs.ErrPointCountMismatch, len(y), len(d.origY))
	}

	out := d
	out.y = slices.Clone(y)

	return out, nil
}

// WithUnit returns a new Document with u attached as its detected unit.
func (d Document) WithUnit(u format.Unit) Document {
	out := d
	out.unit = u
	out.hasUnit = true

	return out
}

func sameBits(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}

	return true
}
