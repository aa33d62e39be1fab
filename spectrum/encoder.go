package spectrum

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/galspc/encoding"
	"github.com/arloliu/galspc/errs"
	"github.com/arloliu/galspc/format"
	"github.com/arloliu/galspc/internal/logging"
	"github.com/arloliu/galspc/internal/options"
	"github.com/arloliu/galspc/section"
)

// Encoded is the result of encoding a Document.
type Encoded struct {
	Data []byte

	// Warning is set when header bytes had to change to store the y values. It is nil
	// when every byte outside the changed samples matches the source.
	Warning *PreservationWarning
}

// PreservationWarning reports a fixed-point y block that was converted to float32 because
// a new value could not be stored at the original exponent.
type PreservationWarning struct {
	From    format.YLayout
	To      format.YLayout
	Index   int     // first sample that did not fit
	Value   float64 // its value
	Changes []section.FieldChange
}

func (w *PreservationWarning) String() string {
	parts := make([]string, 0, len(w.Changes))
	for _, c := range w.Changes {
		parts = append(parts, c.String())
	}

	return fmt.Sprintf("y block converted from %s to %s (sample %d = %g not representable); header changes: %s",
		w.From, w.To, w.Index, w.Value, strings.Join(parts, ", "))
}

// Encoder writes Documents back to SPC bytes, reproducing every byte of the source that
// the new y values do not require to change.
//
// An Encoder holds only configuration and may be shared between goroutines.
type Encoder struct {
	logf   logging.Func
	strict bool
}

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithEncoderLogger sets the logger used for encode diagnostics and preservation warnings.
func WithEncoderLogger(logf logging.Func) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.logf = logf
	})
}

// WithStrictPreservation makes Encode fail with errs.ErrPreservationRequired instead of
// converting a fixed-point y block to float32.
func WithStrictPreservation(strict bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.strict = strict
	})
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}
	e.logf = logging.Or(e.logf)

	return e, nil
}

// Encode serializes doc.
//
// The output starts as a copy of the retained source. Unchanged y values return that copy
// as is. Changed samples are patched in place when the source encoding can hold them
// exactly; otherwise a fixed-point block is rewritten as float32 and the affected header
// fields are reported in Encoded.Warning.
//
// Returns:
//   - Encoded: Output bytes and an optional preservation warning
//   - error: errs.ErrEmptyDocument, or errs.ErrPreservationRequired in strict mode
func (e *Encoder) Encode(doc Document) (Encoded, error) {
	if doc.IsEmpty() {
		return Encoded{}, errs.ErrEmptyDocument
	}

	out := bytes.Clone(doc.source)
	if !doc.Modified() {
		return Encoded{Data: out}, nil
	}

	layout := doc.layout
	engine := doc.header.Engine()

	codec, err := encoding.NewSampleCodec(layout.Y, layout.Exponent, engine)
	if err != nil {
		return Encoded{}, err
	}

	idx := encoding.Representable(codec, doc.y)
	if idx < 0 {
		patched := patchSamples(codec, out[layout.YOffset:layout.YEnd], doc.origY, doc.y)
		e.logf("galspc: patched %d of %d %s samples in place", patched, layout.PointCount, layout.Y)

		return Encoded{Data: out}, nil
	}

	if e.strict {
		return Encoded{}, fmt.Errorf("%w: sample %d = %g does not fit %s at exponent %d",
			errs.ErrPreservationRequired, idx, doc.y[idx], layout.Y, layout.Exponent)
	}

	data, warning := convertToFloat(doc, idx)
	e.logf("galspc: %s", warning)

	return Encoded{Data: data, Warning: warning}, nil
}

// patchSamples writes the values of y that differ from orig into block.
func patchSamples(codec encoding.SampleCodec, block []byte, orig, y []float64) int {
	w := codec.Width()
	n := 0
	for i, v := range y {
		if math.Float64bits(v) == math.Float64bits(orig[i]) {
			continue
		}
		// Representable has already accepted every value.
		_ = codec.Put(block[i*w:], v)
		n++
	}

	return n
}

// convertToFloat rebuilds the source with its y block stored as float32 samples. The header
// and subheader bytes, x array and trailer are carried over; only fexp, subexp (when the
// file has a subheader), TSPREC and flogoff change, and only when they have to.
func convertToFloat(doc Document, idx int) ([]byte, *PreservationWarning) {
	src := doc.source
	from := doc.layout
	to := from.AsFloat32()
	engine := doc.header.Engine()
	delta := to.YEnd - from.YEnd

	out := make([]byte, 0, len(src)+delta)
	out = append(out, src[:from.YOffset]...)
	f32 := encoding.NewFloat32Codec(engine)
	for _, v := range doc.y {
		out = f32.Append(out, v)
	}
	out = append(out, src[from.YEnd:]...)

	warning := &PreservationWarning{
		From:  from.Y,
		To:    to.Y,
		Index: idx,
		Value: doc.y[idx],
	}
	record := func(c section.FieldChange, changed bool) {
		if changed {
			warning.Changes = append(warning.Changes, c)
		}
	}

	record(section.PatchExponent(out, section.FloatExponent))
	if from.HasSubheader {
		record(section.PatchSubExponent(out, from.SubheaderOffset, section.FloatExponent))
	}
	if doc.header.Flags.IsShortY() {
		record(section.PatchFlags(out, doc.header.Flags.WithoutShortY()))
	}
	if logOff := int(doc.header.LogOffset); logOff != 0 && logOff >= from.YEnd && delta != 0 {
		record(section.PatchLogOffset(out, engine, uint32(logOff+delta)))
	}

	return out, warning
}

// Encode serializes doc with a default Encoder.
func Encode(doc Document) (Encoded, error) {
	e, err := NewEncoder()
	if err != nil {
		return Encoded{}, err
	}

	return e.Encode(doc)
}
