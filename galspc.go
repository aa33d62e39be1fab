// Package galspc reads, thresholds and rewrites Galactic SPC spectral files while keeping
// every byte the transform does not need to change.
//
// # Core Features
//
//   - Decoding of single-subfile new-format SPC files in either byte order
//   - Float32, 32-bit and 16-bit fixed-point y encodings, explicit or evenly spaced x
//   - X-axis unit detection from experiment type and x range
//   - Clamp-to-zero thresholding of y values
//   - Header-preserving re-encoding, byte-identical when nothing changed
//
// # Basic Usage
//
// Loading a file and inspecting it:
//
//	doc, err := galspc.Load(data)
//	if err != nil {
//	    return err
//	}
//	unit, _ := doc.DetectedUnit()
//	fmt.Println(unit, doc.XValues(), doc.YValues())
//
// Thresholding and saving:
//
//	res, err := galspc.Process(data, 0)
//	if err != nil {
//	    return err
//	}
//	if res.Encoded.Warning != nil {
//	    log.Printf("header changed: %s", res.Encoded.Warning)
//	}
//	_, err = st.WriteAtomic("clamped.spc", res.Encoded.Data)
//
// # Package Structure
//
// This package wraps the spectrum, units and threshold packages for the common flow.
// The section and encoding packages expose the on-disk layout; snapshot and store
// support moving files between clients and disk.
package galspc

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/galspc/format"
	"github.com/arloliu/galspc/spectrum"
	"github.com/arloliu/galspc/threshold"
	"github.com/arloliu/galspc/units"
)

// Load decodes data and attaches the detected x-axis unit.
func Load(data []byte, opts ...spectrum.DecoderOption) (spectrum.Document, error) {
	d, err := spectrum.NewDecoder(opts...)
	if err != nil {
		return spectrum.Document{}, err
	}

	doc, err := d.Decode(data)
	if err != nil {
		return spectrum.Document{}, err
	}

	return doc.WithUnit(DetectUnit(doc)), nil
}

// DetectUnit returns the x-axis unit of doc.
func DetectUnit(doc spectrum.Document) format.Unit {
	return units.DetectUnit(doc.Header().Experiment, doc.XValues())
}

// Threshold returns a new Document whose y values below t are clamped to zero.
//
// Returns errs.ErrInvalidThreshold if t is NaN or +Inf; -Inf leaves every sample as is.
func Threshold(doc spectrum.Document, t float64) (spectrum.Document, error) {
	y, err := threshold.Apply(doc.YValues(), t)
	if err != nil {
		return spectrum.Document{}, err
	}

	return doc.WithYValues(y)
}

// Encode serializes doc.
func Encode(doc spectrum.Document, opts ...spectrum.EncoderOption) (spectrum.Encoded, error) {
	e, err := spectrum.NewEncoder(opts...)
	if err != nil {
		return spectrum.Encoded{}, err
	}

	return e.Encode(doc)
}

// Result is the outcome of processing one file.
type Result struct {
	Name     string
	Document spectrum.Document // thresholded document
	Encoded  spectrum.Encoded
	Clamped  int // number of samples set to zero
	Err      error
}

// Process loads data, applies the threshold and encodes the result.
func Process(data []byte, t float64, opts ...spectrum.EncoderOption) (Result, error) {
	if err := threshold.Validate(t); err != nil {
		return Result{}, err
	}

	doc, err := Load(data)
	if err != nil {
		return Result{}, err
	}

	clamped := threshold.Clamped(doc.YValues(), t)

	doc, err = Threshold(doc, t)
	if err != nil {
		return Result{}, err
	}

	enc, err := Encode(doc, opts...)
	if err != nil {
		return Result{}, err
	}

	return Result{Document: doc, Encoded: enc, Clamped: clamped}, nil
}

// File is one named input of ProcessBatch.
type File struct {
	Name string
	Data []byte
}

// ProcessBatch processes files concurrently with the same threshold. Results are returned
// in input order; a failing file records its error in its own Result and does not stop
// the others. Cancelling ctx marks files not yet started with ctx.Err().
func ProcessBatch(ctx context.Context, files []File, t float64, opts ...spectrum.EncoderOption) []Result {
	results := make([]Result, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Name: f.Name, Err: err}
				return nil
			}

			res, err := Process(f.Data, t, opts...)
			res.Name, res.Err = f.Name, err
			results[i] = res

			return nil
		})
	}
	_ = g.Wait()

	return results
}
