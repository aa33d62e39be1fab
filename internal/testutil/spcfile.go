// Package testutil builds SPC byte buffers for tests.
package testutil

import (
	"encoding/binary"
	"math"
)

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// SPCFile describes a synthetic single-subfile SPC file.
//
// Zero values produce a little-endian float32 file with evenly spaced x. Opaque header
// areas are filled with a recognizable pattern so tests can assert they survive.
type SPCFile struct {
	BigEndian   bool
	Version     byte // overrides the version byte when non-zero
	Flags       byte
	Experiment  byte
	Exponent    int8 // -128 for float32 y
	SubExponent int8
	FirstX      float64
	LastX       float64
	Subfiles    uint32

	X []float32 // written when Flags has TXVALS
	Y []float64 // encoded according to Exponent and TSPREC

	// DeclaredPoints replaces the point count written to the header when
	// OverridePoints is set.
	DeclaredPoints uint32
	OverridePoints bool

	// NoSubheader writes y straight after the header or x array, the way simple
	// single-spectrum writers lay files out.
	NoSubheader bool

	Log      []byte // log block appended after y, flogoff points at it
	Trailing []byte // appended after everything without being referenced
}

// FloatFile returns a float32 file with evenly spaced x from first to last.
func FloatFile(experiment byte, first, last float64, y []float64) SPCFile {
	return SPCFile{
		Experiment:  experiment,
		Exponent:    -128,
		SubExponent: -128,
		FirstX:      first,
		LastX:       last,
		Subfiles:    1,
		Y:           y,
	}
}

// Bytes serializes the file.
func (f SPCFile) Bytes() []byte {
	var order byteOrder = binary.LittleEndian
	version := byte(0x4B)
	if f.BigEndian {
		order = binary.BigEndian
		version = 0x4C
	}
	if f.Version != 0 {
		version = f.Version
	}

	points := uint32(len(f.Y))
	if f.OverridePoints {
		points = f.DeclaredPoints
	}

	header := make([]byte, 512)
	for i := 32; i < 512; i++ {
		header[i] = byte(i * 7)
	}
	header[0] = f.Flags
	header[1] = version
	header[2] = f.Experiment
	header[3] = byte(f.Exponent)
	order.PutUint32(header[4:], points)
	order.PutUint64(header[8:], math.Float64bits(f.FirstX))
	order.PutUint64(header[16:], math.Float64bits(f.LastX))
	order.PutUint32(header[24:], f.Subfiles)
	header[28], header[29], header[30], header[31] = 1, 2, 0, 0
	order.PutUint32(header[248:], 0)

	buf := header
	if f.Flags&0x80 != 0 {
		for _, x := range f.X {
			buf = order.AppendUint32(buf, math.Float32bits(x))
		}
	}

	if !f.NoSubheader {
		sub := make([]byte, 32)
		sub[1] = byte(f.SubExponent)
		order.PutUint32(sub[16:], 0)
		order.PutUint32(sub[20:], 16)
		buf = append(buf, sub...)
	}

	buf = f.appendY(buf, order)

	if len(f.Log) > 0 {
		order.PutUint32(buf[248:], uint32(len(buf)))
		buf = append(buf, f.Log...)
	}

	return append(buf, f.Trailing...)
}

func (f SPCFile) appendY(buf []byte, order byteOrder) []byte {
	exp := f.Exponent
	if f.Flags&0x04 != 0 && exp != -128 && !f.NoSubheader {
		exp = f.SubExponent
	}

	for _, y := range f.Y {
		switch {
		case exp == -128:
			buf = order.AppendUint32(buf, math.Float32bits(float32(y)))
		case f.Flags&0x01 != 0:
			v := int16(math.Round(math.Ldexp(y, 16-int(exp))))
			buf = order.AppendUint16(buf, uint16(v))
		default:
			v := int32(math.Round(math.Ldexp(y, 32-int(exp))))
			buf = order.AppendUint32(buf, uint32(v))
		}
	}

	return buf
}
