package section

import (
	"fmt"
	"math"

	"github.com/arloliu/galspc/endian"
	"github.com/arloliu/galspc/errs"
)

// Subheader is the typed view of the 32-byte header that precedes each subfile's y data.
type Subheader struct {
	Flags      uint8   // byte offset 0
	Exponent   int8    // byte offset 1
	Index      uint16  // byte offset 2-3
	Time       float32 // byte offset 4-7
	NextTime   float32 // byte offset 8-11
	Noise      float32 // byte offset 12-15
	PointCount uint32  // byte offset 16-19, only meaningful for XYXY files
	Scans      uint32  // byte offset 20-23
	WLevel     float32 // byte offset 24-27
}

// Parse parses the subheader from a byte slice using the file's byte order.
func (s *Subheader) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != SubheaderSize {
		return fmt.Errorf("%w: subheader is %d bytes, want %d", errs.ErrMalformedHeader, len(data), SubheaderSize)
	}

	s.Flags = data[SubOffsetFlags]
	s.Exponent = int8(data[SubOffsetExponent])
	s.Index = engine.Uint16(data[SubOffsetIndex:])
	s.Time = math.Float32frombits(engine.Uint32(data[SubOffsetTime:]))
	s.NextTime = math.Float32frombits(engine.Uint32(data[SubOffsetNextTime:]))
	s.Noise = math.Float32frombits(engine.Uint32(data[SubOffsetNoise:]))
	s.PointCount = engine.Uint32(data[SubOffsetPointCount:])
	s.Scans = engine.Uint32(data[SubOffsetScans:])
	s.WLevel = math.Float32frombits(engine.Uint32(data[SubOffsetWLevel:]))

	return nil
}
