package section

import (
	"fmt"
	"math"

	"github.com/arloliu/galspc/endian"
	"github.com/arloliu/galspc/errs"
	"github.com/arloliu/galspc/format"
)

// Header is the typed view of the fixed 512-byte SPC main header.
//
// Only the fields that drive the data layout or unit detection are decoded; the
// date, resolution/source text, comment, method and reserved areas stay opaque and are
// carried by the raw header bytes.
type Header struct {
	Flags        Flags                 // byte offset 0
	Version      byte                  // byte offset 1
	Experiment   format.ExperimentType // byte offset 2
	Exponent     int8                  // byte offset 3
	PointCount   uint32                // byte offset 4-7
	FirstX       float64               // byte offset 8-15
	LastX        float64               // byte offset 16-23
	SubfileCount uint32                // byte offset 24-27
	XType        uint8                 // byte offset 28
	YType        uint8                 // byte offset 29
	ZType        uint8                 // byte offset 30
	LogOffset    uint32                // byte offset 248-251

	engine endian.EndianEngine
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrMalformedHeader if data is not HeaderSize bytes, ErrUnsupportedVersion
//     if the version byte marks the old format
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", errs.ErrMalformedHeader, len(data), HeaderSize)
	}

	engine, ok := endian.ForVersion(data[OffsetVersion])
	if !ok {
		return fmt.Errorf("%w: old format version byte 0x%02X", errs.ErrUnsupportedVersion, data[OffsetVersion])
	}

	h.engine = engine
	h.Flags = Flags(data[OffsetFlags])
	h.Version = data[OffsetVersion]
	h.Experiment = format.ExperimentType(data[OffsetExperiment])
	h.Exponent = int8(data[OffsetExponent])
	h.PointCount = engine.Uint32(data[OffsetPointCount:])
	h.FirstX = math.Float64frombits(engine.Uint64(data[OffsetFirstX:]))
	h.LastX = math.Float64frombits(engine.Uint64(data[OffsetLastX:]))
	h.SubfileCount = engine.Uint32(data[OffsetSubfiles:])
	h.XType = data[OffsetXType]
	h.YType = data[OffsetYType]
	h.ZType = data[OffsetZType]
	h.LogOffset = engine.Uint32(data[OffsetLogOffset:])

	return nil
}

// IsStandardVersion reports whether the version byte is 0x4B or 0x4C. Other values are
// read as little-endian.
func (h Header) IsStandardVersion() bool {
	return endian.IsNewFormat(h.Version)
}

// Engine returns the byte order declared by the version byte.
func (h Header) Engine() endian.EndianEngine {
	if h.engine == nil {
		return endian.GetLittleEndianEngine()
	}

	return h.engine
}

// Subfiles returns the effective subfile count. Writers that leave fnsub at zero
// mean a single spectrum.
func (h Header) Subfiles() uint32 {
	if h.SubfileCount == 0 {
		return 1
	}

	return h.SubfileCount
}

// ParseHeader parses a Header from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrMalformedHeader or ErrUnsupportedVersion
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: buffer is %d bytes, want at least %d", errs.ErrMalformedHeader, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
