package format

import "strings"

type (
	ExperimentType  uint8
	Unit            string
	XLayout         uint8
	YLayout         uint8
	CompressionType uint8
)

const (
	ExperimentGeneral      ExperimentType = 0  // ExperimentGeneral is the general SPC type.
	ExperimentGC           ExperimentType = 1  // ExperimentGC is gas chromatography.
	ExperimentChromatogram ExperimentType = 2  // ExperimentChromatogram is general chromatography.
	ExperimentHPLC         ExperimentType = 3  // ExperimentHPLC is HPLC chromatography.
	ExperimentFTIR         ExperimentType = 4  // ExperimentFTIR is FT-IR, FT-NIR and FT-Raman.
	ExperimentNIR          ExperimentType = 5  // ExperimentNIR is near infrared.
	ExperimentUVVIS        ExperimentType = 6  // ExperimentUVVIS is UV-VIS.
	ExperimentXRay         ExperimentType = 7  // ExperimentXRay is X-ray.
	ExperimentMassSpec     ExperimentType = 8  // ExperimentMassSpec is mass spectroscopy.
	ExperimentNMR          ExperimentType = 9  // ExperimentNMR is NMR or FT-NMR.
	ExperimentESR          ExperimentType = 10 // ExperimentESR is ESR spectroscopy.
	ExperimentFluorescence ExperimentType = 11 // ExperimentFluorescence is fluorescence spectroscopy.
	ExperimentAtomic       ExperimentType = 12 // ExperimentAtomic is atomic spectroscopy.
	ExperimentDiodeArrayLC ExperimentType = 13 // ExperimentDiodeArrayLC is chromatography diode array.
)

const maxKnownExperimentCodes = 14

const (
	UnitWavenumber Unit = "cm⁻¹"    // UnitWavenumber is reciprocal centimetres.
	UnitNanometer  Unit = "nm"      // UnitNanometer is nanometres.
	UnitMicrometer Unit = "μm"      // UnitMicrometer is micrometres (Greek mu).
	UnitUnknown    Unit = "Unknown" // UnitUnknown means no rule matched.
)

const (
	XEvenlySpaced XLayout = 0x1 // XEvenlySpaced synthesizes x from first/last/count.
	XExplicit     XLayout = 0x2 // XExplicit stores x as a float32 array after the header.
)

const (
	YFloat32 YLayout = 0x1 // YFloat32 stores y as IEEE 754 single precision.
	YFixed32 YLayout = 0x2 // YFixed32 stores y as int32 scaled by 2^(exp-32).
	YFixed16 YLayout = 0x3 // YFixed16 stores y as int16 scaled by 2^(exp-16).
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

var experimentNames = [maxKnownExperimentCodes]string{
	"General SPC",
	"Gas Chromatography",
	"General Chromatography",
	"HPLC Chromatography",
	"FT-IR, FT-NIR, FT-Raman",
	"NIR",
	"UV-VIS",
	"X-ray",
	"Mass Spectroscopy",
	"NMR Spectroscopy or FT-NMR",
	"ESR Spectroscopy",
	"Fluorescence Spectroscopy",
	"Atomic Spectroscopy",
	"Chromatography Diode Array",
}

func (e ExperimentType) String() string {
	if int(e) < len(experimentNames) {
		return experimentNames[e]
	}

	return "Unknown"
}

// IsKnown reports whether the code is one of the documented experiment types.
func (e ExperimentType) IsKnown() bool {
	return int(e) < maxKnownExperimentCodes
}

func (u Unit) String() string {
	return string(u)
}

// ParseUnit maps a unit label to a Unit.
//
// Besides the canonical labels it accepts the ASCII spellings callers tend to send back
// (cm-1, 1/cm, um, micron) and the micro sign U+00B5 in place of the Greek mu.
// Anything else yields UnitUnknown.
func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm⁻¹", "cm-1", "1/cm", "cm^-1", "wavenumber":
		return UnitWavenumber
	case "nm", "nanometer", "nanometre":
		return UnitNanometer
	case "μm", "µm", "um", "micron", "micrometer", "micrometre":
		return UnitMicrometer
	default:
		return UnitUnknown
	}
}

func (l XLayout) String() string {
	switch l {
	case XEvenlySpaced:
		return "EvenlySpaced"
	case XExplicit:
		return "Explicit"
	default:
		return "Unknown"
	}
}

func (l YLayout) String() string {
	switch l {
	case YFloat32:
		return "Float32"
	case YFixed32:
		return "Fixed32"
	case YFixed16:
		return "Fixed16"
	default:
		return "Unknown"
	}
}

// SampleWidth returns the on-disk size of one y sample in bytes, or 0 for an unknown layout.
func (l YLayout) SampleWidth() int {
	switch l {
	case YFloat32, YFixed32:
		return 4
	case YFixed16:
		return 2
	default:
		return 0
	}
}

// IsFixedPoint reports whether the layout is one of the integer-plus-exponent encodings.
func (l YLayout) IsFixedPoint() bool {
	return l == YFixed32 || l == YFixed16
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
