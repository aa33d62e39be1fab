package section

// Flag bits of the ftflgs byte (header offset 0).
const (
	FlagShortY     = 0x01 // TSPREC: 16-bit fixed-point y values
	FlagChromagram = 0x02 // TCGRAM: enables fexper in older software
	FlagMultiFile  = 0x04 // TMULTI: multiple subfiles
	FlagRandomZ    = 0x08 // TRANDM: subfile z values randomly ordered
	FlagOrderedZ   = 0x10 // TORDRD: subfile z values ordered but not even
	FlagAxisLabels = 0x20 // TALABS: use fcatxt axis labels
	FlagXYXYs      = 0x40 // TXYXYS: each subfile has its own x array
	FlagExplicitX  = 0x80 // TXVALS: one x array precedes the subfiles
)

// FloatExponent is the fexp/subexp value marking IEEE float32 y data.
const FloatExponent int8 = -128

// Main header field offsets.
const (
	OffsetFlags       = 0
	OffsetVersion     = 1
	OffsetExperiment  = 2
	OffsetExponent    = 3
	OffsetPointCount  = 4
	OffsetFirstX      = 8
	OffsetLastX       = 16
	OffsetSubfiles    = 24
	OffsetXType       = 28
	OffsetYType       = 29
	OffsetZType       = 30
	OffsetPost        = 31
	OffsetDate        = 32
	OffsetResolution  = 36
	OffsetSource      = 45
	OffsetPeakPoint   = 54
	OffsetSpare       = 56
	OffsetComment     = 88
	OffsetAxisText    = 218
	OffsetLogOffset   = 248
	OffsetMods        = 252
	OffsetProcs       = 256
	OffsetLevel       = 257
	OffsetSampleInj   = 258
	OffsetFactor      = 260
	OffsetMethod      = 264
	OffsetZIncrement  = 312
	OffsetWPlanes     = 316
	OffsetWIncrement  = 320
	OffsetWType       = 324
	OffsetReserved    = 325
	CommentSize       = 130
	AxisTextSize      = 30
	ResolutionSize    = 9
	SourceSize        = 9
	MethodSize        = 48
	ReservedFieldSize = 187
)

// Subheader field offsets, relative to the start of the subheader.
const (
	SubOffsetFlags      = 0
	SubOffsetExponent   = 1
	SubOffsetIndex      = 2
	SubOffsetTime       = 4
	SubOffsetNextTime   = 8
	SubOffsetNoise      = 12
	SubOffsetPointCount = 16
	SubOffsetScans      = 20
	SubOffsetWLevel     = 24
	SubOffsetReserved   = 28
)

// Section sizes in bytes.
const (
	HeaderSize    = 512 // fixed main header size
	SubheaderSize = 32  // fixed subheader size
	XSampleSize   = 4   // explicit x values are always float32
)
