package section

import "github.com/arloliu/galspc/format"

// Flags represents the ftflgs byte at offset 0 of the main header.
type Flags uint8

// IsShortY returns whether y values are stored as 16-bit fixed-point (TSPREC).
func (f Flags) IsShortY() bool {
	return f&FlagShortY != 0
}

// WithoutShortY returns the flags with TSPREC cleared.
func (f Flags) WithoutShortY() Flags {
	return f &^ FlagShortY
}

// IsMultiFile returns whether the file declares multiple subfiles (TMULTI).
func (f Flags) IsMultiFile() bool {
	return f&FlagMultiFile != 0
}

// HasXYXYs returns whether each subfile carries its own x array (TXYXYS).
func (f Flags) HasXYXYs() bool {
	return f&FlagXYXYs != 0
}

// HasExplicitX returns whether a single x array precedes the subfiles (TXVALS).
func (f Flags) HasExplicitX() bool {
	return f&FlagExplicitX != 0
}

// XLayout returns how x values are obtained.
func (f Flags) XLayout() format.XLayout {
	if f.HasExplicitX() {
		return format.XExplicit
	}

	return format.XEvenlySpaced
}

// YLayout returns the y sample encoding implied by the flags and the effective exponent.
//
// An exponent of FloatExponent selects IEEE float32 regardless of TSPREC.
func (f Flags) YLayout(exponent int8) format.YLayout {
	switch {
	case exponent == FloatExponent:
		return format.YFloat32
	case f.IsShortY():
		return format.YFixed16
	default:
		return format.YFixed32
	}
}
