// Package section defines the low-level binary structures and constants of the Galactic
// SPC "new format" file.
//
// This package provides the typed views of the fixed-size header sections, the flag byte
// accessors, the layout resolution that turns flag bits into a closed set of layout
// values, and in-place patching of the few header fields an encoder may rewrite.
//
// # File Structure
//
// A single-subfile SPC file consists of fixed-size sections around the sample arrays:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Main header (512 bytes, fixed)                          │
//	│  - flags, version, experiment type, exponent            │
//	│  - point count, first/last x, subfile count             │
//	│  - opaque metadata: date, labels, comment, method       │
//	│  - log block offset                                     │
//	├─────────────────────────────────────────────────────────┤
//	│ X array (N × float32, only when TXVALS is set)          │
//	├─────────────────────────────────────────────────────────┤
//	│ Subheader (32 bytes, omitted by simple writers)         │
//	├─────────────────────────────────────────────────────────┤
//	│ Y array (N × float32, int32 or int16)                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Trailer (log block at flogoff, anything else)           │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes   | Field    | Type    | Description
//	--------|----------|---------|----------------------------------------
//	0       | ftflgs   | uint8   | Flag bits, see below
//	1       | fversn   | uint8   | 0x4C big-endian, 0x4D old, else LE
//	2       | fexper   | uint8   | Experiment type code
//	3       | fexp     | int8    | Y exponent, -128 for float32 data
//	4-7     | fnpts    | uint32  | Number of points
//	8-15    | ffirst   | float64 | First x value
//	16-23   | flast    | float64 | Last x value
//	24-27   | fnsub    | uint32  | Number of subfiles
//	28-30   | f[xyz]type | uint8 | Axis unit codes
//	248-251 | flogoff  | uint32  | Offset of the log block, 0 if none
//
// # Flag Format
//
//	Bit 0 (0x01) TSPREC: 16-bit y values
//	Bit 1 (0x02) TCGRAM
//	Bit 2 (0x04) TMULTI: multiple subfiles, exponent per subfile
//	Bit 3 (0x08) TRANDM
//	Bit 4 (0x10) TORDRD
//	Bit 5 (0x20) TALABS: axis label text in use
//	Bit 6 (0x40) TXYXYS: x array per subfile (unsupported)
//	Bit 7 (0x80) TXVALS: x array after the main header
//
// # Fixed-Point Samples
//
// When fexp is not -128, y samples are integers scaled by a power of two:
//
//	y = int32 × 2^(fexp-32)   (TSPREC clear)
//	y = int16 × 2^(fexp-16)   (TSPREC set)
//
// # Byte Order
//
// All multi-byte values follow the order declared by the version byte. The endian
// package maps the version to an engine.
//
// # Thread Safety
//
// Header, Subheader and Layout are plain values and safe to share. The Patch functions
// write into the slice they are given and must not be called on shared buffers.
package section
