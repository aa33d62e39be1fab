// Package endian provides byte order utilities for reading and patching SPC files.
//
// SPC "new format" files come in two byte orders, distinguished only by the version
// byte at offset 1 of the main header. Writers that leave the version byte at some
// other value produce little-endian files; only the old format is refused. Every multi-byte field of the header, the
// subheader and the sample arrays follows that order. This package wraps the standard
// library's ByteOrder and AppendByteOrder into one EndianEngine so codecs can both patch
// fixed offsets in place and append fresh samples.
//
// # Basic Usage
//
//	engine, ok := endian.ForVersion(data[1])
//	if !ok {
//	    return errs.ErrUnsupportedVersion // old format
//	}
//	points := engine.Uint32(data[4:8])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// Version bytes recognized at header offset 1.
const (
	VersionNewLSB byte = 0x4B // new format, least significant byte first
	VersionNewMSB byte = 0x4C // new format, most significant byte first
	VersionOld    byte = 0x4D // old format, different header layout
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForVersion returns the engine matching an SPC version byte.
// Unrecognized versions read as little-endian. The second result is false only for
// the old format, whose header layout differs.
func ForVersion(version byte) (EndianEngine, bool) {
	switch version {
	case VersionNewMSB:
		return binary.BigEndian, true
	case VersionOld:
		return nil, false
	default:
		return binary.LittleEndian, true
	}
}

// IsNewFormat reports whether version is one of the two new-format version bytes.
func IsNewFormat(version byte) bool {
	return version == VersionNewLSB || version == VersionNewMSB
}
