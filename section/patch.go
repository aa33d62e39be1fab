package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/galspc/endian"
)

// FieldChange records one header field rewritten in place.
type FieldChange struct {
	Field  string
	Offset int
	Old    []byte
	New    []byte
}

func (c FieldChange) String() string {
	return fmt.Sprintf("%s@%d: % X -> % X", c.Field, c.Offset, c.Old, c.New)
}

// PatchFlags writes the ftflgs byte into raw.
// The bool result is false when the byte already held that value.
func PatchFlags(raw []byte, f Flags) (FieldChange, bool) {
	return patch(raw, "ftflgs", OffsetFlags, []byte{byte(f)})
}

// PatchExponent writes the fexp byte of the main header into raw.
func PatchExponent(raw []byte, exp int8) (FieldChange, bool) {
	return patch(raw, "fexp", OffsetExponent, []byte{byte(exp)})
}

// PatchSubExponent writes the subexp byte of the subheader starting at subOffset.
func PatchSubExponent(raw []byte, subOffset int, exp int8) (FieldChange, bool) {
	return patch(raw, "subexp", subOffset+SubOffsetExponent, []byte{byte(exp)})
}

// PatchLogOffset writes flogoff into raw using the file's byte order.
func PatchLogOffset(raw []byte, engine endian.EndianEngine, logOff uint32) (FieldChange, bool) {
	return patch(raw, "flogoff", OffsetLogOffset, engine.AppendUint32(nil, logOff))
}

func patch(raw []byte, field string, offset int, value []byte) (FieldChange, bool) {
	end := offset + len(value)
	if end > len(raw) || bytes.Equal(raw[offset:end], value) {
		return FieldChange{}, false
	}

	change := FieldChange{
		Field:  field,
		Offset: offset,
		Old:    bytes.Clone(raw[offset:end]),
		New:    value,
	}
	copy(raw[offset:end], value)

	return change, true
}
