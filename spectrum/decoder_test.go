package spectrum

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/galspc/errs"
	"github.com/arloliu/galspc/format"
	"github.com/arloliu/galspc/internal/testutil"
	"github.com/arloliu/galspc/section"
)

func decodeFile(t *testing.T, f testutil.SPCFile) (Document, []byte) {
	t.Helper()

	data := f.Bytes()
	doc, err := Decode(data)
	require.NoError(t, err)

	return doc, data
}

func TestDecode_EvenlySpacedFloat(t *testing.T) {
	doc, data := decodeFile(t, testutil.FloatFile(4, 400, 4000, []float64{1, -2, 3.5, 0}))

	require.Equal(t, []float64{400, 1600, 2800, 4000}, doc.XValues())
	require.Equal(t, []float64{1, -2, 3.5, 0}, doc.YValues())
	require.Equal(t, 4, doc.PointCount())
	require.Equal(t, data[:section.HeaderSize], doc.RawHeader())

	h := doc.Header()
	require.Equal(t, format.ExperimentFTIR, h.Experiment)
	require.Equal(t, uint32(4), h.PointCount)

	l := doc.Layout()
	require.Equal(t, format.XEvenlySpaced, l.X)
	require.Equal(t, format.YFloat32, l.Y)
	require.Equal(t, section.HeaderSize+section.SubheaderSize, l.YOffset)

	_, ok := doc.DetectedUnit()
	require.False(t, ok)
	require.False(t, doc.Modified())
}

func TestDecode_SinglePoint(t *testing.T) {
	doc, _ := decodeFile(t, testutil.FloatFile(0, 500, 900, []float64{7}))
	require.Equal(t, []float64{500}, doc.XValues())
}

func TestDecode_ZeroPoints(t *testing.T) {
	doc, _ := decodeFile(t, testutil.FloatFile(0, 500, 900, nil))
	require.Empty(t, doc.XValues())
	require.Empty(t, doc.YValues())
	require.False(t, doc.IsEmpty())
}

func TestDecode_ExplicitX(t *testing.T) {
	f := testutil.FloatFile(0, 0, 0, []float64{1, 2, 3})
	f.Flags = section.FlagExplicitX
	f.X = []float32{10, 25.5, 31}

	doc, _ := decodeFile(t, f)
	require.Equal(t, []float64{10, 25.5, 31}, doc.XValues())
	require.Equal(t, []float64{1, 2, 3}, doc.YValues())
	require.Equal(t, format.XExplicit, doc.Layout().X)
	require.Equal(t, section.HeaderSize, doc.Layout().XOffset)
}

func TestDecode_BigEndian(t *testing.T) {
	f := testutil.FloatFile(5, 1100, 2500, []float64{0.25, -0.5})
	f.BigEndian = true

	doc, _ := decodeFile(t, f)
	require.Equal(t, []float64{1100, 2500}, doc.XValues())
	require.Equal(t, []float64{0.25, -0.5}, doc.YValues())
	require.Equal(t, byte(0x4C), doc.Header().Version)
}

func TestDecode_FixedPoint(t *testing.T) {
	t.Run("32-bit", func(t *testing.T) {
		doc, _ := decodeFile(t, testutil.SPCFile{Exponent: 8, SubExponent: 8, FirstX: 1, LastX: 3, Y: []float64{1.5, -2.25, 0.125}})
		require.Equal(t, format.YFixed32, doc.Layout().Y)
		require.Equal(t, int8(8), doc.Layout().Exponent)
		require.Equal(t, []float64{1.5, -2.25, 0.125}, doc.YValues())
	})

	t.Run("16-bit", func(t *testing.T) {
		doc, _ := decodeFile(t, testutil.SPCFile{Flags: section.FlagShortY, Exponent: 4, SubExponent: 4, FirstX: 1, LastX: 2, Y: []float64{-1, 0.5}})
		require.Equal(t, format.YFixed16, doc.Layout().Y)
		require.Equal(t, 4, doc.Layout().YSize())
		require.Equal(t, []float64{-1, 0.5}, doc.YValues())
	})

	t.Run("multifile flag uses subheader exponent", func(t *testing.T) {
		doc, _ := decodeFile(t, testutil.SPCFile{Flags: section.FlagMultiFile, Exponent: 0, SubExponent: 8, Subfiles: 1, FirstX: 1, LastX: 1, Y: []float64{1.5}})
		require.Equal(t, int8(8), doc.Layout().Exponent)
		require.Equal(t, []float64{1.5}, doc.YValues())
	})
}

func TestDecode_LogBlock(t *testing.T) {
	f := testutil.FloatFile(0, 1, 2, []float64{1, 2})
	f.Log = []byte("log block text")
	f.Trailing = []byte{0xDE, 0xAD}

	doc, data := decodeFile(t, f)
	require.Equal(t, []float64{1, 2}, doc.YValues())
	require.Equal(t, doc.Layout().YEnd, int(doc.Header().LogOffset))
	require.Equal(t, data, doc.Source())
}

// ftirSpectrum returns a 100-point float32 FT-IR file laid out the way simple writers
// produce it: y straight after the 512-byte header, version byte 0x4B.
func ftirSpectrum() testutil.SPCFile {
	y := make([]float64, 100)
	for i := range y {
		y[i] = float64(i%10) / 4
	}

	f := testutil.FloatFile(byte(format.ExperimentFTIR), 400, 4000, y)
	f.NoSubheader = true

	return f
}

func TestDecode_WithoutSubheader(t *testing.T) {
	t.Run("evenly spaced", func(t *testing.T) {
		f := ftirSpectrum()
		doc, data := decodeFile(t, f)

		require.Len(t, data, section.HeaderSize+400)
		require.Equal(t, 100, doc.PointCount())
		require.Equal(t, f.Y, doc.YValues())
		require.Equal(t, 400.0, doc.XValues()[0])
		require.Equal(t, 4000.0, doc.XValues()[99])
		require.Equal(t, section.HeaderSize, doc.Layout().YOffset)

		sub, ok := doc.Subheader()
		require.False(t, ok)
		require.Equal(t, section.Subheader{}, sub)
	})

	t.Run("explicit x", func(t *testing.T) {
		f := testutil.FloatFile(0, 0, 0, []float64{1, 2, 3})
		f.Flags = section.FlagExplicitX
		f.X = []float32{10, 25.5, 31}
		f.NoSubheader = true

		doc, data := decodeFile(t, f)
		require.Len(t, data, section.HeaderSize+12+12)
		require.Equal(t, []float64{10, 25.5, 31}, doc.XValues())
		require.Equal(t, []float64{1, 2, 3}, doc.YValues())
		require.Equal(t, section.HeaderSize+12, doc.Layout().YOffset)
	})

	t.Run("subheader reported when present", func(t *testing.T) {
		doc, _ := decodeFile(t, testutil.FloatFile(0, 1, 2, []float64{1, 2}))

		sub, ok := doc.Subheader()
		require.True(t, ok)
		require.Equal(t, section.FloatExponent, sub.Exponent)
	})
}

func TestDecode_NonStandardVersion(t *testing.T) {
	f := ftirSpectrum()
	f.Version = 0x01

	var lines []string
	d, err := NewDecoder(WithDecoderLogger(func(format string, v ...any) {
		lines = append(lines, fmt.Sprintf(format, v...))
	}))
	require.NoError(t, err)

	doc, err := d.Decode(f.Bytes())
	require.NoError(t, err)
	require.Equal(t, f.Y, doc.YValues())
	require.Equal(t, byte(0x01), doc.Header().Version)
	require.Contains(t, lines[0], "non-standard version byte 0x01")

	f.BigEndian = true
	f.Version = 0x4C
	doc, err = d.Decode(f.Bytes())
	require.NoError(t, err)
	require.Equal(t, f.Y, doc.YValues())
}

func TestDecode_CopiesInput(t *testing.T) {
	data := testutil.FloatFile(0, 1, 2, []float64{1, 2}).Bytes()
	want := append([]byte(nil), data...)

	doc, err := Decode(data)
	require.NoError(t, err)

	for i := range data {
		data[i] = 0xFF
	}
	require.Equal(t, want, doc.Source())
	require.Equal(t, []float64{1, 2}, doc.YValues())
}

func TestDecode_Errors(t *testing.T) {
	float := testutil.FloatFile(0, 1, 4, []float64{1, 2, 3, 4})

	tests := []struct {
		name string
		data func() []byte
		want error
	}{
		{"empty", func() []byte { return nil }, errs.ErrMalformedHeader},
		{"short header", func() []byte { return float.Bytes()[:100] }, errs.ErrMalformedHeader},
		{"truncated data region", func() []byte { return float.Bytes()[:520] }, errs.ErrPointCountMismatch},
		{"old format", func() []byte {
			f := float
			f.Version = 0x4D
			return f.Bytes()
		}, errs.ErrUnsupportedVersion},
		{"multiple subfiles", func() []byte {
			f := float
			f.Subfiles = 3
			return f.Bytes()
		}, errs.ErrUnsupportedSubfile},
		{"xyxy subfiles", func() []byte {
			f := float
			f.Flags = section.FlagXYXYs
			return f.Bytes()
		}, errs.ErrUnsupportedSubfile},
		{"declared more points", func() []byte {
			f := float
			f.OverridePoints, f.DeclaredPoints = true, 5
			return f.Bytes()
		}, errs.ErrPointCountMismatch},
		{"declared fewer points", func() []byte {
			f := float
			f.OverridePoints, f.DeclaredPoints = true, 3
			return f.Bytes()
		}, errs.ErrPointCountMismatch},
		{"unreferenced trailing data", func() []byte {
			f := float
			f.Trailing = []byte{1, 2, 3, 4}
			return f.Bytes()
		}, errs.ErrPointCountMismatch},
		{"subheader-less data region too long", func() []byte {
			f := float
			f.NoSubheader = true
			f.Trailing = []byte{1, 2, 3, 4}
			return f.Bytes()
		}, errs.ErrPointCountMismatch},
		{"truncated x array", func() []byte {
			f := float
			f.Flags = section.FlagExplicitX
			f.X = []float32{1, 2, 3, 4}
			return f.Bytes()[:520]
		}, errs.ErrPointCountMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(tt.data())
			require.ErrorIs(t, err, tt.want)
			require.True(t, doc.IsEmpty())
		})
	}
}

func TestDecoder_Logger(t *testing.T) {
	var lines []string
	d, err := NewDecoder(WithDecoderLogger(func(format string, v ...any) {
		lines = append(lines, format)
	}))
	require.NoError(t, err)

	_, err = d.Decode(testutil.FloatFile(0, 1, 2, []float64{1, 2}).Bytes())
	require.NoError(t, err)
	require.Len(t, lines, 1)
}

func TestDocument_WithYValues(t *testing.T) {
	doc, _ := decodeFile(t, testutil.FloatFile(0, 1, 3, []float64{1, 2, 3}))

	_, err := doc.WithYValues([]float64{1, 2})
	require.ErrorIs(t, err, errs.ErrPointCountMismatch)

	y := []float64{4, 5, 6}
	next, err := doc.WithYValues(y)
	require.NoError(t, err)
	y[0] = 100

	require.Equal(t, []float64{4, 5, 6}, next.YValues())
	require.Equal(t, []float64{1, 2, 3}, doc.YValues())
	require.True(t, next.Modified())
	require.Equal(t, doc.Fingerprint(), next.Fingerprint())
	require.Equal(t, doc.RawHeader(), next.RawHeader())
	if diff := cmp.Diff(doc.Header(), next.Header(), cmpopts.IgnoreUnexported(section.Header{})); diff != "" {
		t.Errorf("header changed (-old +new):\n%s", diff)
	}
}

func TestDocument_AccessorsReturnCopies(t *testing.T) {
	doc, _ := decodeFile(t, testutil.FloatFile(0, 1, 2, []float64{1, 2}))

	doc.XValues()[0] = 99
	doc.YValues()[0] = 99
	doc.RawHeader()[0] = 99

	require.Equal(t, []float64{1, 2}, doc.XValues())
	require.Equal(t, []float64{1, 2}, doc.YValues())
	require.NotEqual(t, byte(99), doc.RawHeader()[0])
}

func TestDocument_WithUnit(t *testing.T) {
	doc, _ := decodeFile(t, testutil.FloatFile(4, 400, 4000, []float64{1, 2}))

	tagged := doc.WithUnit(format.UnitWavenumber)
	u, ok := tagged.DetectedUnit()
	require.True(t, ok)
	require.Equal(t, format.UnitWavenumber, u)

	_, ok = doc.DetectedUnit()
	require.False(t, ok)
}

func TestDocument_ModifiedComparesBits(t *testing.T) {
	doc, _ := decodeFile(t, testutil.FloatFile(0, 1, 2, []float64{0, math.NaN()}))

	same, err := doc.WithYValues(doc.YValues())
	require.NoError(t, err)
	require.False(t, same.Modified())

	negZero, err := doc.WithYValues([]float64{math.Copysign(0, -1), math.NaN()})
	require.NoError(t, err)
	require.True(t, negZero.Modified())
}

func TestDocument_Zero(t *testing.T) {
	var doc Document
	require.True(t, doc.IsEmpty())
	require.Nil(t, doc.RawHeader())
	require.Empty(t, doc.YValues())
}
