// Package snapshot packs SPC source bytes into a compact, checksummed token so a client can
// hold a file between an upload and a later save without the server keeping state.
//
// Frame layout (little-endian):
//
//	┌───────┬─────────┬─────────────┬──────────────┬──────────────┬──────────────────┐
//	│ "SP"  │ version │ compression │ xxhash64     │ source size  │ payload          │
//	│ 2 B   │ 1 B     │ 1 B         │ 8 B          │ 4 B          │ compressed bytes │
//	└───────┴─────────┴─────────────┴──────────────┴──────────────┴──────────────────┘
//
// The checksum covers the uncompressed source, so Unpack detects corruption introduced
// anywhere in the frame. The string form is unpadded base64url.
package snapshot

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/arloliu/galspc/compress"
	"github.com/arloliu/galspc/endian"
	"github.com/arloliu/galspc/errs"
	"github.com/arloliu/galspc/format"
	"github.com/arloliu/galspc/internal/hash"
	"github.com/arloliu/galspc/internal/logging"
	"github.com/arloliu/galspc/internal/options"
)

const (
	// Version is the frame version written by Pack.
	Version = 1

	// HeaderSize is the size of the frame header preceding the payload.
	HeaderSize = 16

	// MaxSourceSize bounds the source accepted by Pack and the size Unpack will allocate.
	MaxSourceSize = 256 << 20
)

var magic = [2]byte{'S', 'P'}

const (
	offsetVersion     = 2
	offsetCompression = 3
	offsetChecksum    = 4
	offsetSize        = 12
)

// Packer builds snapshot frames.
type Packer struct {
	compression format.CompressionType
	codec       compress.Codec
	logf        logging.Func
}

// Option represents a functional option for configuring a Packer.
type Option = options.Option[*Packer]

// WithCompression selects the payload compression. The default is zstd.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(p *Packer) error {
		codec, err := compress.GetCodec(ct)
		if err != nil {
			return err
		}
		p.compression, p.codec = ct, codec

		return nil
	})
}

// WithLogger sets the logger used for pack diagnostics.
func WithLogger(logf logging.Func) Option {
	return options.NoError(func(p *Packer) {
		p.logf = logf
	})
}

// NewPacker creates a Packer.
func NewPacker(opts ...Option) (*Packer, error) {
	p := &Packer{
		compression: format.CompressionZstd,
		codec:       compress.NewZstdCompressor(),
	}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}
	p.logf = logging.Or(p.logf)

	return p, nil
}

// Pack frames src.
func (p *Packer) Pack(src []byte) ([]byte, error) {
	if len(src) > MaxSourceSize {
		return nil, fmt.Errorf("snapshot source of %d bytes exceeds %d", len(src), MaxSourceSize)
	}

	payload, err := p.codec.Compress(src)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	frame := make([]byte, 0, HeaderSize+len(payload))
	frame = append(frame, magic[:]...)
	frame = append(frame, Version, byte(p.compression))
	frame = engine.AppendUint64(frame, hash.Fingerprint(src))
	frame = engine.AppendUint32(frame, uint32(len(src)))
	frame = append(frame, payload...)

	p.logf("galspc: packed %d bytes into %d byte %s snapshot", len(src), len(frame), p.compression)

	return frame, nil
}

// PackString frames src and encodes the frame as base64url.
func (p *Packer) PackString(src []byte) (string, error) {
	frame, err := p.Pack(src)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(frame), nil
}

// Unpack verifies a frame and returns the source bytes it carries.
//
// The payload is never expanded past the declared source size, so tokens that come back
// from clients cannot force large allocations.
//
// Returns errs.ErrSnapshotCorrupted for a bad magic, version, size or checksum, and
// errs.ErrInvalidCompression for an unknown compression byte.
func Unpack(frame []byte) ([]byte, error) {
	if len(frame) < HeaderSize || !bytes.Equal(frame[:2], magic[:]) {
		return nil, fmt.Errorf("%w: missing frame header", errs.ErrSnapshotCorrupted)
	}

	if v := frame[offsetVersion]; v != Version {
		return nil, fmt.Errorf("%w: frame version %d", errs.ErrSnapshotCorrupted, v)
	}

	codec, err := compress.GetCodec(format.CompressionType(frame[offsetCompression]))
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	sum := engine.Uint64(frame[offsetChecksum:])
	size := int(engine.Uint32(frame[offsetSize:]))
	if size > MaxSourceSize {
		return nil, fmt.Errorf("%w: declared size %d", errs.ErrSnapshotCorrupted, size)
	}

	src, err := codec.DecompressSize(frame[HeaderSize:], size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSnapshotCorrupted, err)
	}

	if len(src) != size {
		return nil, fmt.Errorf("%w: payload holds %d bytes, header declares %d", errs.ErrSnapshotCorrupted, len(src), size)
	}

	if hash.Fingerprint(src) != sum {
		return nil, fmt.Errorf("%w: checksum mismatch", errs.ErrSnapshotCorrupted)
	}

	return bytes.Clone(src), nil
}

// UnpackString decodes a base64url token produced by PackString.
func UnpackString(token string) ([]byte, error) {
	frame, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSnapshotCorrupted, err)
	}

	return Unpack(frame)
}

// Pack frames src with a default zstd Packer.
func Pack(src []byte) ([]byte, error) {
	p, err := NewPacker()
	if err != nil {
		return nil, err
	}

	return p.Pack(src)
}

// PackString frames src with a default Packer and encodes it as base64url.
func PackString(src []byte) (string, error) {
	p, err := NewPacker()
	if err != nil {
		return "", err
	}

	return p.PackString(src)
}
