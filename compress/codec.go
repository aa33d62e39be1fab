package compress

import (
	"fmt"

	"github.com/arloliu/galspc/errs"
	"github.com/arloliu/galspc/format"
)

// Compressor compresses a complete buffer.
//
// The returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Corrupted input or input produced by another algorithm is reported as an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor decompresses data whose original size is known.
//
// Output is bounded by size: input that would expand past it fails with
// errs.ErrSizeLimitExceeded without producing the excess. Shorter output is returned as is
// and left to the caller to reject.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec combines both directions. Built-in codecs are stateless values and safe for
// concurrent use.
type Codec interface {
	Compressor
	Decompressor
	SizedDecompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for a compression type.
//
// Returns errs.ErrInvalidCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(compressionType))
}

func sizeExceeded(codec string, size int) error {
	return fmt.Errorf("%s: %w: more than %d bytes", codec, errs.ErrSizeLimitExceeded, size)
}
