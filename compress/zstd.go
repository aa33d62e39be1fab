package compress

// ZstdCompressor provides Zstandard compression. It gives the best ratio of the built-in
// codecs and is the default for snapshots.
//
// The implementation is selected at build time: the pure-Go klauspost/compress encoder by
// default, or the cgo binding to the reference library with the gozstd build tag. Both
// produce standard zstd frames and can read each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
