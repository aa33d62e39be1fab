package compress

// NoOpCompressor stores data uncompressed.
//
// Both directions return the input slice itself; callers that keep the result must not
// modify the input.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) > size {
		return nil, sizeExceeded("none", size)
	}

	return data, nil
}
