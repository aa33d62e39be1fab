// Package compress provides the compression codecs used for galspc snapshot payloads.
//
// Four algorithms are available, selected by format.CompressionType:
//
//   - None: the bytes as they are
//   - Zstd: best ratio, the snapshot default
//   - S2: fast Snappy-compatible compression
//   - LZ4: fastest decompression, raw block format
//
// SPC files are dominated by the opaque 512-byte header and float32 sample arrays;
// zstd typically halves them while S2 and LZ4 trade ratio for speed.
//
// Usage:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(source)
//	if err != nil {
//	    return err
//	}
//	source, err = codec.DecompressSize(packed, len(source))
//
// DecompressSize never produces more than the size it is given, so a payload from an
// untrusted source cannot expand beyond what its frame declares.
//
// Zstd uses klauspost/compress by default. Building with -tags gozstd switches to the cgo
// binding of the reference implementation; the frames are interchangeable.
package compress
