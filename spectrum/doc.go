// Package spectrum decodes single-subfile SPC files into immutable Documents and encodes
// them back with byte-level preservation.
//
// Decoding resolves the file layout once (see section.ResolveLayout), reads the x axis
// (explicit float32 array or synthesized from ffirst/flast) and the y block in whichever
// encoding the header selects, and keeps a private copy of the complete source.
//
// Encoding uses that copy as its baseline:
//
//	doc, err := spectrum.Decode(data)
//	if err != nil {
//	    return err
//	}
//	clamped, err := threshold.Apply(doc.YValues(), 0)
//	if err != nil {
//	    return err
//	}
//	doc, err = doc.WithYValues(clamped)
//	if err != nil {
//	    return err
//	}
//	enc, err := spectrum.Encode(doc)
//
// An unmodified Document encodes to exactly its source bytes. A modified one differs from
// the source only in the changed samples, unless a fixed-point block cannot hold the new
// values; the block is then converted to float32 and Encoded.Warning lists every header
// byte that changed. WithStrictPreservation turns that conversion into an error.
package spectrum
