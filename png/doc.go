// Package png implements the container level of the PNG chunk stream: the
// fixed 8-byte signature followed by an ordered sequence of chunks.
//
// The container is parsed and re-serialized at the chunk level only. Pixel
// data is never decompressed or interpreted, and rewriting a parsed,
// unmodified container reproduces the input byte for byte. Mutation is
// limited to appending a chunk at the end of the sequence and removing the
// first chunk matching a tag.
//
// The package also interprets the two standard textual chunk layouts, tEXt
// and zTXt, for display purposes. That interpretation is best effort and is
// never part of the round-trip path.
package png
