package png

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/arloliu/pngstash/chunk"
	"github.com/arloliu/pngstash/errs"
)

// SignatureSize is the size of the fixed stream signature in bytes.
const SignatureSize = 8

// Signature is the canonical 8-byte sequence every PNG stream starts with.
var Signature = [SignatureSize]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNG owns an ordered sequence of chunks. The order is the on-disk order and
// is preserved through parse, mutation, and serialization.
type PNG struct {
	chunks []*chunk.Chunk
}

// FromChunks creates a PNG from an existing chunk sequence. The slice is
// copied; the chunks themselves are shared.
func FromChunks(chunks []*chunk.Chunk) *PNG {
	owned := make([]*chunk.Chunk, len(chunks))
	copy(owned, chunks)

	return &PNG{chunks: owned}
}

// Parse decodes a full PNG stream from data.
//
// Returns errs.ErrBadSignature if the first 8 bytes do not match Signature,
// regardless of what follows. The remainder is parsed as consecutive chunks;
// any chunk failure propagates with its original kind plus the byte offset of
// the offending record. A residue too short to hold a chunk header is
// errs.ErrTrailingBytes. There is no partial success: either the whole stream
// parses or an error is returned.
func Parse(data []byte) (*PNG, error) {
	if len(data) < SignatureSize || !bytes.Equal(data[:SignatureSize], Signature[:]) {
		return nil, errs.ErrBadSignature
	}

	p := &PNG{}

	offset := SignatureSize
	for offset < len(data) {
		rest := data[offset:]
		if len(rest) < chunk.HeaderSize {
			return nil, fmt.Errorf("%w: %d bytes at offset %d",
				errs.ErrTrailingBytes, len(rest), offset)
		}

		c, err := chunk.Parse(rest)
		if err != nil {
			return nil, fmt.Errorf("chunk at offset %d: %w", offset, err)
		}

		p.chunks = append(p.chunks, c)
		offset += c.Size()
	}

	return p, nil
}

// AppendChunk appends c to the end of the sequence. No deduplication by tag
// is performed, and no trailer convention is honored: the chunk lands after
// whatever is currently last, including an IEND chunk.
func (p *PNG) AppendChunk(c *chunk.Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose tag's string form equals tag, or
// nil when no chunk matches. A miss is a normal empty result, not an error.
func (p *PNG) ChunkByType(tag string) *chunk.Chunk {
	for _, c := range p.chunks {
		if c.Tag().String() == tag {
			return c
		}
	}

	return nil
}

// RemoveChunk removes and returns the first chunk whose tag's string form
// equals tag. Later duplicates stay in place.
//
// Returns errs.ErrChunkNotFound when no chunk matches.
func (p *PNG) RemoveChunk(tag string) (*chunk.Chunk, error) {
	for i, c := range p.chunks {
		if c.Tag().String() == tag {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)

			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrChunkNotFound, tag)
}

// Chunks returns the chunk sequence in on-disk order. The returned slice is
// a read view; use AppendChunk and RemoveChunk to mutate.
func (p *PNG) Chunks() []*chunk.Chunk {
	return p.chunks
}

// Bytes serializes the container: the signature followed by every chunk's
// encoding in sequence order. For an unmodified, successfully parsed
// container this reproduces the input exactly.
func (p *PNG) Bytes() []byte {
	size := SignatureSize
	for _, c := range p.chunks {
		size += c.Size()
	}

	buf := make([]byte, 0, size)
	buf = append(buf, Signature[:]...)
	for _, c := range p.chunks {
		buf = append(buf, c.Bytes()...)
	}

	return buf
}

// String renders the container for humans: one line per chunk with its tag,
// criticality, length, checksum, and payload text when decodable. Lossy by
// design; never used for re-encoding.
func (p *PNG) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "PNG (%d chunks)\n", len(p.chunks))

	for _, c := range p.chunks {
		kind := "ancillary"
		if c.Tag().IsCritical() {
			kind = "critical"
		}

		fmt.Fprintf(&sb, "  %s  %-9s  length=%-6d  crc=0x%08X", c.Tag(), kind, c.Length(), c.Checksum())

		if text, err := ChunkText(c); err == nil && text != "" {
			fmt.Fprintf(&sb, "  %q", text)
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
