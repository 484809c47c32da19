// Package chunk implements the record-level codec of the PNG chunk stream.
//
// An encoded chunk is a length-prefixed, type-tagged, checksummed record:
//
//	[4-byte length, big-endian]
//	[4-byte tag, ASCII letters]
//	[length bytes of payload]
//	[4-byte CRC-32 over tag and payload, big-endian]
//
// The checksum uses the CRC-32/ISO-HDLC polynomial, which is the IEEE table
// from hash/crc32, matching conforming PNG encoders bit for bit.
//
// Parsing validates the tag grammar and the checksum; a Chunk that parsed
// successfully serializes back to the exact input bytes. Payload bytes are
// opaque to this package.
package chunk

import (
	"fmt"
	"hash/crc32"
	"unicode/utf8"

	"github.com/arloliu/pngstash/endian"
	"github.com/arloliu/pngstash/errs"
)

// Chunk is one record of the chunk stream. It owns its payload bytes and is
// immutable after construction; replacing a chunk's content means building a
// new one.
type Chunk struct {
	length uint32
	tag    Tag
	data   []byte
	crc    uint32
}

// New creates a Chunk carrying the given payload under the given tag.
//
// The length is derived from the payload and the checksum is computed over
// the tag bytes followed by the payload, so a fresh Chunk always satisfies
// the codec invariants. The payload is copied; the caller keeps ownership of
// data.
func New(tag Tag, data []byte) *Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)

	return &Chunk{
		length: uint32(len(owned)),
		tag:    tag,
		data:   owned,
		crc:    checksum(tag, owned),
	}
}

// Parse decodes one chunk from the start of buf.
//
// It reads, in order, the big-endian length, the tag, the payload, and the
// big-endian checksum. Bytes past the record are ignored; callers walking a
// stream advance by Size().
//
// Returns errs.ErrUnexpectedEOF if buf runs out at any stage,
// errs.ErrInvalidTagLength or errs.ErrInvalidTagBytes for a malformed tag,
// and errs.ErrChecksumMismatch if the recomputed CRC-32 disagrees with the
// stored value. On success every field holds the parsed value as read, with
// length and checksum guaranteed consistent with the payload.
func Parse(buf []byte) (*Chunk, error) {
	engine := endian.GetBigEndianEngine()

	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: need %d header bytes, have %d",
			errs.ErrUnexpectedEOF, HeaderSize, len(buf))
	}

	length := engine.Uint32(buf[0:LengthSize])

	tag, err := TagFromBytes(buf[LengthSize:HeaderSize])
	if err != nil {
		return nil, err
	}

	total := Overhead + int(length)
	if len(buf) < total {
		return nil, fmt.Errorf("%w: chunk %s declares %d payload bytes, record needs %d bytes, have %d",
			errs.ErrUnexpectedEOF, tag, length, total, len(buf))
	}

	data := make([]byte, length)
	copy(data, buf[HeaderSize:HeaderSize+int(length)])

	crc := engine.Uint32(buf[HeaderSize+int(length) : total])
	if computed := checksum(tag, data); computed != crc {
		return nil, fmt.Errorf("%w: chunk %s stored %d, computed %d",
			errs.ErrChecksumMismatch, tag, crc, computed)
	}

	return &Chunk{length: length, tag: tag, data: data, crc: crc}, nil
}

// Length returns the payload byte count.
func (c *Chunk) Length() uint32 {
	return c.length
}

// Tag returns the chunk's type code.
func (c *Chunk) Tag() Tag {
	return c.tag
}

// Data returns the payload bytes. The returned slice shares the chunk's
// backing array and must not be modified.
func (c *Chunk) Data() []byte {
	return c.data
}

// Checksum returns the CRC-32 over the tag bytes followed by the payload.
func (c *Chunk) Checksum() uint32 {
	return c.crc
}

// Size returns the total encoded size of the record in bytes.
func (c *Chunk) Size() int {
	return Overhead + int(c.length)
}

// Bytes serializes the chunk. For any Chunk that parsed successfully this is
// the byte-exact inverse of Parse.
func (c *Chunk) Bytes() []byte {
	engine := endian.GetBigEndianEngine()

	buf := make([]byte, 0, c.Size())
	buf = engine.AppendUint32(buf, c.length)
	buf = append(buf, c.tag[:]...)
	buf = append(buf, c.data...)
	buf = engine.AppendUint32(buf, c.crc)

	return buf
}

// Text returns the payload decoded as UTF-8 text.
//
// Returns errs.ErrInvalidUTF8 if the payload is not valid UTF-8. This is a
// display helper; re-encoding always goes through the raw payload bytes.
func (c *Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: chunk %s", errs.ErrInvalidUTF8, c.tag)
	}

	return string(c.data), nil
}

// String renders the chunk for humans: the decoded payload text when valid
// UTF-8, otherwise a short summary. Not used for round-tripping.
func (c *Chunk) String() string {
	text, err := c.Text()
	if err != nil {
		return fmt.Sprintf("%s (%d bytes of binary data)", c.tag, c.length)
	}

	return text
}

// checksum computes the CRC-32/ISO-HDLC over the tag bytes followed by data.
func checksum(tag Tag, data []byte) uint32 {
	sum := crc32.ChecksumIEEE(tag[:])

	return crc32.Update(sum, crc32.IEEETable, data)
}
