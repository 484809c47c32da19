package chunk

import (
	"bytes"
	"fmt"

	"github.com/arloliu/pngstash/errs"
)

// propertyBit is bit 5 of each tag byte, which doubles as the ASCII case bit.
// An uppercase letter leaves the bit unset.
const propertyBit = 0x20

// Tag is the 4-byte type code naming a chunk's purpose, e.g. "IHDR" or "tEXt".
//
// Every byte must be an ASCII letter; construction enforces this. The case of
// each byte carries a property flag defined by the PNG specification:
//
//	byte 0: critical (uppercase) vs ancillary
//	byte 1: public (uppercase) vs private
//	byte 2: reserved, must be uppercase in conforming streams
//	byte 3: safe-to-copy (lowercase)
//
// The property accessors are informational only. Apart from the letter
// grammar, none of them is enforced by construction, so tags parsed from
// nonconforming but structurally valid streams survive a round trip.
//
// Tag is a comparable value type: use == for equality and Compare for
// ordering.
type Tag [TagSize]byte

// TagFromBytes constructs a Tag from its 4 raw bytes.
//
// Returns errs.ErrInvalidTagLength if b is not exactly 4 bytes, or
// errs.ErrInvalidTagBytes if any byte is not an ASCII letter.
func TagFromBytes(b []byte) (Tag, error) {
	var tag Tag

	if len(b) != TagSize {
		return tag, fmt.Errorf("%w: got %d", errs.ErrInvalidTagLength, len(b))
	}

	for _, c := range b {
		if !isASCIILetter(c) {
			return tag, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidTagBytes, c)
		}
	}

	copy(tag[:], b)

	return tag, nil
}

// TagFromString constructs a Tag from its string form, e.g. "ruSt".
//
// Returns errs.ErrInvalidTagLength if s is not exactly 4 characters, or
// errs.ErrInvalidTagBytes if any character is not an ASCII letter.
func TagFromString(s string) (Tag, error) {
	if len(s) != TagSize {
		return Tag{}, fmt.Errorf("%w: got %d", errs.ErrInvalidTagLength, len(s))
	}

	return TagFromBytes([]byte(s))
}

// Bytes returns the canonical 4-byte encoding of the tag.
func (t Tag) Bytes() [TagSize]byte {
	return t
}

// String returns the tag as a 4-character string.
func (t Tag) String() string {
	return string(t[:])
}

// IsCritical reports whether the chunk is required for correct display, i.e.
// bit 0x20 of the first byte is unset. Generic consumers may skip ancillary
// chunks but must not skip critical ones.
func (t Tag) IsCritical() bool {
	return t[0]&propertyBit == 0
}

// IsPublic reports whether the tag is registered in the public namespace,
// i.e. bit 0x20 of the second byte is unset.
func (t Tag) IsPublic() bool {
	return t[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit conforms to the current
// format version, i.e. bit 0x20 of the third byte is unset.
func (t Tag) IsReservedBitValid() bool {
	return t[2]&propertyBit == 0
}

// IsSafeToCopy reports whether editors that do not recognize the chunk may
// copy it to a modified stream, i.e. bit 0x20 of the fourth byte is set.
func (t Tag) IsSafeToCopy() bool {
	return t[3]&propertyBit != 0
}

// IsValid reports whether the tag is well formed for conforming streams:
// all bytes are ASCII letters (guaranteed by construction) and the reserved
// bit is valid.
func (t Tag) IsValid() bool {
	for _, c := range t {
		if !isASCIILetter(c) {
			return false
		}
	}

	return t.IsReservedBitValid()
}

// Compare returns -1, 0, or 1 comparing t and other byte-wise.
func (t Tag) Compare(other Tag) int {
	return bytes.Compare(t[:], other[:])
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
