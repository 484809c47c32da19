package chunk

// Sizes of the fixed fields in an encoded chunk record.
const (
	LengthSize   = 4 // big-endian payload byte count
	TagSize      = 4 // ASCII-letter type code
	ChecksumSize = 4 // big-endian CRC-32 over tag and payload

	// HeaderSize is the length prefix plus the tag. A residue shorter than
	// this at the end of a stream cannot start a chunk.
	HeaderSize = LengthSize + TagSize

	// Overhead is the encoded size of a chunk beyond its payload.
	Overhead = HeaderSize + ChecksumSize
)
