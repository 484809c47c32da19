// Package errs defines the sentinel errors shared across pngstash packages.
//
// Every failure in the codec surfaces as one of these values, usually wrapped
// with fmt.Errorf("%w: ...") to add context such as byte offsets or tag names.
// Callers match with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidTagLength indicates a chunk tag that is not exactly 4 bytes.
	ErrInvalidTagLength = errors.New("chunk tag must be exactly 4 bytes")

	// ErrInvalidTagBytes indicates a chunk tag byte outside the ASCII letter range.
	ErrInvalidTagBytes = errors.New("chunk tag bytes must be ASCII letters")

	// ErrUnexpectedEOF indicates a buffer shorter than a declared length demands.
	ErrUnexpectedEOF = errors.New("unexpected end of chunk data")

	// ErrChecksumMismatch indicates a stored CRC-32 that disagrees with the
	// checksum recomputed over the chunk's tag and payload.
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")

	// ErrBadSignature indicates a stream that does not start with the PNG signature.
	ErrBadSignature = errors.New("invalid PNG signature")

	// ErrTrailingBytes indicates residual bytes after the last complete chunk
	// that are too short to form a chunk header.
	ErrTrailingBytes = errors.New("trailing bytes after last complete chunk")

	// ErrChunkNotFound indicates a remove operation that matched no chunk.
	ErrChunkNotFound = errors.New("chunk not found")

	// ErrInvalidUTF8 indicates a chunk payload that cannot be decoded as UTF-8 text.
	ErrInvalidUTF8 = errors.New("chunk data is not valid UTF-8")

	// ErrInvalidTextPayload indicates a tEXt or zTXt payload that does not
	// follow the keyword/text layout.
	ErrInvalidTextPayload = errors.New("malformed text chunk payload")

	// ErrUnsupportedCompression indicates a compression method byte the
	// format does not define.
	ErrUnsupportedCompression = errors.New("unsupported compression method")
)
