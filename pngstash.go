// Package pngstash hides, recovers, and inspects byte payloads in PNG files
// at the chunk level.
//
// A PNG stream is a fixed 8-byte signature followed by length-prefixed,
// checksummed chunks. pngstash parses that stream without decoding any pixel
// data, so a message can be tucked into a custom chunk and the file remains a
// valid image to every conforming viewer.
//
// # Basic Usage
//
// Hiding and recovering a message:
//
//	import "github.com/arloliu/pngstash"
//
//	src, _ := os.ReadFile("input.png")
//
//	out, err := pngstash.EncodeMessage(src, "ruSt", "my secret")
//	if err != nil {
//	    return err
//	}
//	_ = os.WriteFile("output.png", out, 0o644)
//
//	msg, found, err := pngstash.DecodeMessage(out, "ruSt")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the png and
// chunk packages, covering the most common use cases. For chunk-level
// control (lookup, removal, textual chunk decoding), use the png and chunk
// packages directly.
package pngstash

import (
	"github.com/arloliu/pngstash/chunk"
	"github.com/arloliu/pngstash/png"
)

// EncodeMessage appends a chunk carrying message under the given tag and
// returns the rewritten stream. The source stream is not modified.
func EncodeMessage(src []byte, tag, message string) ([]byte, error) {
	p, err := png.Parse(src)
	if err != nil {
		return nil, err
	}

	t, err := chunk.TagFromString(tag)
	if err != nil {
		return nil, err
	}

	p.AppendChunk(chunk.New(t, []byte(message)))

	return p.Bytes(), nil
}

// DecodeMessage looks up the first chunk with the given tag and returns its
// payload decoded as text. found is false when no chunk matches; that is a
// normal empty result, not an error.
func DecodeMessage(src []byte, tag string) (message string, found bool, err error) {
	p, err := png.Parse(src)
	if err != nil {
		return "", false, err
	}

	c := p.ChunkByType(tag)
	if c == nil {
		return "", false, nil
	}

	message, err = c.Text()
	if err != nil {
		return "", true, err
	}

	return message, true, nil
}
