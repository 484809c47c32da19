package png

import (
	"bytes"
	"fmt"

	"github.com/arloliu/pngstash/chunk"
	"github.com/arloliu/pngstash/compress"
	"github.com/arloliu/pngstash/errs"
)

// Tags of the standard textual chunk types.
const (
	TextTag           = "tEXt"
	CompressedTextTag = "zTXt"
)

// TextData is the decoded form of a textual chunk payload.
type TextData struct {
	Keyword string
	Text    string
}

// DecodeText decodes a tEXt payload: a keyword, a NUL separator, and the
// text.
//
// Returns errs.ErrInvalidTextPayload when the separator is missing.
func DecodeText(c *chunk.Chunk) (*TextData, error) {
	data := c.Data()

	sep := bytes.IndexByte(data, 0)
	if sep < 0 {
		return nil, fmt.Errorf("%w: missing keyword separator", errs.ErrInvalidTextPayload)
	}

	return &TextData{
		Keyword: string(data[:sep]),
		Text:    string(data[sep+1:]),
	}, nil
}

// DecodeCompressedText decodes a zTXt payload: a keyword, a NUL separator, a
// compression method byte, and the compressed text.
//
// Returns errs.ErrInvalidTextPayload for a malformed layout or a corrupted
// compressed stream, and errs.ErrUnsupportedCompression for a method byte
// other than 0 (deflate).
func DecodeCompressedText(c *chunk.Chunk) (*TextData, error) {
	data := c.Data()

	sep := bytes.IndexByte(data, 0)
	if sep < 0 || sep+1 >= len(data) {
		return nil, fmt.Errorf("%w: missing keyword separator or method byte", errs.ErrInvalidTextPayload)
	}

	method := compress.Method(data[sep+1])
	if method != compress.MethodDeflate {
		return nil, fmt.Errorf("%w: zTXt method %d", errs.ErrUnsupportedCompression, data[sep+1])
	}

	codec, err := compress.GetCodec(method)
	if err != nil {
		return nil, err
	}

	text, err := codec.Decompress(data[sep+2:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTextPayload, err)
	}

	return &TextData{
		Keyword: string(data[:sep]),
		Text:    string(text),
	}, nil
}

// NewTextChunk builds a tEXt chunk carrying keyword and text.
func NewTextChunk(keyword, text string) (*chunk.Chunk, error) {
	tag, err := chunk.TagFromString(TextTag)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(keyword)+1+len(text))
	payload = append(payload, keyword...)
	payload = append(payload, 0)
	payload = append(payload, text...)

	return chunk.New(tag, payload), nil
}

// NewCompressedTextChunk builds a zTXt chunk carrying keyword and text, with
// the text deflated using compression method 0.
func NewCompressedTextChunk(keyword, text string) (*chunk.Chunk, error) {
	tag, err := chunk.TagFromString(CompressedTextTag)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(compress.MethodDeflate)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress([]byte(text))
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(keyword)+2+len(compressed))
	payload = append(payload, keyword...)
	payload = append(payload, 0, byte(compress.MethodDeflate))
	payload = append(payload, compressed...)

	return chunk.New(tag, payload), nil
}

// ChunkText returns a best-effort textual rendering of a chunk's payload.
//
// tEXt and zTXt chunks are decoded to "keyword: text" form; any other chunk
// is rendered as raw UTF-8. Errors follow the underlying decoder.
func ChunkText(c *chunk.Chunk) (string, error) {
	switch c.Tag().String() {
	case TextTag:
		td, err := DecodeText(c)
		if err != nil {
			return "", err
		}

		return td.Keyword + ": " + td.Text, nil
	case CompressedTextTag:
		td, err := DecodeCompressedText(c)
		if err != nil {
			return "", err
		}

		return td.Keyword + ": " + td.Text, nil
	default:
		return c.Text()
	}
}
