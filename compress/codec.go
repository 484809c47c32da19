package compress

import (
	"fmt"

	"github.com/arloliu/pngstash/errs"
)

// Method identifies a compression method as stored in a zTXt chunk's method
// byte.
type Method uint8

const (
	// MethodDeflate is a deflate stream with the zlib wrapper, the only
	// method the PNG format defines (method byte 0).
	MethodDeflate Method = 0

	// MethodNone bypasses compression. It never appears on the wire; it
	// exists for tests and for payloads that are already raw.
	MethodNone Method = 0xFF
)

// String returns a human-readable name for the method.
func (m Method) String() string {
	switch m {
	case MethodDeflate:
		return "deflate"
	case MethodNone:
		return "none"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// Compressor compresses a payload into its wire representation.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	// The returned slice is owned by the caller; the input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers the original payload from its wire representation.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	// Returns an error if the data is corrupted or uses a different format.
	// The returned slice is owned by the caller; the input is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Method]Codec{
	MethodDeflate: NewZlibCodec(),
	MethodNone:    NewNoOpCodec(),
}

// GetCodec retrieves the built-in Codec for the specified method.
//
// Returns errs.ErrUnsupportedCompression for a method the format does not
// define.
func GetCodec(method Method) (Codec, error) {
	if codec, ok := builtinCodecs[method]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, method)
}
