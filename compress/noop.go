package compress

// NoOpCodec bypasses compression and returns its input unchanged.
//
// It never corresponds to a wire-format method byte; it exists for tests and
// for call sites that treat raw and compressed payloads uniformly.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a new no-op codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is without copying.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
