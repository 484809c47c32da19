package pngstash

import (
	"testing"

	"github.com/arloliu/pngstash/chunk"
	"github.com/arloliu/pngstash/errs"
	"github.com/arloliu/pngstash/png"
	"github.com/stretchr/testify/require"
)

func testStream(t *testing.T) []byte {
	t.Helper()

	tag, err := chunk.TagFromString("IHDR")
	require.NoError(t, err)

	return png.FromChunks([]*chunk.Chunk{chunk.New(tag, []byte{1, 2, 3})}).Bytes()
}

func TestEncodeDecodeMessage(t *testing.T) {
	src := testStream(t)

	out, err := EncodeMessage(src, "ruSt", "my secret")
	require.NoError(t, err)
	require.Greater(t, len(out), len(src))

	msg, found, err := DecodeMessage(out, "ruSt")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "my secret", msg)
}

func TestDecodeMessageNotFound(t *testing.T) {
	msg, found, err := DecodeMessage(testStream(t), "NoPe")

	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, msg)
}

func TestEncodeMessageErrors(t *testing.T) {
	t.Run("Bad signature", func(t *testing.T) {
		_, err := EncodeMessage([]byte("not a png"), "ruSt", "msg")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBadSignature)
	})

	t.Run("Bad tag", func(t *testing.T) {
		_, err := EncodeMessage(testStream(t), "toolong", "msg")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTagLength)
	})
}
