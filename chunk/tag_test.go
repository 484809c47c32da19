package chunk

import (
	"testing"

	"github.com/arloliu/pngstash/errs"
	"github.com/stretchr/testify/require"
)

func TestTagFromBytes(t *testing.T) {
	t.Run("Valid bytes", func(t *testing.T) {
		tag, err := TagFromBytes([]byte{82, 117, 83, 116})

		require.NoError(t, err)
		require.Equal(t, "RuSt", tag.String())
		require.Equal(t, [4]byte{'R', 'u', 'S', 't'}, tag.Bytes())
	})

	t.Run("Non-letter byte", func(t *testing.T) {
		_, err := TagFromBytes([]byte{'R', 'u', '1', 't'})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTagBytes)
	})

	t.Run("Wrong length", func(t *testing.T) {
		_, err := TagFromBytes([]byte{'R', 'u', 'S'})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTagLength)
	})
}

func TestTagFromString(t *testing.T) {
	t.Run("All letter cases accepted", func(t *testing.T) {
		for _, s := range []string{"RuSt", "IHDR", "tEXt", "abcd", "WXYZ", "zzzz"} {
			tag, err := TagFromString(s)

			require.NoError(t, err)
			require.Equal(t, s, tag.String())
		}
	})

	t.Run("Digit rejected", func(t *testing.T) {
		_, err := TagFromString("Ru1t")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTagBytes)
	})

	t.Run("Symbol rejected", func(t *testing.T) {
		_, err := TagFromString("Ru!t")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTagBytes)
	})

	t.Run("Too short", func(t *testing.T) {
		_, err := TagFromString("RuS")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTagLength)
	})

	t.Run("Too long", func(t *testing.T) {
		_, err := TagFromString("RuStY")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTagLength)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := TagFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTagLength)
	})
}

func TestTagProperties(t *testing.T) {
	mustTag := func(s string) Tag {
		tag, err := TagFromString(s)
		require.NoError(t, err)

		return tag
	}

	t.Run("Critical", func(t *testing.T) {
		require.True(t, mustTag("RuSt").IsCritical())
		require.False(t, mustTag("ruSt").IsCritical())
	})

	t.Run("Public", func(t *testing.T) {
		require.True(t, mustTag("RUSt").IsPublic())
		require.False(t, mustTag("RuSt").IsPublic())
	})

	t.Run("Reserved bit", func(t *testing.T) {
		require.True(t, mustTag("RuSt").IsReservedBitValid())
		require.False(t, mustTag("Rust").IsReservedBitValid())
	})

	t.Run("Safe to copy", func(t *testing.T) {
		require.True(t, mustTag("RuSt").IsSafeToCopy())
		require.False(t, mustTag("RuST").IsSafeToCopy())
	})

	t.Run("Valid", func(t *testing.T) {
		require.True(t, mustTag("RuSt").IsValid())
		require.False(t, mustTag("Rust").IsValid())
	})
}

func TestTagOrdering(t *testing.T) {
	a, err := TagFromString("IDAT")
	require.NoError(t, err)
	b, err := TagFromString("IEND")
	require.NoError(t, err)

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))

	other, err := TagFromString("IDAT")
	require.NoError(t, err)
	require.True(t, a == other)
}
