package balanced_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/balanced"
)

func TestParse(t *testing.T) {
	t.Run("valid max", func(t *testing.T) {
		got, err := balanced.Parse[int8]("127", 10)
		require.NoError(t, err)
		assert.Equal(t, balanced.MaxInt8, got)
	})

	t.Run("valid min", func(t *testing.T) {
		got, err := balanced.Parse[int8]("-127", 10)
		require.NoError(t, err)
		assert.Equal(t, balanced.MinInt8, got)
	})

	t.Run("base prefix", func(t *testing.T) {
		got, err := balanced.Parse[int16]("-0x7fff", 0)
		require.NoError(t, err)
		assert.Equal(t, balanced.MinInt16, got)
	})

	t.Run("binary", func(t *testing.T) {
		got, err := balanced.Parse[int32]("-101", 2)
		require.NoError(t, err)
		assert.Equal(t, int32(-5), got.Get())
	})

	t.Run("excluded minimum", func(t *testing.T) {
		_, err := balanced.Parse[int8]("-128", 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, balanced.ErrExcludedMinimum)

		var oor *balanced.ErrOutOfRange
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, int64(-128), oor.Value)
		assert.Equal(t, 8, oor.Bits)
	})

	t.Run("excluded minimum int64", func(t *testing.T) {
		_, err := balanced.Parse[int64]("-9223372036854775808", 10)
		assert.ErrorIs(t, err, balanced.ErrExcludedMinimum)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := balanced.Parse[int8]("128", 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrRange)
		assert.NotErrorIs(t, err, balanced.ErrExcludedMinimum)

		var pe *balanced.ErrParse
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "128", pe.Input)
		assert.Equal(t, 10, pe.Base)
	})

	t.Run("hex bit pattern is not accepted", func(t *testing.T) {
		// Parse reads signed text; the output of %x does not round-trip for negatives.
		_, err := balanced.Parse[int8]("81", 16)
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("syntax", func(t *testing.T) {
		_, err := balanced.Parse[int32]("twelve", 10)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
		assert.Contains(t, err.Error(), `parse "twelve" (base 10)`)
	})
}

func TestParse_RoundTripDecimal(t *testing.T) {
	for i := -127; i <= 127; i++ {
		b := balanced.MustNew(int8(i))
		got, err := balanced.Parse[int8](b.String(), 10)
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}

func TestErrOutOfRange_Unwrap(t *testing.T) {
	_, err := balanced.FromInt64[int8](300)

	var oor *balanced.ErrOutOfRange
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, "value 300 out of balanced int8 range", oor.Error())
	assert.NotNil(t, errors.Unwrap(err))
	assert.False(t, errors.Is(err, balanced.ErrExcludedMinimum))
}
