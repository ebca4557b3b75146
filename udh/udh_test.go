package udh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcatenatedShortMessage8BitRoundTrip(t *testing.T) {
	c, err := NewConcatenatedShortMessage8Bit(7, 3, 2)
	require.NoError(t, err)

	full := c.AppendUDH(nil)
	require.Equal(t, []byte{0x05, 0x00, 0x03, 0x07, 0x03, 0x02}, full)

	got, n, err := DecodeConcatenatedShortMessage8Bit(full[2:])
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, c, got)
}

func TestConcatenatedShortMessage8BitInvariants(t *testing.T) {
	_, err := NewConcatenatedShortMessage8Bit(1, 0, 1)
	require.ErrorIs(t, err, ErrTotalPartsZero)

	_, err = NewConcatenatedShortMessage8Bit(1, 3, 0)
	require.ErrorIs(t, err, ErrPartNumberZero)

	_, err = NewConcatenatedShortMessage8Bit(1, 3, 4)
	var target PartNumberExceedsTotalPartsError
	require.ErrorAs(t, err, &target)
}

func TestConcatenatedShortMessage16BitRoundTrip(t *testing.T) {
	c, err := NewConcatenatedShortMessage16Bit(0x1234, 5, 1)
	require.NoError(t, err)

	full := c.AppendUDH(nil)
	require.Equal(t, []byte{0x06, 0x08, 0x04, 0x12, 0x34, 0x05, 0x01}, full)

	got, n, err := DecodeConcatenatedShortMessage16Bit(full[2:])
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, c, got)
}

func TestDecodeConcatenatedShortMessage8BitTooFewBytes(t *testing.T) {
	_, _, err := DecodeConcatenatedShortMessage8Bit([]byte{0x03, 0x01})
	require.ErrorIs(t, err, ErrTooFewBytes)
}

func TestDecodeConcatenatedShortMessage8BitBadIEDataLength(t *testing.T) {
	_, _, err := DecodeConcatenatedShortMessage8Bit([]byte{0x04, 0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrInvalidIEDataLength)
}
