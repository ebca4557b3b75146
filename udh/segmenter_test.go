package udh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentFitsInSinglePart(t *testing.T) {
	s := NewSegmenter()
	msg := []byte("short enough")
	parts, err := s.Segment(msg, AlphabetOctet, 160)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	require.Nil(t, parts[0].Reference8)
	require.Equal(t, msg, parts[0].Body)
}

func TestSegmentSplitsOctetMessage(t *testing.T) {
	s := NewSegmenter()
	msg := make([]byte, 400)
	for i := range msg {
		msg[i] = byte(i)
	}
	parts, err := s.Segment(msg, AlphabetOctet, 160)
	require.NoError(t, err)
	require.Greater(t, len(parts), 1)

	var reassembled []byte
	for i, p := range parts {
		require.NotNil(t, p.Reference8)
		require.EqualValues(t, i+1, p.Reference8.PartNumber)
		require.EqualValues(t, len(parts), p.Reference8.TotalParts)
		reassembled = append(reassembled, p.Body...)
	}
	require.Equal(t, msg, reassembled)
}

func TestSegmentDoesNotSplitGSM7Escape(t *testing.T) {
	s := NewSegmenter()
	msg := make([]byte, 153)
	for i := range msg {
		msg[i] = 'A'
	}
	// place an escape pair straddling where a naive split at offset bs
	// (153 minus the 6-byte UDH = 147) would land, to exercise the
	// boundary-avoidance logic.
	msg[146] = 0x1B
	msg[147] = 0x65        // '€' extension byte
	msg = append(msg, 'A') // one byte over maxPartLen forces a split

	parts, err := s.Segment(msg, AlphabetGSM7, 153)
	require.NoError(t, err)
	for _, p := range parts {
		if len(p.Body) > 0 && p.Body[len(p.Body)-1] == 0x1B {
			t.Fatalf("escape byte split from its extension byte at chunk boundary")
		}
	}
}

func TestSegmentRejectsTooManyParts(t *testing.T) {
	s := NewSegmenter()
	msg := make([]byte, 256*150)
	_, err := s.Segment(msg, AlphabetOctet, 153)
	require.ErrorIs(t, err, ErrTooManyParts)
}

func TestSegmentUsesDistinctReferencesAcrossCalls(t *testing.T) {
	s := NewSegmenter()
	msg := make([]byte, 400)
	parts1, err := s.Segment(msg, AlphabetOctet, 160)
	require.NoError(t, err)
	parts2, err := s.Segment(msg, AlphabetOctet, 160)
	require.NoError(t, err)
	require.NotEqual(t, parts1[0].Reference8.Reference, parts2[0].Reference8.Reference)
}

// TestEightBitSegmentationFixture exercises the literal segmentation
// scenario: an 18-byte ASCII message, a 16-byte max part size, a 6-byte
// 8-bit-reference UDH, reference 7, splits into two parts whose UDH
// prefixes and bodies match exactly.
func TestEightBitSegmentationFixture(t *testing.T) {
	msg := []byte("123456789123456789"[:18])
	chunks := chunkOctet(msg, 16-6)
	require.Equal(t, [][]byte{[]byte("1234567891"), []byte("23456789")}, chunks)

	part1, err := NewConcatenatedShortMessage8Bit(7, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{0x05, 0x00, 0x03, 0x07, 0x02, 0x01}, part1.AppendUDH(nil))

	part2, err := NewConcatenatedShortMessage8Bit(7, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{0x05, 0x00, 0x03, 0x07, 0x02, 0x02}, part2.AppendUDH(nil))
}

func TestSegmentWith16BitReference(t *testing.T) {
	s := NewSegmenter(With16BitReference)
	msg := make([]byte, 400)
	parts, err := s.Segment(msg, AlphabetOctet, 160)
	require.NoError(t, err)
	for _, p := range parts {
		require.NotNil(t, p.Reference16)
		require.Nil(t, p.Reference8)
	}
}
