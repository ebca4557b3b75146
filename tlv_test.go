package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTlvRoundTrip(t *testing.T) {
	tlv := Tlv{Tag: TagReceiptedMessageID, Value: []byte("123456")}
	buf := tlv.AppendTo(nil)
	require.Len(t, buf, tlv.Length())

	got, n, err := decodeTlv(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, tlv, got)
}

func TestTlvUnknownTagPreservedVerbatim(t *testing.T) {
	tlv := Tlv{Tag: TlvTag(0xBEEF), Value: []byte{0xAA, 0xBB}}
	buf := tlv.AppendTo(nil)
	got, _, err := decodeTlv(buf)
	require.NoError(t, err)
	require.Equal(t, TlvTag(0xBEEF), got.Tag)
	require.Equal(t, []byte{0xAA, 0xBB}, got.Value)
	require.Contains(t, got.Tag.String(), "unknown")
}

func TestTlvListRoundTrip(t *testing.T) {
	tlvs := []Tlv{
		{Tag: TagUserMessageReference, Value: []byte{0x00, 0x01}},
		{Tag: TagReceiptedMessageID, Value: []byte("7")},
	}
	buf := encodeTlvList(nil, tlvs)
	require.Len(t, buf, tlvListLength(tlvs))

	got, err := decodeTlvList(buf, maxTlvCount, "test")
	require.NoError(t, err)
	require.Equal(t, tlvs, got)
}

func TestDecodeTlvListRejectsTooManyElements(t *testing.T) {
	var tlvs []Tlv
	for i := 0; i < 3; i++ {
		tlvs = append(tlvs, Tlv{Tag: TagUserMessageReference, Value: []byte{byte(i)}})
	}
	buf := encodeTlvList(nil, tlvs)
	_, err := decodeTlvList(buf, 2, "test")
	var tooMany TooManyElementsError
	require.ErrorAs(t, err, &tooMany)
	require.Equal(t, 2, tooMany.Max)
}

func TestDecodeTlvTooFewBytesForValue(t *testing.T) {
	buf := []byte{0x02, 0x10, 0x00, 0x05, 0x01} // claims a 5-byte value, only 1 present
	_, _, err := decodeTlv(buf)
	var tooFew TooFewBytesError
	require.ErrorAs(t, err, &tooFew)
}

func TestGetFindsFirstMatchingTag(t *testing.T) {
	tlvs := []Tlv{
		{Tag: TagReceiptedMessageID, Value: []byte("1")},
		{Tag: TagReceiptedMessageID, Value: []byte("2")},
	}
	got, ok := Get(tlvs, TagReceiptedMessageID)
	require.True(t, ok)
	require.Equal(t, []byte("1"), got.Value)

	_, ok = Get(tlvs, TagMessagePayload)
	require.False(t, ok)
}
