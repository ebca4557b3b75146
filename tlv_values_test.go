package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScInterfaceVersionNormalizesOnRead(t *testing.T) {
	tlvs := []Tlv{{Tag: TagScInterfaceVersion, Value: []byte{0x22}}}
	v, ok := ScInterfaceVersion(tlvs)
	require.True(t, ok)
	require.Equal(t, Smpp3_3OrEarlier, v)
}

func TestScInterfaceVersionAbsent(t *testing.T) {
	_, ok := ScInterfaceVersion(nil)
	require.False(t, ok)
}

func TestSarMsgRefNumValue(t *testing.T) {
	tlvs := []Tlv{{Tag: TagSarMsgRefNum, Value: []byte{0x01, 0x02}}}
	v, ok := SarMsgRefNum(tlvs)
	require.True(t, ok)
	require.EqualValues(t, 0x0102, v)
}

func TestSarTotalSegmentsAndSeqnum(t *testing.T) {
	tlvs := []Tlv{
		{Tag: TagSarTotalSegments, Value: []byte{3}},
		{Tag: TagSarSegmentSeqnum, Value: []byte{2}},
	}
	total, ok := SarTotalSegments(tlvs)
	require.True(t, ok)
	require.EqualValues(t, 3, total)

	seq, ok := SarSegmentSeqnum(tlvs)
	require.True(t, ok)
	require.EqualValues(t, 2, seq)
}

func TestMessagePayloadValue(t *testing.T) {
	tlvs := []Tlv{{Tag: TagMessagePayload, Value: []byte("hello")}}
	v, ok := MessagePayload(tlvs)
	require.True(t, ok)
	require.Equal(t, "hello", string(v))
}

func TestMsAvailabilityStatusValue(t *testing.T) {
	tlvs := []Tlv{{Tag: TagMsAvailabilityStatus, Value: []byte{byte(MsUnavailable)}}}
	v, ok := MsAvailabilityStatusValue(tlvs)
	require.True(t, ok)
	require.Equal(t, MsUnavailable, v)
}

func TestBroadcastAreaIdentifierValue(t *testing.T) {
	area := BroadcastAreaIdentifier{Format: BroadcastAreaFormatEllipsoidArc, Area: AnyOctetString("arc")}
	tlvs := []Tlv{{Tag: TagBroadcastAreaIdentifier, Value: area.AppendTo(nil)}}

	got, ok, err := BroadcastAreaIdentifierValue(tlvs)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, area, got)
}

func TestBroadcastAreaIdentifierValueAbsent(t *testing.T) {
	_, ok, err := BroadcastAreaIdentifierValue(nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReceiptedMessageIDValue(t *testing.T) {
	tlvs := []Tlv{{Tag: TagReceiptedMessageID, Value: []byte("msg-1")}}
	v, ok := ReceiptedMessageID(tlvs)
	require.True(t, ok)
	require.Equal(t, "msg-1", v)
}

func TestMessageStateValue(t *testing.T) {
	tlvs := []Tlv{{Tag: TagMessageState, Value: []byte{byte(MessageStateExpired)}}}
	v, ok := MessageStateValue(tlvs)
	require.True(t, ok)
	require.Equal(t, MessageStateExpired, v)
}

func TestNetworkErrorCodeValue(t *testing.T) {
	tlvs := []Tlv{{Tag: TagNetworkErrorCode, Value: []byte{0x03, 0x00, 0x01}}}
	v, ok := NetworkErrorCodeValue(tlvs)
	require.True(t, ok)
	require.Equal(t, AnyOctetString([]byte{0x03, 0x00, 0x01}), v)
}
