package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSubmitMultiCountedDestAddresses is property 6 applied to submit_multi:
// number_of_dests is never stored, only derived from len(DestAddresses) on
// encode and reconstructed from the wire count on decode.
func TestSubmitMultiCountedDestAddresses(t *testing.T) {
	addr1, err := NewCOctetString("111", 1, 21)
	require.NoError(t, err)
	addr2, err := NewCOctetString("222", 1, 21)
	require.NoError(t, err)
	list, err := NewCOctetString("mylist", 1, 21)
	require.NoError(t, err)

	s := SubmitMulti{
		DestAddresses: []DestAddress{
			{Flag: DestFlagSmeAddress, SmeAddress: Address{Addr: addr1}},
			{Flag: DestFlagSmeAddress, SmeAddress: Address{Addr: addr2}},
			{Flag: DestFlagDistributionList, DistributionList: list},
		},
	}

	buf := s.AppendTo(nil)
	require.Len(t, buf, s.Length())
	numDestsByte := buf[1+1+1+s.SourceAddr.Length()]
	require.EqualValues(t, 3, numDestsByte)

	got, err := decodeSubmitMulti(buf)
	require.NoError(t, err)
	decoded, ok := got.(SubmitMulti)
	require.True(t, ok)
	require.Len(t, decoded.DestAddresses, 3)
	require.Equal(t, s.DestAddresses, decoded.DestAddresses)
}

func TestSubmitMultiRejectsTruncatedDestList(t *testing.T) {
	buf := []byte{0x00} // service_type terminator
	buf = append(buf, 0x00, 0x00)
	sourceAddr, err := NewCOctetString("", 1, 21)
	require.NoError(t, err)
	buf = sourceAddr.AppendTo(buf)
	buf = append(buf, 255, 0) // numDests=255 claimed, no destination bytes follow

	_, err = decodeSubmitMulti(buf)
	var tooFew TooFewBytesError
	require.ErrorAs(t, err, &tooFew)
}

// SubmitMulti.AppendTo self-heals a conflicting short_message/message_payload
// combination (effectiveShortMessage clears short_message whenever a
// payload TLV is present), so the violating bytes are built directly here
// to exercise decode's own enforcement, as a non-conforming peer's wire
// bytes would look.
func TestSubmitMultiEnforcesMessageInterlock(t *testing.T) {
	msg, err := NewOctetString([]byte("short"), 0, 254)
	require.NoError(t, err)
	s := SubmitMulti{ShortMessage: msg}
	buf := s.AppendTo(nil)
	buf = Tlv{Tag: TagMessagePayload, Value: []byte("payload")}.AppendTo(buf)

	_, err = decodeSubmitMulti(buf)
	require.ErrorIs(t, err, ErrShortMessageAndPayload)
}

func TestSubmitMultiResponseCountedUnsuccessSmes(t *testing.T) {
	messageID, err := NewCOctetString("msg-1", 1, 65)
	require.NoError(t, err)
	addr, err := NewCOctetString("111", 1, 21)
	require.NoError(t, err)

	resp := SubmitMultiResponse{
		MessageID: messageID,
		UnsuccessSmes: []UnsuccessSme{
			{Addr: Address{Addr: addr}, Status: EsmeRInvDstAdr},
		},
	}

	buf := resp.AppendTo(nil)
	require.Len(t, buf, resp.Length())

	got, err := decodeSubmitMultiResponse(buf)
	require.NoError(t, err)
	decoded, ok := got.(SubmitMultiResponse)
	require.True(t, ok)
	require.Len(t, decoded.UnsuccessSmes, 1)
	require.Equal(t, resp.UnsuccessSmes, decoded.UnsuccessSmes)
}
