package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuerySmRoundTrip(t *testing.T) {
	messageID, err := NewCOctetString("msg-1", 1, 65)
	require.NoError(t, err)
	src, err := NewCOctetString("14155551234", 1, 21)
	require.NoError(t, err)

	q := QuerySm{MessageID: messageID, SourceAddrTon: TonInternational, SourceAddr: src}
	buf := q.AppendTo(nil)
	require.Len(t, buf, q.Length())

	got, err := decodeQuerySm(buf)
	require.NoError(t, err)
	require.Equal(t, q, got)
}

func TestQuerySmResponseRoundTrip(t *testing.T) {
	messageID, err := NewCOctetString("msg-1", 1, 65)
	require.NoError(t, err)
	finalDate, err := NewEmptyOrFullCOctetString("260730123000000+", 17)
	require.NoError(t, err)

	resp := QuerySmResponse{
		MessageID: messageID, FinalDate: finalDate,
		MessageState: MessageStateDelivered, ErrorCode: 0,
	}

	buf := resp.AppendTo(nil)
	require.Len(t, buf, resp.Length())

	got, err := decodeQuerySmResponse(buf)
	require.NoError(t, err)
	require.Equal(t, resp, got)
}

func TestQuerySmResponseRoundTripEmptyFinalDate(t *testing.T) {
	messageID, err := NewCOctetString("msg-1", 1, 65)
	require.NoError(t, err)
	finalDate, err := NewEmptyOrFullCOctetString("", 17)
	require.NoError(t, err)

	resp := QuerySmResponse{MessageID: messageID, FinalDate: finalDate, MessageState: MessageStateEnroute}
	buf := resp.AppendTo(nil)

	got, err := decodeQuerySmResponse(buf)
	require.NoError(t, err)
	require.Equal(t, resp, got)
}
