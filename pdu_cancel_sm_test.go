package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCancelSmRoundTrip(t *testing.T) {
	serviceType, err := NewCOctetString("", 1, 6)
	require.NoError(t, err)
	messageID, err := NewCOctetString("msg-1", 1, 65)
	require.NoError(t, err)
	src, err := NewCOctetString("14155551234", 1, 21)
	require.NoError(t, err)
	dst, err := NewCOctetString("15105551234", 1, 21)
	require.NoError(t, err)

	c := CancelSm{
		ServiceType: serviceType, MessageID: messageID, SourceAddrTon: TonInternational, SourceAddr: src,
		DestAddrTon: TonInternational, DestinationAddr: dst,
	}

	buf := c.AppendTo(nil)
	require.Len(t, buf, c.Length())

	got, err := decodeCancelSm(buf)
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestCancelSmRejectsMessageIDTooLong(t *testing.T) {
	_, err := NewCOctetString(string(make([]byte, 70)), 1, 65)
	var tooMany TooManyBytesError
	require.ErrorAs(t, err, &tooMany)
}
