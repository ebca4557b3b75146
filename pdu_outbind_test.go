package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutbindRoundTrip(t *testing.T) {
	systemID, err := NewCOctetString("MC1", 1, 16)
	require.NoError(t, err)
	password, err := NewCOctetString("secret", 1, 9)
	require.NoError(t, err)

	o := Outbind{SystemID: systemID, Password: password}
	buf := o.AppendTo(nil)
	require.Len(t, buf, o.Length())

	got, err := decodeOutbind(buf)
	require.NoError(t, err)
	require.Equal(t, o, got)
}

// TestOutboundStatePermitsBindTransceiverOnly exercises the session-state
// side of outbind: the ESME replies to an MC-initiated outbind with a
// bind_transceiver (or transmitter/receiver), not a resend of outbind.
func TestOutboundStatePermitsBindTransceiverOnly(t *testing.T) {
	require.True(t, Open.CanReceiveAsEsme(OutbindID))
	require.True(t, Outbound.CanSendAsEsme(BindTransceiverID))
}
