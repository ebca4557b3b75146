package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMessagePayloadInterlockScenario is the decode-side message-payload
// interlock scenario: a submit_sm body carrying both a non-empty
// short_message and a message_payload TLV must be rejected on decode.
// SubmitSm.AppendTo now self-heals this combination (effectiveShortMessage
// clears short_message whenever a payload TLV is present), so the
// violating wire bytes are built directly here to exercise decode's own
// enforcement — the shape a non-conforming peer's bytes would take.
func TestMessagePayloadInterlockScenario(t *testing.T) {
	shortMessage, err := NewOctetString([]byte("Short Message"), 0, 254)
	require.NoError(t, err)

	submit := SubmitSm{ShortMessage: shortMessage}
	buf := submit.AppendTo(nil)
	buf = Tlv{Tag: TagMessagePayload, Value: []byte("Message Payload")}.AppendTo(buf)

	_, err = decodeSubmitSm(buf)
	require.ErrorIs(t, err, ErrShortMessageAndPayload)
}

// TestMessagePayloadAloneIsAccepted covers the non-conflicting case where
// short_message is empty and the length carries entirely in the TLV.
func TestMessagePayloadAloneIsAccepted(t *testing.T) {
	submit := SubmitSm{
		Tlvs: []Tlv{{Tag: TagMessagePayload, Value: []byte("Message Payload")}},
	}

	buf := submit.AppendTo(nil)
	got, err := decodeSubmitSm(buf)
	require.NoError(t, err)

	decoded, ok := got.(SubmitSm)
	require.True(t, ok)
	require.Zero(t, decoded.ShortMessage.Length())

	payload, ok := MessagePayload(decoded.Tlvs)
	require.True(t, ok)
	require.Equal(t, "Message Payload", string(payload))
}

// TestShortMessageAloneIsAccepted covers the non-conflicting case where
// message_payload is absent and the message rides in short_message.
func TestShortMessageAloneIsAccepted(t *testing.T) {
	shortMessage, err := NewOctetString([]byte("Short Message"), 0, 254)
	require.NoError(t, err)

	submit := SubmitSm{ShortMessage: shortMessage}
	buf := submit.AppendTo(nil)

	got, err := decodeSubmitSm(buf)
	require.NoError(t, err)
	decoded, ok := got.(SubmitSm)
	require.True(t, ok)
	require.Equal(t, "Short Message", string(decoded.ShortMessage.Bytes()))
	_, ok = MessagePayload(decoded.Tlvs)
	require.False(t, ok)
}

// TestBothAbsentIsAccepted covers the zero-length-message case: neither
// short_message nor message_payload populated is not an interlock
// violation, just an empty message.
func TestBothAbsentIsAccepted(t *testing.T) {
	submit := SubmitSm{}
	buf := submit.AppendTo(nil)

	got, err := decodeSubmitSm(buf)
	require.NoError(t, err)
	decoded, ok := got.(SubmitSm)
	require.True(t, ok)
	require.Zero(t, decoded.ShortMessage.Length())
	_, ok = MessagePayload(decoded.Tlvs)
	require.False(t, ok)
}

func TestCheckMessageInterlockDirect(t *testing.T) {
	nonEmpty, err := NewOctetString([]byte("x"), 0, 254)
	require.NoError(t, err)
	empty, err := NewOctetString(nil, 0, 254)
	require.NoError(t, err)

	payloadTlvs := []Tlv{{Tag: TagMessagePayload, Value: []byte("y")}}

	require.ErrorIs(t, checkMessageInterlock(nonEmpty, payloadTlvs), ErrShortMessageAndPayload)
	require.NoError(t, checkMessageInterlock(empty, payloadTlvs))
	require.NoError(t, checkMessageInterlock(nonEmpty, nil))
	require.NoError(t, checkMessageInterlock(empty, nil))
}
