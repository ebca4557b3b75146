package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplaceSmRoundTrip(t *testing.T) {
	messageID, err := NewCOctetString("msg-1", 1, 65)
	require.NoError(t, err)
	src, err := NewCOctetString("14155551234", 1, 21)
	require.NoError(t, err)
	schedule, err := NewEmptyOrFullCOctetString("", 17)
	require.NoError(t, err)
	validity, err := NewEmptyOrFullCOctetString("", 17)
	require.NoError(t, err)
	msg, err := NewOctetString([]byte("replacement text"), 0, 254)
	require.NoError(t, err)

	r := ReplaceSm{
		MessageID: messageID, SourceAddrTon: TonInternational, SourceAddr: src,
		ScheduleDeliveryTime: schedule, ValidityPeriod: validity, ShortMessage: msg,
	}

	buf := r.AppendTo(nil)
	require.Len(t, buf, r.Length())

	got, err := decodeReplaceSm(buf)
	require.NoError(t, err)
	require.Equal(t, r, got)
}

func TestReplaceSmResponseRoundTrip(t *testing.T) {
	cmd := NewCommand(ReplaceSMRespID, EsmeROk, 7, nil)
	buf := cmd.AppendTo(nil)
	decoded, err := ReadCommand(buf)
	require.NoError(t, err)
	require.Equal(t, ReplaceSMRespID, decoded.ID)
	require.Nil(t, decoded.Body)
}

func TestReplaceSmRejectsTagForeignToContext(t *testing.T) {
	messageID, err := NewCOctetString("msg-1", 1, 65)
	require.NoError(t, err)
	src, err := NewCOctetString("14155551234", 1, 21)
	require.NoError(t, err)
	schedule, err := NewEmptyOrFullCOctetString("", 17)
	require.NoError(t, err)
	validity, err := NewEmptyOrFullCOctetString("", 17)
	require.NoError(t, err)

	r := ReplaceSm{
		MessageID: messageID, SourceAddrTon: TonInternational, SourceAddr: src,
		ScheduleDeliveryTime: schedule, ValidityPeriod: validity,
		Tlvs: []Tlv{{Tag: TagBillingIdentification, Value: []byte{0x00}}},
	}
	buf := r.AppendTo(nil)

	_, err = decodeReplaceSm(buf)
	var unsupported UnsupportedKeyError
	require.ErrorAs(t, err, &unsupported)
}

// TestReplaceSmMessagePayloadScenario is spec.md's literal end-to-end
// scenario 2: build a ReplaceSm with short_message set, then set
// message_payload — the encoded body must carry the payload TLV and no
// short_message bytes.
func TestReplaceSmMessagePayloadScenario(t *testing.T) {
	messageID, err := NewCOctetString("msg-1", 1, 65)
	require.NoError(t, err)
	src, err := NewCOctetString("14155551234", 1, 21)
	require.NoError(t, err)
	schedule, err := NewEmptyOrFullCOctetString("", 17)
	require.NoError(t, err)
	validity, err := NewEmptyOrFullCOctetString("", 17)
	require.NoError(t, err)
	shortMessage, err := NewOctetString([]byte("Short Message"), 0, 254)
	require.NoError(t, err)

	r := ReplaceSm{
		MessageID: messageID, SourceAddrTon: TonInternational, SourceAddr: src,
		ScheduleDeliveryTime: schedule, ValidityPeriod: validity,
	}
	r.SetShortMessage(shortMessage)
	r.SetMessagePayload([]byte("Message Payload"))

	require.Equal(t, OctetString{}, r.ShortMessage)
	require.Equal(t, 0, r.ShortMessage.Length())

	buf := r.AppendTo(nil)
	got, err := decodeReplaceSm(buf)
	require.NoError(t, err)
	decoded := got.(ReplaceSm)
	require.Equal(t, 0, decoded.ShortMessage.Length())
	payload, ok := MessagePayload(decoded.Tlvs)
	require.True(t, ok)
	require.Equal(t, "Message Payload", string(payload))

	// Setting short_message again is a no-op while the payload is present.
	ok = r.SetShortMessage(shortMessage)
	require.False(t, ok)
	require.Equal(t, 0, r.ShortMessage.Length())

	// Clearing the payload restores normal short_message semantics.
	r.SetMessagePayload(nil)
	ok = r.SetShortMessage(shortMessage)
	require.True(t, ok)
	require.Equal(t, shortMessage, r.ShortMessage)
}
