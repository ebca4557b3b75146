package smppd

// ErrShortMessageAndPayload is returned when a PDU body carries both a
// non-empty short_message and a message_payload TLV. SMPP 5.0 §4.8.4.27
// (and the invariant restated in spec.md §3) permits at most one of the
// two message-carrying fields to be populated: the short form for
// messages up to 254 octets, the TLV form ("interlock") for longer ones.
const ErrShortMessageAndPayload Error = "smppd: short_message and message_payload TLV are mutually exclusive"

// checkMessageInterlock enforces the short_message/message_payload
// interlock on decode. It does not reject short_message == "" with
// message_payload absent (both legitimately absent means a zero-length
// message), only the case where both are simultaneously populated.
func checkMessageInterlock(shortMessage OctetString, tlvs []Tlv) error {
	if shortMessage.Length() > 0 {
		if _, ok := MessagePayload(tlvs); ok {
			return ErrShortMessageAndPayload
		}
	}
	return nil
}

// maxShortMessageLen is the maximum short_message length expressible via
// the single-byte sm_length field; longer payloads must use the
// message_payload TLV instead.
const maxShortMessageLen = 254

// setShortMessage implements the short_message mutator shared by every
// message-carrying PDU (SubmitSm, DeliverSm, SubmitMulti, ReplaceSm): msg
// is stored only if no message_payload TLV is already present, otherwise
// the field is forced back to empty. The returned bool reports whether msg
// actually stuck (false = no-op), mirroring rusmpp-core's
// set_short_message/clear_short_message_if_message_payload_exists pair.
func setShortMessage(msg OctetString, tlvs []Tlv) (OctetString, bool) {
	if _, ok := MessagePayload(tlvs); ok {
		return OctetString{}, false
	}
	return msg, true
}

// setMessagePayload implements the message_payload mutator shared by every
// message-carrying PDU: it upserts the message_payload TLV (or removes it,
// when payload is nil), and reports whether short_message must now be
// cleared to preserve the interlock.
func setMessagePayload(tlvs []Tlv, payload []byte) ([]Tlv, bool) {
	if payload == nil {
		return removeTlv(tlvs, TagMessagePayload), false
	}
	return upsertTlv(tlvs, TagMessagePayload, payload), true
}

// effectiveShortMessage is what AppendTo actually puts on the wire: empty
// whenever a message_payload TLV is present, regardless of how the
// struct's ShortMessage field was populated. This keeps a hand-built value
// (one that skipped SetShortMessage/SetMessagePayload) from ever encoding
// both halves of the interlock at once.
func effectiveShortMessage(shortMessage OctetString, tlvs []Tlv) OctetString {
	if _, ok := MessagePayload(tlvs); ok {
		return OctetString{}
	}
	return shortMessage
}
