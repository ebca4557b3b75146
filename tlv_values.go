package smppd

// Typed accessors over a []Tlv for the handful of TLVs whose value has
// interesting internal structure (as opposed to a plain integer or raw
// octet string). Grounded on the teacher's Setter/Getter-over-*Message
// pattern (helpers.go / addr.go's AddTo/GetFrom) generalized to
// Tlv-over-[]Tlv instead of Attribute-over-*Message.

// ScInterfaceVersion returns the sc_interface_version TLV value, if
// present. Some MCs observed in the field (melrose labs SMSC simulator
// integration notes, supplemented from original_source/) send this TLV as
// a bare single byte with no further structure even when the value falls
// outside the known version table; NormalizeInterfaceVersion already folds
// anything below 0x34 so this never fails to decode.
func ScInterfaceVersion(tlvs []Tlv) (InterfaceVersion, bool) {
	t, ok := Get(tlvs, TagScInterfaceVersion)
	if !ok || len(t.Value) < 1 {
		return 0, false
	}
	return NormalizeInterfaceVersion(t.Value[0]), true
}

// SarMsgRefNum returns the sar_msg_ref_num TLV value.
func SarMsgRefNum(tlvs []Tlv) (uint16, bool) {
	t, ok := Get(tlvs, TagSarMsgRefNum)
	if !ok || len(t.Value) < 2 {
		return 0, false
	}
	return bin.Uint16(t.Value), true
}

// SarTotalSegments returns the sar_total_segments TLV value.
func SarTotalSegments(tlvs []Tlv) (uint8, bool) {
	t, ok := Get(tlvs, TagSarTotalSegments)
	if !ok || len(t.Value) < 1 {
		return 0, false
	}
	return t.Value[0], true
}

// SarSegmentSeqnum returns the sar_segment_seqnum TLV value.
func SarSegmentSeqnum(tlvs []Tlv) (uint8, bool) {
	t, ok := Get(tlvs, TagSarSegmentSeqnum)
	if !ok || len(t.Value) < 1 {
		return 0, false
	}
	return t.Value[0], true
}

// MessagePayload returns the message_payload TLV value.
func MessagePayload(tlvs []Tlv) (AnyOctetString, bool) {
	t, ok := Get(tlvs, TagMessagePayload)
	if !ok {
		return nil, false
	}
	return AnyOctetString(t.Value), true
}

// MsAvailabilityStatusValue returns the ms_availability_status TLV value.
func MsAvailabilityStatusValue(tlvs []Tlv) (MsAvailabilityStatus, bool) {
	t, ok := Get(tlvs, TagMsAvailabilityStatus)
	if !ok || len(t.Value) < 1 {
		return 0, false
	}
	return MsAvailabilityStatus(t.Value[0]), true
}

// BroadcastAreaIdentifierValue returns the broadcast_area_identifier TLV
// value, decoded into its Format/Area components.
func BroadcastAreaIdentifierValue(tlvs []Tlv) (BroadcastAreaIdentifier, bool, error) {
	t, ok := Get(tlvs, TagBroadcastAreaIdentifier)
	if !ok {
		return BroadcastAreaIdentifier{}, false, nil
	}
	v, err := decodeBroadcastAreaIdentifier(t.Value)
	return v, true, err
}

// BroadcastAreaSuccessValue returns the broadcast_area_success TLV value.
func BroadcastAreaSuccessValue(tlvs []Tlv) (BroadcastAreaSuccess, bool) {
	t, ok := Get(tlvs, TagBroadcastAreaSuccess)
	if !ok || len(t.Value) < 1 {
		return 0, false
	}
	return BroadcastAreaSuccess(t.Value[0]), true
}

// NetworkErrorCodeValue returns the raw 3-byte network_error_code TLV value
// (network_type, error_code high byte, error_code low byte — SMPP 5.0
// §4.8.4.35 leaves the inner two bytes network-specific, so they are
// surfaced as AnyOctetString rather than further decoded).
func NetworkErrorCodeValue(tlvs []Tlv) (AnyOctetString, bool) {
	t, ok := Get(tlvs, TagNetworkErrorCode)
	if !ok {
		return nil, false
	}
	return AnyOctetString(t.Value), true
}

// ReceiptedMessageID returns the receipted_message_id TLV value.
func ReceiptedMessageID(tlvs []Tlv) (string, bool) {
	t, ok := Get(tlvs, TagReceiptedMessageID)
	if !ok {
		return "", false
	}
	return string(t.Value), true
}

// MessageStateValue returns the message_state TLV value.
func MessageStateValue(tlvs []Tlv) (MessageState, bool) {
	t, ok := Get(tlvs, TagMessageState)
	if !ok || len(t.Value) < 1 {
		return 0, false
	}
	return MessageState(t.Value[0]), true
}
