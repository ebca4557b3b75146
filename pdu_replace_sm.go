package smppd

// ReplaceSm is the replace_sm request body: replace the content of a
// previously submitted, not-yet-delivered message, per SMPP 5.0 §4.10.1.
// Like SubmitSm/DeliverSm/SubmitMulti, the body carries a TLV tail —
// message_payload is the only tag it admits, per §4.D.
type ReplaceSm struct {
	MessageID            COctetString // max 65
	SourceAddrTon        Ton
	SourceAddrNpi        Npi
	SourceAddr           COctetString // max 21
	ScheduleDeliveryTime EmptyOrFullCOctetString // n=17
	ValidityPeriod       EmptyOrFullCOctetString // n=17
	RegisteredDelivery   RegisteredDelivery
	SmDefaultMsgID       uint8
	ShortMessage         OctetString // max 254
	Tlvs                 []Tlv
}

func (r ReplaceSm) Length() int {
	shortMessage := effectiveShortMessage(r.ShortMessage, r.Tlvs)
	return r.MessageID.Length() + 1 + 1 + r.SourceAddr.Length() +
		r.ScheduleDeliveryTime.Length() + r.ValidityPeriod.Length() + 1 + 1 + 1 + shortMessage.Length() +
		tlvListLength(r.Tlvs)
}

func (r ReplaceSm) AppendTo(dst []byte) []byte {
	shortMessage := effectiveShortMessage(r.ShortMessage, r.Tlvs)
	dst = r.MessageID.AppendTo(dst)
	dst = writeU8(dst, uint8(r.SourceAddrTon))
	dst = writeU8(dst, uint8(r.SourceAddrNpi))
	dst = r.SourceAddr.AppendTo(dst)
	dst = r.ScheduleDeliveryTime.AppendTo(dst)
	dst = r.ValidityPeriod.AppendTo(dst)
	dst = writeU8(dst, r.RegisteredDelivery.Byte())
	dst = writeU8(dst, r.SmDefaultMsgID)
	dst = writeU8(dst, uint8(shortMessage.Length()))
	dst = shortMessage.AppendTo(dst)
	return encodeTlvList(dst, r.Tlvs)
}

// SetShortMessage sets ShortMessage, honoring the short_message/
// message_payload interlock: if a message_payload TLV is already present
// the field is forced back to empty and SetShortMessage returns false.
func (r *ReplaceSm) SetShortMessage(msg OctetString) bool {
	v, ok := setShortMessage(msg, r.Tlvs)
	r.ShortMessage = v
	return ok
}

// SetMessagePayload upserts (or, when payload is nil, removes) the
// message_payload TLV and clears ShortMessage back to empty whenever a
// payload is set, maintaining the interlock in both directions.
func (r *ReplaceSm) SetMessagePayload(payload []byte) {
	tlvs, clear := setMessagePayload(r.Tlvs, payload)
	r.Tlvs = tlvs
	if clear {
		r.ShortMessage = OctetString{}
	}
}

func decodeReplaceSm(b []byte) (Body, error) {
	const place BoundsErrPlace = "replace_sm"
	messageID, n, err := decodeCOctetString(b, 1, 65, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	srcTon, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	srcNpi, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	sourceAddr, n, err := decodeCOctetString(b, 1, 21, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	schedTime, n, err := decodeEmptyOrFullCOctetString(b, 17, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	validity, n, err := decodeEmptyOrFullCOctetString(b, 17, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	regDelivery, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	smDefaultMsgID, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	smLength, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	shortMessage, n, err := decodeOctetString(b, int(smLength), 0, maxShortMessageLen, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	tlvs, err := decodeTlvList(b, maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	if err := validateTlvTags(tlvs, replaceMessageRequestTags, place); err != nil {
		return nil, err
	}
	if err := checkMessageInterlock(shortMessage, tlvs); err != nil {
		return nil, err
	}
	return ReplaceSm{
		MessageID: messageID, SourceAddrTon: Ton(srcTon), SourceAddrNpi: Npi(srcNpi), SourceAddr: sourceAddr,
		ScheduleDeliveryTime: schedTime, ValidityPeriod: validity,
		RegisteredDelivery: ParseRegisteredDelivery(regDelivery), SmDefaultMsgID: smDefaultMsgID,
		ShortMessage: shortMessage, Tlvs: tlvs,
	}, nil
}

func init() {
	registerBody(ReplaceSMID, decodeReplaceSm)
}
