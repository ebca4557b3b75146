package smppd

// DeliverSm is the deliver_sm request body: the MC uses this to deliver a
// short message (or a delivery receipt) to an ESME, per SMPP 5.0 §4.6.1.
// Field layout is identical to SubmitSm; they are kept as distinct named
// types because they are distinct operations with distinct admissible TLV
// sets, not because the wire shape differs.
type DeliverSm struct {
	ServiceType          COctetString // max 6
	SourceAddrTon        Ton
	SourceAddrNpi        Npi
	SourceAddr           COctetString // max 21
	DestAddrTon          Ton
	DestAddrNpi          Npi
	DestinationAddr      COctetString // max 21
	EsmClass             EsmClass
	ProtocolID           uint8
	PriorityFlag         PriorityFlag
	ScheduleDeliveryTime EmptyOrFullCOctetString // n=17, unused by MCs but present on the wire
	ValidityPeriod       EmptyOrFullCOctetString // n=17
	RegisteredDelivery   RegisteredDelivery
	ReplaceIfPresentFlag ReplaceIfPresentFlag
	DataCoding           DataCoding
	SmDefaultMsgID       uint8
	ShortMessage         OctetString // max 254
	Tlvs                 []Tlv
}

func (d DeliverSm) Length() int {
	shortMessage := effectiveShortMessage(d.ShortMessage, d.Tlvs)
	return d.ServiceType.Length() + 1 + 1 + d.SourceAddr.Length() + 1 + 1 +
		d.DestinationAddr.Length() + 1 + 1 + 1 + d.ScheduleDeliveryTime.Length() +
		d.ValidityPeriod.Length() + 1 + 1 + 1 + 1 + 1 + shortMessage.Length() +
		tlvListLength(d.Tlvs)
}

func (d DeliverSm) AppendTo(dst []byte) []byte {
	shortMessage := effectiveShortMessage(d.ShortMessage, d.Tlvs)
	dst = d.ServiceType.AppendTo(dst)
	dst = writeU8(dst, uint8(d.SourceAddrTon))
	dst = writeU8(dst, uint8(d.SourceAddrNpi))
	dst = d.SourceAddr.AppendTo(dst)
	dst = writeU8(dst, uint8(d.DestAddrTon))
	dst = writeU8(dst, uint8(d.DestAddrNpi))
	dst = d.DestinationAddr.AppendTo(dst)
	dst = writeU8(dst, d.EsmClass.Byte())
	dst = writeU8(dst, d.ProtocolID)
	dst = writeU8(dst, uint8(d.PriorityFlag))
	dst = d.ScheduleDeliveryTime.AppendTo(dst)
	dst = d.ValidityPeriod.AppendTo(dst)
	dst = writeU8(dst, d.RegisteredDelivery.Byte())
	dst = writeU8(dst, uint8(d.ReplaceIfPresentFlag))
	dst = writeU8(dst, uint8(d.DataCoding))
	dst = writeU8(dst, d.SmDefaultMsgID)
	dst = writeU8(dst, uint8(shortMessage.Length()))
	dst = shortMessage.AppendTo(dst)
	return encodeTlvList(dst, d.Tlvs)
}

// SetShortMessage sets ShortMessage, honoring the short_message/
// message_payload interlock: if a message_payload TLV is already present
// the field is forced back to empty and SetShortMessage returns false.
func (d *DeliverSm) SetShortMessage(msg OctetString) bool {
	v, ok := setShortMessage(msg, d.Tlvs)
	d.ShortMessage = v
	return ok
}

// SetMessagePayload upserts (or, when payload is nil, removes) the
// message_payload TLV and clears ShortMessage back to empty whenever a
// payload is set, maintaining the interlock in both directions.
func (d *DeliverSm) SetMessagePayload(payload []byte) {
	tlvs, clear := setMessagePayload(d.Tlvs, payload)
	d.Tlvs = tlvs
	if clear {
		d.ShortMessage = OctetString{}
	}
}

func decodeDeliverSm(b []byte) (Body, error) {
	const place BoundsErrPlace = "deliver_sm"
	serviceType, n, err := decodeCOctetString(b, 1, 6, place)
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
	dstTon, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	dstNpi, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	destAddr, n, err := decodeCOctetString(b, 1, 21, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	esmClass, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	protocolID, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	priority, n, err := readU8(b, place)
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
	replaceFlag, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	dataCoding, n, err := readU8(b, place)
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
	if err := validateTlvTags(tlvs, messageDeliveryRequestTags, place); err != nil {
		return nil, err
	}
	if err := checkMessageInterlock(shortMessage, tlvs); err != nil {
		return nil, err
	}
	return DeliverSm{
		ServiceType:          serviceType,
		SourceAddrTon:        Ton(srcTon),
		SourceAddrNpi:        Npi(srcNpi),
		SourceAddr:           sourceAddr,
		DestAddrTon:          Ton(dstTon),
		DestAddrNpi:          Npi(dstNpi),
		DestinationAddr:      destAddr,
		EsmClass:             ParseEsmClass(esmClass),
		ProtocolID:           protocolID,
		PriorityFlag:         PriorityFlag(priority),
		ScheduleDeliveryTime: schedTime,
		ValidityPeriod:       validity,
		RegisteredDelivery:   ParseRegisteredDelivery(regDelivery),
		ReplaceIfPresentFlag: ReplaceIfPresentFlag(replaceFlag),
		DataCoding:           DataCoding(dataCoding),
		SmDefaultMsgID:       smDefaultMsgID,
		ShortMessage:         shortMessage,
		Tlvs:                 tlvs,
	}, nil
}

// DeliverSmResponse is the deliver_sm_resp body. message_id is
// conventionally an empty string for this operation (SMPP 5.0 §4.6.2) but
// the field remains present on the wire.
type DeliverSmResponse struct {
	MessageID COctetString // max 65, typically empty
	Tlvs      []Tlv
}

func (d DeliverSmResponse) Length() int { return d.MessageID.Length() + tlvListLength(d.Tlvs) }

func (d DeliverSmResponse) AppendTo(dst []byte) []byte {
	dst = d.MessageID.AppendTo(dst)
	return encodeTlvList(dst, d.Tlvs)
}

func decodeDeliverSmResponse(b []byte) (Body, error) {
	const place BoundsErrPlace = "deliver_sm_resp"
	messageID, n, err := decodeCOctetString(b, 1, 65, place)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTlvList(b[n:], maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	if err := validateTlvTags(tlvs, messageDeliveryResponseTags, place); err != nil {
		return nil, err
	}
	return DeliverSmResponse{MessageID: messageID, Tlvs: tlvs}, nil
}

func init() {
	registerBody(DeliverSMID, decodeDeliverSm)
	registerBody(DeliverSMRespID, decodeDeliverSmResponse)
}
