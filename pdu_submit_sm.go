package smppd

// SubmitSm is the submit_sm request body: submit a short message from an
// ESME to the MC for onward delivery, per SMPP 5.0 §4.4.1.
type SubmitSm struct {
	ServiceType            COctetString // max 6
	SourceAddrTon          Ton
	SourceAddrNpi          Npi
	SourceAddr             COctetString // max 21
	DestAddrTon            Ton
	DestAddrNpi            Npi
	DestinationAddr        COctetString // max 21
	EsmClass               EsmClass
	ProtocolID             uint8
	PriorityFlag           PriorityFlag
	ScheduleDeliveryTime   EmptyOrFullCOctetString // n=17
	ValidityPeriod         EmptyOrFullCOctetString // n=17
	RegisteredDelivery     RegisteredDelivery
	ReplaceIfPresentFlag   ReplaceIfPresentFlag
	DataCoding             DataCoding
	SmDefaultMsgID         uint8
	ShortMessage           OctetString // max 254; empty if message_payload TLV used instead
	Tlvs                   []Tlv
}

func (s SubmitSm) Length() int {
	shortMessage := effectiveShortMessage(s.ShortMessage, s.Tlvs)
	return s.ServiceType.Length() + 1 + 1 + s.SourceAddr.Length() + 1 + 1 +
		s.DestinationAddr.Length() + 1 + 1 + 1 + s.ScheduleDeliveryTime.Length() +
		s.ValidityPeriod.Length() + 1 + 1 + 1 + 1 + 1 + shortMessage.Length() +
		tlvListLength(s.Tlvs)
}

func (s SubmitSm) AppendTo(dst []byte) []byte {
	shortMessage := effectiveShortMessage(s.ShortMessage, s.Tlvs)
	dst = s.ServiceType.AppendTo(dst)
	dst = writeU8(dst, uint8(s.SourceAddrTon))
	dst = writeU8(dst, uint8(s.SourceAddrNpi))
	dst = s.SourceAddr.AppendTo(dst)
	dst = writeU8(dst, uint8(s.DestAddrTon))
	dst = writeU8(dst, uint8(s.DestAddrNpi))
	dst = s.DestinationAddr.AppendTo(dst)
	dst = writeU8(dst, s.EsmClass.Byte())
	dst = writeU8(dst, s.ProtocolID)
	dst = writeU8(dst, uint8(s.PriorityFlag))
	dst = s.ScheduleDeliveryTime.AppendTo(dst)
	dst = s.ValidityPeriod.AppendTo(dst)
	dst = writeU8(dst, s.RegisteredDelivery.Byte())
	dst = writeU8(dst, uint8(s.ReplaceIfPresentFlag))
	dst = writeU8(dst, uint8(s.DataCoding))
	dst = writeU8(dst, s.SmDefaultMsgID)
	dst = writeU8(dst, uint8(shortMessage.Length()))
	dst = shortMessage.AppendTo(dst)
	return encodeTlvList(dst, s.Tlvs)
}

// SetShortMessage sets ShortMessage, honoring the short_message/
// message_payload interlock: if a message_payload TLV is already present
// the field is forced back to empty and SetShortMessage returns false
// (a no-op as far as the message content is concerned).
func (s *SubmitSm) SetShortMessage(msg OctetString) bool {
	v, ok := setShortMessage(msg, s.Tlvs)
	s.ShortMessage = v
	return ok
}

// SetMessagePayload upserts (or, when payload is nil, removes) the
// message_payload TLV and clears ShortMessage back to empty whenever a
// payload is set, maintaining the interlock in both directions.
func (s *SubmitSm) SetMessagePayload(payload []byte) {
	tlvs, clear := setMessagePayload(s.Tlvs, payload)
	s.Tlvs = tlvs
	if clear {
		s.ShortMessage = OctetString{}
	}
}

func decodeSubmitSm(b []byte) (Body, error) {
	const place BoundsErrPlace = "submit_sm"
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
	if err := checkMessageInterlock(shortMessage, tlvs); err != nil {
		return nil, err
	}
	return SubmitSm{
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

// SubmitSmResponse is the submit_sm_resp body.
type SubmitSmResponse struct {
	MessageID COctetString // max 65
	Tlvs      []Tlv
}

func (s SubmitSmResponse) Length() int { return s.MessageID.Length() + tlvListLength(s.Tlvs) }

func (s SubmitSmResponse) AppendTo(dst []byte) []byte {
	dst = s.MessageID.AppendTo(dst)
	return encodeTlvList(dst, s.Tlvs)
}

func decodeSubmitSmResponse(b []byte) (Body, error) {
	const place BoundsErrPlace = "submit_sm_resp"
	messageID, n, err := decodeCOctetString(b, 1, 65, place)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTlvList(b[n:], maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	if err := validateTlvTags(tlvs, messageSubmissionResponseTags, place); err != nil {
		return nil, err
	}
	return SubmitSmResponse{MessageID: messageID, Tlvs: tlvs}, nil
}

func init() {
	registerBody(SubmitSMID, decodeSubmitSm)
	registerBody(SubmitSMRespID, decodeSubmitSmResponse)
}
