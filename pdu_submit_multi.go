package smppd

// SubmitMulti is the submit_multi request body: submit one short message
// to a list of destination addresses and/or distribution lists, per
// SMPP 5.0 §4.11.1. number_of_dests is not a stored field: it is always
// len(DestAddresses), enforced at decode and recomputed at encode, per
// §4.D's counted-container invariant.
type SubmitMulti struct {
	ServiceType            COctetString // max 6
	SourceAddrTon          Ton
	SourceAddrNpi          Npi
	SourceAddr             COctetString // max 21
	DestAddresses          []DestAddress
	EsmClass               EsmClass
	ProtocolID             uint8
	PriorityFlag           PriorityFlag
	ScheduleDeliveryTime   EmptyOrFullCOctetString // n=17
	ValidityPeriod         EmptyOrFullCOctetString // n=17
	RegisteredDelivery     RegisteredDelivery
	ReplaceIfPresentFlag   ReplaceIfPresentFlag
	DataCoding             DataCoding
	SmDefaultMsgID         uint8
	ShortMessage           OctetString // max 254
	Tlvs                   []Tlv
}

// maxDestAddresses bounds number_of_dests per SMPP 5.0 §4.11.1 (255, the
// field's own single-byte capacity).
const maxDestAddresses = 255

func (s SubmitMulti) Length() int {
	shortMessage := effectiveShortMessage(s.ShortMessage, s.Tlvs)
	return s.ServiceType.Length() + 1 + 1 + s.SourceAddr.Length() + 1 + destAddressListLength(s.DestAddresses) +
		1 + 1 + 1 + s.ScheduleDeliveryTime.Length() + s.ValidityPeriod.Length() + 1 + 1 + 1 + 1 + 1 +
		shortMessage.Length() + tlvListLength(s.Tlvs)
}

func (s SubmitMulti) AppendTo(dst []byte) []byte {
	shortMessage := effectiveShortMessage(s.ShortMessage, s.Tlvs)
	dst = s.ServiceType.AppendTo(dst)
	dst = writeU8(dst, uint8(s.SourceAddrTon))
	dst = writeU8(dst, uint8(s.SourceAddrNpi))
	dst = s.SourceAddr.AppendTo(dst)
	dst = writeU8(dst, uint8(len(s.DestAddresses)))
	dst = appendDestAddressList(dst, s.DestAddresses)
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
// the field is forced back to empty and SetShortMessage returns false.
func (s *SubmitMulti) SetShortMessage(msg OctetString) bool {
	v, ok := setShortMessage(msg, s.Tlvs)
	s.ShortMessage = v
	return ok
}

// SetMessagePayload upserts (or, when payload is nil, removes) the
// message_payload TLV and clears ShortMessage back to empty whenever a
// payload is set, maintaining the interlock in both directions.
func (s *SubmitMulti) SetMessagePayload(payload []byte) {
	tlvs, clear := setMessagePayload(s.Tlvs, payload)
	s.Tlvs = tlvs
	if clear {
		s.ShortMessage = OctetString{}
	}
}

func decodeSubmitMulti(b []byte) (Body, error) {
	const place BoundsErrPlace = "submit_multi"
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
	numDests, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	if int(numDests) > maxDestAddresses {
		return nil, TooManyElementsError{Place: place, Max: maxDestAddresses}
	}
	destAddrs, n, err := decodeDestAddressList(b, int(numDests), place)
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
	return SubmitMulti{
		ServiceType: serviceType, SourceAddrTon: Ton(srcTon), SourceAddrNpi: Npi(srcNpi), SourceAddr: sourceAddr,
		DestAddresses: destAddrs, EsmClass: ParseEsmClass(esmClass), ProtocolID: protocolID,
		PriorityFlag: PriorityFlag(priority), ScheduleDeliveryTime: schedTime, ValidityPeriod: validity,
		RegisteredDelivery: ParseRegisteredDelivery(regDelivery), ReplaceIfPresentFlag: ReplaceIfPresentFlag(replaceFlag),
		DataCoding: DataCoding(dataCoding), SmDefaultMsgID: smDefaultMsgID, ShortMessage: shortMessage, Tlvs: tlvs,
	}, nil
}

// SubmitMultiResponse is the submit_multi_resp body. no_unsuccess is not a
// stored field: it is always len(UnsuccessSmes), per §4.D's counted-
// container invariant (the same pattern as DestAddresses above).
type SubmitMultiResponse struct {
	MessageID     COctetString // max 65
	UnsuccessSmes []UnsuccessSme
	Tlvs          []Tlv
}

func (s SubmitMultiResponse) Length() int {
	return s.MessageID.Length() + 1 + unsuccessSmeListLength(s.UnsuccessSmes) + tlvListLength(s.Tlvs)
}

func (s SubmitMultiResponse) AppendTo(dst []byte) []byte {
	dst = s.MessageID.AppendTo(dst)
	dst = writeU8(dst, uint8(len(s.UnsuccessSmes)))
	dst = appendUnsuccessSmeList(dst, s.UnsuccessSmes)
	return encodeTlvList(dst, s.Tlvs)
}

func decodeSubmitMultiResponse(b []byte) (Body, error) {
	const place BoundsErrPlace = "submit_multi_resp"
	messageID, n, err := decodeCOctetString(b, 1, 65, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	noUnsuccess, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	if int(noUnsuccess) > maxDestAddresses {
		return nil, TooManyElementsError{Place: place, Max: maxDestAddresses}
	}
	unsuccess, n, err := decodeUnsuccessSmeList(b, int(noUnsuccess), place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	tlvs, err := decodeTlvList(b, maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	return SubmitMultiResponse{MessageID: messageID, UnsuccessSmes: unsuccess, Tlvs: tlvs}, nil
}

func init() {
	registerBody(SubmitMultiID, decodeSubmitMulti)
	registerBody(SubmitMultiRespID, decodeSubmitMultiResponse)
}
