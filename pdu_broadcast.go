package smppd

// BroadcastSm is the broadcast_sm request body: submit a message for
// cell-broadcast distribution over one or more broadcast areas (carried as
// broadcast_area_identifier TLVs), per SMPP 5.0 §4.12.1.
type BroadcastSm struct {
	ServiceType          COctetString // max 6
	SourceAddrTon        Ton
	SourceAddrNpi        Npi
	SourceAddr           COctetString // max 21
	MessageID            COctetString // max 65
	PriorityFlag         PriorityFlag
	ScheduleDeliveryTime EmptyOrFullCOctetString // n=17
	ValidityPeriod       EmptyOrFullCOctetString // n=17
	ReplaceIfPresentFlag ReplaceIfPresentFlag
	DataCoding           DataCoding
	SmDefaultMsgID       uint8
	Tlvs                 []Tlv // broadcast_area_identifier (required), broadcast_content_type, message_payload, ...
}

func (b BroadcastSm) Length() int {
	return b.ServiceType.Length() + 1 + 1 + b.SourceAddr.Length() + b.MessageID.Length() + 1 +
		b.ScheduleDeliveryTime.Length() + b.ValidityPeriod.Length() + 1 + 1 + 1 + tlvListLength(b.Tlvs)
}

func (b BroadcastSm) AppendTo(dst []byte) []byte {
	dst = b.ServiceType.AppendTo(dst)
	dst = writeU8(dst, uint8(b.SourceAddrTon))
	dst = writeU8(dst, uint8(b.SourceAddrNpi))
	dst = b.SourceAddr.AppendTo(dst)
	dst = b.MessageID.AppendTo(dst)
	dst = writeU8(dst, uint8(b.PriorityFlag))
	dst = b.ScheduleDeliveryTime.AppendTo(dst)
	dst = b.ValidityPeriod.AppendTo(dst)
	dst = writeU8(dst, uint8(b.ReplaceIfPresentFlag))
	dst = writeU8(dst, uint8(b.DataCoding))
	dst = writeU8(dst, b.SmDefaultMsgID)
	return encodeTlvList(dst, b.Tlvs)
}

func decodeBroadcastSm(raw []byte) (Body, error) {
	const place BoundsErrPlace = "broadcast_sm"
	serviceType, n, err := decodeCOctetString(raw, 1, 6, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	srcTon, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	srcNpi, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	sourceAddr, n, err := decodeCOctetString(raw, 1, 21, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	messageID, n, err := decodeCOctetString(raw, 1, 65, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	priority, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	schedTime, n, err := decodeEmptyOrFullCOctetString(raw, 17, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	validity, n, err := decodeEmptyOrFullCOctetString(raw, 17, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	replaceFlag, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	dataCoding, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	smDefaultMsgID, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	tlvs, err := decodeTlvList(raw, maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	if err := validateTlvTags(tlvs, broadcastRequestTags, place); err != nil {
		return nil, err
	}
	return BroadcastSm{
		ServiceType: serviceType, SourceAddrTon: Ton(srcTon), SourceAddrNpi: Npi(srcNpi), SourceAddr: sourceAddr,
		MessageID: messageID, PriorityFlag: PriorityFlag(priority), ScheduleDeliveryTime: schedTime,
		ValidityPeriod: validity, ReplaceIfPresentFlag: ReplaceIfPresentFlag(replaceFlag),
		DataCoding: DataCoding(dataCoding), SmDefaultMsgID: smDefaultMsgID, Tlvs: tlvs,
	}, nil
}

// BroadcastSmResponse is the broadcast_sm_resp body.
type BroadcastSmResponse struct {
	MessageID COctetString // max 65
	Tlvs      []Tlv
}

func (b BroadcastSmResponse) Length() int { return b.MessageID.Length() + tlvListLength(b.Tlvs) }

func (b BroadcastSmResponse) AppendTo(dst []byte) []byte {
	dst = b.MessageID.AppendTo(dst)
	return encodeTlvList(dst, b.Tlvs)
}

func decodeBroadcastSmResponse(raw []byte) (Body, error) {
	const place BoundsErrPlace = "broadcast_sm_resp"
	messageID, n, err := decodeCOctetString(raw, 1, 65, place)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTlvList(raw[n:], maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	if err := validateTlvTags(tlvs, broadcastResponseTags, place); err != nil {
		return nil, err
	}
	return BroadcastSmResponse{MessageID: messageID, Tlvs: tlvs}, nil
}

// QueryBroadcastSm is the query_broadcast_sm request body: ask the MC for
// the current state of a previously submitted broadcast, per §4.13.1.
type QueryBroadcastSm struct {
	MessageID     COctetString // max 65
	SourceAddrTon Ton
	SourceAddrNpi Npi
	SourceAddr    COctetString // max 21
}

func (q QueryBroadcastSm) Length() int { return q.MessageID.Length() + 1 + 1 + q.SourceAddr.Length() }

func (q QueryBroadcastSm) AppendTo(dst []byte) []byte {
	dst = q.MessageID.AppendTo(dst)
	dst = writeU8(dst, uint8(q.SourceAddrTon))
	dst = writeU8(dst, uint8(q.SourceAddrNpi))
	return q.SourceAddr.AppendTo(dst)
}

func decodeQueryBroadcastSm(raw []byte) (Body, error) {
	const place BoundsErrPlace = "query_broadcast_sm"
	messageID, n, err := decodeCOctetString(raw, 1, 65, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	ton, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	npi, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	sourceAddr, _, err := decodeCOctetString(raw, 1, 21, place)
	if err != nil {
		return nil, err
	}
	return QueryBroadcastSm{MessageID: messageID, SourceAddrTon: Ton(ton), SourceAddrNpi: Npi(npi), SourceAddr: sourceAddr}, nil
}

// QueryBroadcastSmResponse is the query_broadcast_sm_resp body: message_id
// plus message_state and broadcast_area_identifier/broadcast_area_success
// TLV pairs, one pair per covered area.
type QueryBroadcastSmResponse struct {
	MessageID    COctetString // max 65
	Tlvs         []Tlv        // message_state (required), broadcast_area_identifier+broadcast_area_success pairs, ...
}

func (q QueryBroadcastSmResponse) Length() int { return q.MessageID.Length() + tlvListLength(q.Tlvs) }

func (q QueryBroadcastSmResponse) AppendTo(dst []byte) []byte {
	dst = q.MessageID.AppendTo(dst)
	return encodeTlvList(dst, q.Tlvs)
}

func decodeQueryBroadcastSmResponse(raw []byte) (Body, error) {
	const place BoundsErrPlace = "query_broadcast_sm_resp"
	messageID, n, err := decodeCOctetString(raw, 1, 65, place)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTlvList(raw[n:], maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	return QueryBroadcastSmResponse{MessageID: messageID, Tlvs: tlvs}, nil
}

// CancelBroadcastSm is the cancel_broadcast_sm request body, per §4.14.1.
type CancelBroadcastSm struct {
	ServiceType   COctetString // max 6
	MessageID     COctetString // max 65
	SourceAddrTon Ton
	SourceAddrNpi Npi
	SourceAddr    COctetString // max 21
	Tlvs          []Tlv        // broadcast_content_type
}

func (c CancelBroadcastSm) Length() int {
	return c.ServiceType.Length() + c.MessageID.Length() + 1 + 1 + c.SourceAddr.Length() + tlvListLength(c.Tlvs)
}

func (c CancelBroadcastSm) AppendTo(dst []byte) []byte {
	dst = c.ServiceType.AppendTo(dst)
	dst = c.MessageID.AppendTo(dst)
	dst = writeU8(dst, uint8(c.SourceAddrTon))
	dst = writeU8(dst, uint8(c.SourceAddrNpi))
	dst = c.SourceAddr.AppendTo(dst)
	return encodeTlvList(dst, c.Tlvs)
}

func decodeCancelBroadcastSm(raw []byte) (Body, error) {
	const place BoundsErrPlace = "cancel_broadcast_sm"
	serviceType, n, err := decodeCOctetString(raw, 1, 6, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	messageID, n, err := decodeCOctetString(raw, 1, 65, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	ton, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	npi, n, err := readU8(raw, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	sourceAddr, n, err := decodeCOctetString(raw, 1, 21, place)
	if err != nil {
		return nil, err
	}
	raw = raw[n:]
	tlvs, err := decodeTlvList(raw, maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	return CancelBroadcastSm{
		ServiceType: serviceType, MessageID: messageID, SourceAddrTon: Ton(ton), SourceAddrNpi: Npi(npi),
		SourceAddr: sourceAddr, Tlvs: tlvs,
	}, nil
}

func init() {
	registerBody(BroadcastSMID, decodeBroadcastSm)
	registerBody(BroadcastSMRespID, decodeBroadcastSmResponse)
	registerBody(QueryBroadcastSMID, decodeQueryBroadcastSm)
	registerBody(QueryBroadcastSMRespID, decodeQueryBroadcastSmResponse)
	registerBody(CancelBroadcastSMID, decodeCancelBroadcastSm)
}
