package smppd

// QuerySm is the query_sm request body: ask the MC for the current state
// of a previously submitted message, per SMPP 5.0 §4.5.1.
type QuerySm struct {
	MessageID    COctetString // max 65
	SourceAddrTon Ton
	SourceAddrNpi Npi
	SourceAddr   COctetString // max 21
}

func (q QuerySm) Length() int { return q.MessageID.Length() + 1 + 1 + q.SourceAddr.Length() }

func (q QuerySm) AppendTo(dst []byte) []byte {
	dst = q.MessageID.AppendTo(dst)
	dst = writeU8(dst, uint8(q.SourceAddrTon))
	dst = writeU8(dst, uint8(q.SourceAddrNpi))
	return q.SourceAddr.AppendTo(dst)
}

func decodeQuerySm(b []byte) (Body, error) {
	const place BoundsErrPlace = "query_sm"
	messageID, n, err := decodeCOctetString(b, 1, 65, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	ton, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	npi, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	sourceAddr, _, err := decodeCOctetString(b, 1, 21, place)
	if err != nil {
		return nil, err
	}
	return QuerySm{MessageID: messageID, SourceAddrTon: Ton(ton), SourceAddrNpi: Npi(npi), SourceAddr: sourceAddr}, nil
}

// QuerySmResponse is the query_sm_resp body.
type QuerySmResponse struct {
	MessageID    COctetString // max 65
	FinalDate    EmptyOrFullCOctetString // n=17
	MessageState MessageState
	ErrorCode    uint8
}

func (q QuerySmResponse) Length() int { return q.MessageID.Length() + q.FinalDate.Length() + 1 + 1 }

func (q QuerySmResponse) AppendTo(dst []byte) []byte {
	dst = q.MessageID.AppendTo(dst)
	dst = q.FinalDate.AppendTo(dst)
	dst = writeU8(dst, uint8(q.MessageState))
	return writeU8(dst, q.ErrorCode)
}

func decodeQuerySmResponse(b []byte) (Body, error) {
	const place BoundsErrPlace = "query_sm_resp"
	messageID, n, err := decodeCOctetString(b, 1, 65, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	finalDate, n, err := decodeEmptyOrFullCOctetString(b, 17, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	state, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	errCode, _, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	return QuerySmResponse{MessageID: messageID, FinalDate: finalDate, MessageState: MessageState(state), ErrorCode: errCode}, nil
}

func init() {
	registerBody(QuerySMID, decodeQuerySm)
	registerBody(QuerySMRespID, decodeQuerySmResponse)
}
