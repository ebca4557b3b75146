package smppd

// BindRequest is the shared body shape of bind_transmitter, bind_receiver,
// and bind_transceiver: all three operations carry identical fields and
// differ only in CommandID, so one struct serves all three, registered
// under three separate decoders — grounded on the teacher's practice of
// reusing MappedAddress across MAPPED-ADDRESS/ALTERNATE-SERVER/
// RESPONSE-ORIGIN/OTHER-ADDRESS (addr.go).
type BindRequest struct {
	SystemID         COctetString // max 16
	Password         COctetString // max 9
	SystemType       COctetString // max 13
	InterfaceVersion InterfaceVersion
	AddrTon          Ton
	AddrNpi          Npi
	AddressRange     COctetString // max 41
}

func (b BindRequest) Length() int {
	return b.SystemID.Length() + b.Password.Length() + b.SystemType.Length() +
		1 + 1 + 1 + b.AddressRange.Length()
}

func (b BindRequest) AppendTo(dst []byte) []byte {
	dst = b.SystemID.AppendTo(dst)
	dst = b.Password.AppendTo(dst)
	dst = b.SystemType.AppendTo(dst)
	dst = writeU8(dst, uint8(b.InterfaceVersion))
	dst = writeU8(dst, uint8(b.AddrTon))
	dst = writeU8(dst, uint8(b.AddrNpi))
	return b.AddressRange.AppendTo(dst)
}

func decodeBindRequest(b []byte) (Body, error) {
	const place BoundsErrPlace = "bind_request"
	systemID, n, err := decodeCOctetString(b, 1, 16, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	password, n, err := decodeCOctetString(b, 1, 9, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	systemType, n, err := decodeCOctetString(b, 1, 13, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	ifaceVer, n, err := readU8(b, place)
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
	addressRange, _, err := decodeCOctetString(b, 1, 41, place)
	if err != nil {
		return nil, err
	}
	return BindRequest{
		SystemID:         systemID,
		Password:         password,
		SystemType:       systemType,
		InterfaceVersion: NormalizeInterfaceVersion(ifaceVer),
		AddrTon:          Ton(ton),
		AddrNpi:          Npi(npi),
		AddressRange:     addressRange,
	}, nil
}

// BindResponse is the shared body of bind_transmitter_resp,
// bind_receiver_resp, and bind_transceiver_resp.
type BindResponse struct {
	SystemID COctetString // max 16
	Tlvs     []Tlv        // sc_interface_version, per SMPP 5.0 §4.1.4
}

func (b BindResponse) Length() int { return b.SystemID.Length() + tlvListLength(b.Tlvs) }

func (b BindResponse) AppendTo(dst []byte) []byte {
	dst = b.SystemID.AppendTo(dst)
	return encodeTlvList(dst, b.Tlvs)
}

func decodeBindResponse(b []byte) (Body, error) {
	const place BoundsErrPlace = "bind_response"
	systemID, n, err := decodeCOctetString(b, 1, 16, place)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTlvList(b[n:], maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	return BindResponse{SystemID: systemID, Tlvs: tlvs}, nil
}

func init() {
	for _, id := range []CommandID{BindTransmitterID, BindReceiverID, BindTransceiverID} {
		registerBody(id, decodeBindRequest)
	}
	for _, id := range []CommandID{BindTransmitterRespID, BindReceiverRespID, BindTransceiverRespID} {
		registerBody(id, decodeBindResponse)
	}
}
