package smppd

// DataSm is the data_sm request body: an interactive-session alternative
// to submit_sm/deliver_sm that carries its message exclusively via the
// message_payload TLV (no short_message field on the wire at all), per
// SMPP 5.0 §4.7.1.
type DataSm struct {
	ServiceType        COctetString // max 6
	SourceAddrTon      Ton
	SourceAddrNpi      Npi
	SourceAddr         COctetString // max 21
	DestAddrTon        Ton
	DestAddrNpi        Npi
	DestinationAddr    COctetString // max 21
	EsmClass           EsmClass
	RegisteredDelivery RegisteredDelivery
	DataCoding         DataCoding
	Tlvs               []Tlv
}

func (d DataSm) Length() int {
	return d.ServiceType.Length() + 1 + 1 + d.SourceAddr.Length() + 1 + 1 +
		d.DestinationAddr.Length() + 1 + 1 + 1 + tlvListLength(d.Tlvs)
}

func (d DataSm) AppendTo(dst []byte) []byte {
	dst = d.ServiceType.AppendTo(dst)
	dst = writeU8(dst, uint8(d.SourceAddrTon))
	dst = writeU8(dst, uint8(d.SourceAddrNpi))
	dst = d.SourceAddr.AppendTo(dst)
	dst = writeU8(dst, uint8(d.DestAddrTon))
	dst = writeU8(dst, uint8(d.DestAddrNpi))
	dst = d.DestinationAddr.AppendTo(dst)
	dst = writeU8(dst, d.EsmClass.Byte())
	dst = writeU8(dst, d.RegisteredDelivery.Byte())
	dst = writeU8(dst, uint8(d.DataCoding))
	return encodeTlvList(dst, d.Tlvs)
}

func decodeDataSm(b []byte) (Body, error) {
	const place BoundsErrPlace = "data_sm"
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
	regDelivery, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	dataCoding, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	tlvs, err := decodeTlvList(b, maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	return DataSm{
		ServiceType:        serviceType,
		SourceAddrTon:      Ton(srcTon),
		SourceAddrNpi:      Npi(srcNpi),
		SourceAddr:         sourceAddr,
		DestAddrTon:        Ton(dstTon),
		DestAddrNpi:        Npi(dstNpi),
		DestinationAddr:    destAddr,
		EsmClass:           ParseEsmClass(esmClass),
		RegisteredDelivery: ParseRegisteredDelivery(regDelivery),
		DataCoding:         DataCoding(dataCoding),
		Tlvs:               tlvs,
	}, nil
}

// DataSmResponse is the data_sm_resp body.
type DataSmResponse struct {
	MessageID COctetString // max 65
	Tlvs      []Tlv
}

func (d DataSmResponse) Length() int { return d.MessageID.Length() + tlvListLength(d.Tlvs) }

func (d DataSmResponse) AppendTo(dst []byte) []byte {
	dst = d.MessageID.AppendTo(dst)
	return encodeTlvList(dst, d.Tlvs)
}

func decodeDataSmResponse(b []byte) (Body, error) {
	const place BoundsErrPlace = "data_sm_resp"
	messageID, n, err := decodeCOctetString(b, 1, 65, place)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTlvList(b[n:], maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	return DataSmResponse{MessageID: messageID, Tlvs: tlvs}, nil
}

func init() {
	registerBody(DataSMID, decodeDataSm)
	registerBody(DataSMRespID, decodeDataSmResponse)
}
