package smppd

// CancelSm is the cancel_sm request body: cancel a previously submitted
// message that has not yet been delivered, per SMPP 5.0 §4.9.1.
type CancelSm struct {
	ServiceType     COctetString // max 6
	MessageID       COctetString // max 65
	SourceAddrTon   Ton
	SourceAddrNpi   Npi
	SourceAddr      COctetString // max 21
	DestAddrTon     Ton
	DestAddrNpi     Npi
	DestinationAddr COctetString // max 21
}

func (c CancelSm) Length() int {
	return c.ServiceType.Length() + c.MessageID.Length() + 1 + 1 + c.SourceAddr.Length() +
		1 + 1 + c.DestinationAddr.Length()
}

func (c CancelSm) AppendTo(dst []byte) []byte {
	dst = c.ServiceType.AppendTo(dst)
	dst = c.MessageID.AppendTo(dst)
	dst = writeU8(dst, uint8(c.SourceAddrTon))
	dst = writeU8(dst, uint8(c.SourceAddrNpi))
	dst = c.SourceAddr.AppendTo(dst)
	dst = writeU8(dst, uint8(c.DestAddrTon))
	dst = writeU8(dst, uint8(c.DestAddrNpi))
	return c.DestinationAddr.AppendTo(dst)
}

func decodeCancelSm(b []byte) (Body, error) {
	const place BoundsErrPlace = "cancel_sm"
	serviceType, n, err := decodeCOctetString(b, 1, 6, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
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
	destAddr, _, err := decodeCOctetString(b, 1, 21, place)
	if err != nil {
		return nil, err
	}
	return CancelSm{
		ServiceType: serviceType, MessageID: messageID,
		SourceAddrTon: Ton(srcTon), SourceAddrNpi: Npi(srcNpi), SourceAddr: sourceAddr,
		DestAddrTon: Ton(dstTon), DestAddrNpi: Npi(dstNpi), DestinationAddr: destAddr,
	}, nil
}

func init() {
	registerBody(CancelSMID, decodeCancelSm)
}
