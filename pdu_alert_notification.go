package smppd

// AlertNotification is sent by the MC to notify an ESME bound as a
// receiver/transceiver that a particular mobile subscriber has become
// available, per SMPP 5.0 §4.15. It has no response PDU.
type AlertNotification struct {
	SourceAddrTon Ton
	SourceAddrNpi Npi
	SourceAddr    COctetString // max 65
	EsmeAddrTon   Ton
	EsmeAddrNpi   Npi
	EsmeAddr      COctetString // max 65
	Tlvs          []Tlv        // ms_availability_status
}

func (a AlertNotification) Length() int {
	return 1 + 1 + a.SourceAddr.Length() + 1 + 1 + a.EsmeAddr.Length() + tlvListLength(a.Tlvs)
}

func (a AlertNotification) AppendTo(dst []byte) []byte {
	dst = writeU8(dst, uint8(a.SourceAddrTon))
	dst = writeU8(dst, uint8(a.SourceAddrNpi))
	dst = a.SourceAddr.AppendTo(dst)
	dst = writeU8(dst, uint8(a.EsmeAddrTon))
	dst = writeU8(dst, uint8(a.EsmeAddrNpi))
	dst = a.EsmeAddr.AppendTo(dst)
	return encodeTlvList(dst, a.Tlvs)
}

func decodeAlertNotification(b []byte) (Body, error) {
	const place BoundsErrPlace = "alert_notification"
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
	sourceAddr, n, err := decodeCOctetString(b, 1, 65, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	esmeTon, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	esmeNpi, n, err := readU8(b, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	esmeAddr, n, err := decodeCOctetString(b, 1, 65, place)
	if err != nil {
		return nil, err
	}
	b = b[n:]
	tlvs, err := decodeTlvList(b, maxTlvCount, place)
	if err != nil {
		return nil, err
	}
	return AlertNotification{
		SourceAddrTon: Ton(srcTon), SourceAddrNpi: Npi(srcNpi), SourceAddr: sourceAddr,
		EsmeAddrTon: Ton(esmeTon), EsmeAddrNpi: Npi(esmeNpi), EsmeAddr: esmeAddr, Tlvs: tlvs,
	}, nil
}

func init() {
	registerBody(AlertNotificationID, decodeAlertNotification)
}
