package smppd

// Outbind is sent by an MC to an ESME to request that the ESME bind, used
// when the MC itself initiates the TCP connection (SMPP 5.0 §4.1.5).
type Outbind struct {
	SystemID COctetString // max 16
	Password COctetString // max 9
}

func (o Outbind) Length() int { return o.SystemID.Length() + o.Password.Length() }

func (o Outbind) AppendTo(dst []byte) []byte {
	dst = o.SystemID.AppendTo(dst)
	return o.Password.AppendTo(dst)
}

func decodeOutbind(b []byte) (Body, error) {
	const place BoundsErrPlace = "outbind"
	systemID, n, err := decodeCOctetString(b, 1, 16, place)
	if err != nil {
		return nil, err
	}
	password, _, err := decodeCOctetString(b[n:], 1, 9, place)
	if err != nil {
		return nil, err
	}
	return Outbind{SystemID: systemID, Password: password}, nil
}

func init() {
	registerBody(OutbindID, decodeOutbind)
}
