package smppd

// Body is a decoded PDU body. Every pdu_*.go file defines one concrete type
// per operation implementing this interface, registered into bodyDecoders
// under its request and (where distinct) response CommandID.
type Body interface {
	// Length returns the number of bytes the body occupies on the wire.
	Length() int
	// AppendTo appends the wire encoding of the body (not the header) to dst.
	AppendTo(dst []byte) []byte
}

type bodyDecodeFunc func(b []byte) (Body, error)

// bodyDecoders is the CommandID-keyed dispatch table consulted by
// ReadCommand. It is populated by each pdu_*.go file's package-level init,
// mirroring the teacher's lack of a central dispatch table (STUN attributes
// self-register via AttrType switch in message.go's Get, not a map) —
// here a map is the more direct fit since SMPP dispatches on an entire PDU
// body rather than a sub-attribute.
var bodyDecoders = map[CommandID]bodyDecodeFunc{}

func registerBody(id CommandID, decode bodyDecodeFunc) {
	bodyDecoders[id] = decode
}
