package smppd

import (
	"encoding/binary"
	"io"
)

// DefaultMaxCommandLength is the default ceiling applied to an inbound
// command_length before ReadFrom refuses to allocate a buffer for
// it. 64KiB comfortably exceeds any legitimate message_payload-bearing PDU.
const DefaultMaxCommandLength = 64 * 1024

// headerLength is the fixed size of the command header: command_length,
// command_id, command_status, sequence_number.
const headerLength = 16

// Command is one SMPP PDU: a 16-byte header followed by a command-specific
// body. It is the smppd analogue of the teacher's Message: a thin frame
// around a Body, encoded by AppendTo/WriteTo and read back by ReadCommand
// (one in-memory frame) or ReadFrom (one frame from an io.Reader).
type Command struct {
	ID       CommandID
	Status   CommandStatus
	Sequence uint32
	Body     Body // nil for bodyless PDUs (enquire_link, unbind, generic_nack on success)
	// Raw, if non-nil, is the exact body bytes as received. It is always
	// populated for a command whose CommandID has no registered Body
	// decoder, preserving unknown commands byte-exact per §9's "unknown
	// command preservation" property.
	Raw []byte
}

// NewCommand constructs a Command with the given id/status/sequence/body.
func NewCommand(id CommandID, status CommandStatus, seq uint32, body Body) Command {
	return Command{ID: id, Status: status, Sequence: seq, Body: body}
}

// Length returns the total wire length of c, including the 16-byte header.
func (c Command) Length() int {
	if c.Body != nil {
		return headerLength + c.Body.Length()
	}
	return headerLength + len(c.Raw)
}

// AppendTo appends the wire encoding of c to dst.
func (c Command) AppendTo(dst []byte) []byte {
	dst = writeU32(dst, uint32(c.Length()))
	dst = writeU32(dst, uint32(c.ID))
	dst = writeU32(dst, uint32(c.Status))
	dst = writeU32(dst, c.Sequence)
	if c.Body != nil {
		return c.Body.AppendTo(dst)
	}
	return append(dst, c.Raw...)
}

// WriteTo implements io.WriterTo, matching the teacher's Message.WriteTo.
func (c Command) WriteTo(w io.Writer) (int64, error) {
	buf := c.AppendTo(make([]byte, 0, c.Length()))
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadCommand decodes exactly one Command from b, which must hold exactly
// one frame's worth of bytes (the caller — typically conn.Conn's framing
// reader — is responsible for locating command_length and slicing b to
// size). Decoding an unrecognized CommandID is not an error: the body is
// kept verbatim in Raw so the byte stream stays resynchronizable.
func ReadCommand(b []byte) (Command, error) {
	if len(b) < headerLength {
		return Command{}, MinLengthError{Actual: len(b), Min: headerLength}
	}
	length := binary.BigEndian.Uint32(b[0:4])
	if int(length) != len(b) {
		return Command{}, wrapDecodeErr("command", "command_length",
			TooFewBytesError{Place: "command.command_length", Actual: len(b), Min: int(length)})
	}
	id := CommandID(binary.BigEndian.Uint32(b[4:8]))
	status := CommandStatus(binary.BigEndian.Uint32(b[8:12]))
	seq := binary.BigEndian.Uint32(b[12:16])
	body := b[16:]

	c := Command{ID: id, Status: status, Sequence: seq}
	decode, ok := bodyDecoders[id]
	if !ok {
		c.Raw = append([]byte(nil), body...)
		return c, nil
	}
	decoded, err := decode(body)
	if err != nil {
		return Command{}, wrapDecodeErr("command", id.String(), err)
	}
	c.Body = decoded
	return c, nil
}

// ReadFrom reads one length-prefixed Command from r, honoring maxLength as
// a ceiling on command_length (0 selects DefaultMaxCommandLength). This is
// the framing primitive conn.Conn's reader goroutine uses on each loop
// iteration — grounded on message.go's ReadFrom peeking the STUN header
// before sizing its read.
func ReadFrom(r io.Reader, maxLength int) (Command, int64, error) {
	if maxLength <= 0 {
		maxLength = DefaultMaxCommandLength
	}
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return Command{}, 0, err
	}
	length := int(binary.BigEndian.Uint32(lenBuf[:]))
	if length < headerLength {
		return Command{}, 4, MinLengthError{Actual: length, Min: headerLength}
	}
	if length > maxLength {
		return Command{}, 4, MaxLengthError{Actual: length, Max: maxLength}
	}
	buf := make([]byte, length)
	copy(buf, lenBuf[:])
	if _, err := io.ReadFull(r, buf[4:]); err != nil {
		return Command{}, int64(4), err
	}
	c, err := ReadCommand(buf)
	return c, int64(length), err
}

// sequenceAllocator allocates sequence numbers in [1, 0x7FFFFFFF], wrapping back
// to 1 rather than overflowing into the high bit (which SMPP reserves to
// distinguish generic_nack's shared command_id from its sequence space —
// in practice sequence_number has no such reservation, but wrapping well
// below uint32 max keeps the allocator clear of any ambiguity with buggy
// peers that conflate the two fields).
type sequenceAllocator struct {
	next uint32
}

func newSequenceAllocator() *sequenceAllocator {
	return &sequenceAllocator{next: 1}
}

func (a *sequenceAllocator) Next() uint32 {
	n := a.next
	if a.next >= 0x7FFFFFFF {
		a.next = 1
	} else {
		a.next++
	}
	return n
}
