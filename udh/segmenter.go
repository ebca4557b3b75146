package udh

import "sync"

// Alphabet identifies which chunking rule Segmenter applies to the message
// body: chunk boundaries must not split a GSM7 extension escape pair or a
// UCS-2 surrogate-like pair, while octet data has no such constraint.
type Alphabet int

const (
	// AlphabetGSM7 chunks unpacked GSM 03.38 septets (one byte per septet).
	AlphabetGSM7 Alphabet = iota
	// AlphabetUCS2 chunks big-endian UCS-2 code units.
	AlphabetUCS2
	// AlphabetOctet chunks raw 8-bit data with no alignment constraint.
	AlphabetOctet
)

const (
	gsm7Escape      = 0x1B
	ucs2SurrogateHi = 0xD800
	ucs2SurrogateLo = 0xDC00
)

// MaxShortMessageLen is the largest short_message payload a single segment
// may carry once a concatenation UDH is present, per the interlock already
// enforced on the wire (254 octets total, 6 of which an 8-bit-reference
// concatenation UDH consumes).
const MaxShortMessageLen = 254

// Segmenter splits an outgoing message into the set of short_message
// payloads required to carry it, each prefixed with a concatenation UDH so
// the receiving end can reassemble them in order.
//
// Grounded on warthog618/sms's sar.Segmenter: a per-segmenter reference
// counter shared across calls, with chunk boundaries chosen so a GSM7
// extension escape or a UCS-2 leading surrogate is never split across
// segments.
type Segmenter struct {
	use16BitRef bool

	mu        sync.Mutex
	reference uint16
}

// SegmenterOption alters Segmenter behavior at construction time.
type SegmenterOption func(*Segmenter)

// With16BitReference makes the Segmenter emit ConcatenatedShortMessage16Bit
// elements instead of the 8-bit form.
func With16BitReference(s *Segmenter) { s.use16BitRef = true }

// NewSegmenter creates a Segmenter.
func NewSegmenter(opts ...SegmenterOption) *Segmenter {
	s := &Segmenter{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment splits msg (already encoded into its wire alphabet: unpacked GSM7
// septets, big-endian UCS-2 code units, or raw octets) into parts no larger
// than maxPartLen bytes including its UDH. Messages that fit in a single
// part are returned without any concatenation UDH. A message requiring more
// than 255 parts cannot be described by an 8-bit part_number and is
// rejected.
func (s *Segmenter) Segment(msg []byte, alphabet Alphabet, maxPartLen int) ([]Part, error) {
	if len(msg) == 0 {
		return nil, nil
	}
	udhLen := 6 // 8-bit reference: 05 00 03 RR TP PN
	if s.use16BitRef {
		udhLen = 7 // 06 08 04 RR RR TP PN
	}
	if len(msg) <= maxPartLen {
		return []Part{{Body: msg}}, nil
	}
	bodyCap := maxPartLen - udhLen
	if bodyCap <= 0 {
		return nil, ErrPartCapacityExceeded
	}
	chunks := chunk(msg, alphabet, bodyCap)
	if len(chunks) > 255 {
		return nil, ErrTooManyParts
	}
	s.mu.Lock()
	s.reference++
	ref := s.reference
	s.mu.Unlock()
	parts := make([]Part, len(chunks))
	total := uint8(len(chunks))
	for i, c := range chunks {
		part := uint8(i + 1)
		if s.use16BitRef {
			elem, err := NewConcatenatedShortMessage16Bit(ref, total, part)
			if err != nil {
				return nil, err
			}
			parts[i] = Part{Body: c, Reference16: &elem}
		} else {
			elem, err := NewConcatenatedShortMessage8Bit(uint8(ref), total, part)
			if err != nil {
				return nil, err
			}
			parts[i] = Part{Body: c, Reference8: &elem}
		}
	}
	return parts, nil
}

// Part is one segment of a Segment call's result: the chunked body bytes
// plus the concatenation element (nil if the message fit in a single part
// and needed no UDH).
type Part struct {
	Body        []byte
	Reference8  *ConcatenatedShortMessage8Bit
	Reference16 *ConcatenatedShortMessage16Bit
}

// UDH returns the part's full UDH bytes, or nil if this part carries no
// concatenation element.
func (p Part) UDH() []byte {
	switch {
	case p.Reference8 != nil:
		return p.Reference8.AppendUDH(nil)
	case p.Reference16 != nil:
		return p.Reference16.AppendUDH(nil)
	default:
		return nil
	}
}

const (
	// ErrPartCapacityExceeded means maxPartLen left no room for a message
	// body once the concatenation UDH's bytes are accounted for.
	ErrPartCapacityExceeded Error = "udh: maxPartLen leaves no room for a message body"
	// ErrTooManyParts means the message requires more parts than an 8-bit
	// (or 16-bit) part_number field can address within this element's
	// 255-part practical ceiling.
	ErrTooManyParts Error = "udh: message requires more than 255 parts"
)

func chunk(msg []byte, alphabet Alphabet, bodyCap int) [][]byte {
	switch alphabet {
	case AlphabetUCS2:
		return chunkUCS2(msg, bodyCap)
	case AlphabetOctet:
		return chunkOctet(msg, bodyCap)
	default:
		return chunkGSM7(msg, bodyCap)
	}
}

// chunkGSM7 splits unpacked GSM7 septets so an extension escape pair is
// never split across a chunk boundary.
func chunkGSM7(msg []byte, bs int) [][]byte {
	var chunks [][]byte
	bstart, bend := 0, bs
	for bend < len(msg) {
		if msg[bend-1] == gsm7Escape && (bend < 2 || msg[bend-2] != gsm7Escape) {
			bend--
		}
		chunks = append(chunks, msg[bstart:bend])
		bstart = bend
		bend = bstart + bs
	}
	return append(chunks, msg[bstart:])
}

// chunkUCS2 splits big-endian UCS-2 code units so a leading surrogate is
// never separated from its trailing unit.
func chunkUCS2(msg []byte, bs int) [][]byte {
	bs &^= 1
	if bs == 0 {
		return [][]byte{msg}
	}
	var chunks [][]byte
	bstart, bend := 0, bs
	for bend < len(msg) {
		if bend >= 2 {
			hi := uint16(msg[bend-2])<<8 | uint16(msg[bend-1])
			if hi >= ucs2SurrogateHi && hi < ucs2SurrogateLo {
				bend -= 2
			}
		}
		chunks = append(chunks, msg[bstart:bend])
		bstart = bend
		bend = bstart + bs
	}
	return append(chunks, msg[bstart:])
}

// chunkOctet splits raw bytes with no alignment constraint.
func chunkOctet(msg []byte, bs int) [][]byte {
	var chunks [][]byte
	bstart, bend := 0, bs
	for bend < len(msg) {
		chunks = append(chunks, msg[bstart:bend])
		bstart = bend
		bend = bstart + bs
	}
	return append(chunks, msg[bstart:])
}
