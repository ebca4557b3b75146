package smppd

import "encoding/binary"

// bin is shorthand for binary.BigEndian: all SMPP integers are big-endian.
var bin = binary.BigEndian

// AnyOctetString is raw, unbounded bytes whose length is implied entirely by
// an enclosing length field (e.g. the remainder of a TLV value, or the
// remainder of a PDU body). It never fails to decode.
type AnyOctetString []byte

// Length returns the number of bytes AnyOctetString occupies on the wire.
func (s AnyOctetString) Length() int { return len(s) }

// COctetString is a NUL-terminated 7-bit-ASCII string whose encoded length,
// including the terminator, lies in [Min,Max].
type COctetString struct {
	min, max int
	raw      []byte // does not include the trailing 0x00
}

// NewCOctetString validates s against [min,max] (including the terminator)
// and 7-bit ASCII, and constructs a COctetString.
func NewCOctetString(s string, min, max int) (COctetString, error) {
	return newCOctetStringBytes([]byte(s), min, max)
}

func newCOctetStringBytes(b []byte, min, max int) (COctetString, error) {
	encodedLen := len(b) + 1
	if encodedLen < min {
		return COctetString{}, TooFewBytesError{Place: "c_octet_string", Actual: encodedLen, Min: min}
	}
	if encodedLen > max {
		return COctetString{}, TooManyBytesError{Place: "c_octet_string", Actual: encodedLen, Max: max}
	}
	for _, c := range b {
		if c == 0x00 {
			return COctetString{}, ErrNullByteFound
		}
		if c > 0x7F {
			return COctetString{}, ErrNotAscii
		}
	}
	return COctetString{min: min, max: max, raw: b}, nil
}

// EmptyCOctetString returns the minimal legal COctetString value: a single
// 0x00 byte.
func EmptyCOctetString(min, max int) COctetString {
	return COctetString{min: min, max: max}
}

// String returns the string contained in the COctetString, without its
// terminator.
func (s COctetString) String() string { return string(s.raw) }

// Bytes returns the raw bytes contained in the COctetString, without its
// terminator.
func (s COctetString) Bytes() []byte { return s.raw }

// IsEmpty reports whether the COctetString holds no characters.
func (s COctetString) IsEmpty() bool { return len(s.raw) == 0 }

// Length returns the number of bytes the COctetString occupies on the wire,
// including its NUL terminator.
func (s COctetString) Length() int { return len(s.raw) + 1 }

// AppendTo appends the wire encoding of s (including terminator) to dst.
func (s COctetString) AppendTo(dst []byte) []byte {
	dst = append(dst, s.raw...)
	return append(dst, 0x00)
}

// decodeCOctetString scans up to max bytes of b for a NUL terminator and
// returns the decoded value plus the number of bytes consumed.
func decodeCOctetString(b []byte, min, max int, place BoundsErrPlace) (COctetString, int, error) {
	limit := max
	if limit > len(b) {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		if b[i] == 0x00 {
			v, err := newCOctetStringBytes(b[:i], min, max)
			if err != nil {
				return COctetString{}, 0, err
			}
			return v, i + 1, nil
		}
	}
	if len(b) < max {
		return COctetString{}, 0, TooFewBytesError{Place: place, Actual: len(b), Min: min}
	}
	return COctetString{}, 0, ErrNotNullTerminated
}

// EmptyOrFullCOctetString is exactly 1 byte (0x00) OR exactly n bytes ending
// in 0x00; no intermediate lengths are permitted.
type EmptyOrFullCOctetString struct {
	n   int
	raw []byte // does not include the trailing 0x00; empty means the 1-byte form
}

// NewEmptyOrFullCOctetString validates s against the empty-or-full contract
// for a field of total wire size n.
func NewEmptyOrFullCOctetString(s string, n int) (EmptyOrFullCOctetString, error) {
	b := []byte(s)
	if len(b) == 0 {
		return EmptyOrFullCOctetString{n: n}, nil
	}
	if len(b)+1 != n {
		return EmptyOrFullCOctetString{}, TooFewBytesError{Place: "empty_or_full_c_octet_string", Actual: len(b) + 1, Min: n}
	}
	for _, c := range b {
		if c == 0x00 {
			return EmptyOrFullCOctetString{}, ErrNullByteFound
		}
		if c > 0x7F {
			return EmptyOrFullCOctetString{}, ErrNotAscii
		}
	}
	return EmptyOrFullCOctetString{n: n, raw: b}, nil
}

// String returns the contained string, or "" for the empty form.
func (s EmptyOrFullCOctetString) String() string { return string(s.raw) }

// IsEmpty reports whether s is the 1-byte empty form.
func (s EmptyOrFullCOctetString) IsEmpty() bool { return len(s.raw) == 0 }

// Length returns the number of bytes s occupies on the wire.
func (s EmptyOrFullCOctetString) Length() int {
	if len(s.raw) == 0 {
		return 1
	}
	return len(s.raw) + 1
}

// AppendTo appends the wire encoding of s to dst.
func (s EmptyOrFullCOctetString) AppendTo(dst []byte) []byte {
	if len(s.raw) == 0 {
		return append(dst, 0x00)
	}
	dst = append(dst, s.raw...)
	return append(dst, 0x00)
}

// decodeEmptyOrFullCOctetString decodes a field of total wire size n,
// accepting only the 1-byte or full-n-byte forms.
func decodeEmptyOrFullCOctetString(b []byte, n int, place BoundsErrPlace) (EmptyOrFullCOctetString, int, error) {
	if len(b) < 1 {
		return EmptyOrFullCOctetString{}, 0, TooFewBytesError{Place: place, Actual: len(b), Min: 1}
	}
	if b[0] == 0x00 {
		return EmptyOrFullCOctetString{n: n}, 1, nil
	}
	if len(b) < n {
		return EmptyOrFullCOctetString{}, 0, TooFewBytesError{Place: place, Actual: len(b), Min: n}
	}
	if b[n-1] != 0x00 {
		return EmptyOrFullCOctetString{}, 0, ErrNotNullTerminated
	}
	v, err := NewEmptyOrFullCOctetString(string(b[:n-1]), n)
	if err != nil {
		return EmptyOrFullCOctetString{}, 0, err
	}
	return v, n, nil
}

// OctetString is raw bytes, length constrained to [Min,Max], with no
// implicit termination.
type OctetString struct {
	min, max int
	raw      []byte
}

// NewOctetString validates raw against [min,max].
func NewOctetString(raw []byte, min, max int) (OctetString, error) {
	if len(raw) < min {
		return OctetString{}, TooFewBytesError{Place: "octet_string", Actual: len(raw), Min: min}
	}
	if len(raw) > max {
		return OctetString{}, TooManyBytesError{Place: "octet_string", Actual: len(raw), Max: max}
	}
	return OctetString{min: min, max: max, raw: raw}, nil
}

// Bytes returns the raw bytes contained in s.
func (s OctetString) Bytes() []byte { return s.raw }

// Length returns the number of bytes s occupies on the wire.
func (s OctetString) Length() int { return len(s.raw) }

// AppendTo appends the wire encoding of s to dst.
func (s OctetString) AppendTo(dst []byte) []byte { return append(dst, s.raw...) }

// decodeOctetString consumes exactly n bytes of b (n is usually supplied by
// a preceding length field).
func decodeOctetString(b []byte, n, min, max int, place BoundsErrPlace) (OctetString, int, error) {
	if len(b) < n {
		return OctetString{}, 0, TooFewBytesError{Place: place, Actual: len(b), Min: n}
	}
	v, err := NewOctetString(append([]byte(nil), b[:n]...), min, max)
	if err != nil {
		return OctetString{}, 0, err
	}
	return v, n, nil
}

// --- fixed-width integer helpers, used by PDU body Encode/Decode methods ---

func writeU8(dst []byte, v uint8) []byte  { return append(dst, v) }
func writeU16(dst []byte, v uint16) []byte {
	var b [2]byte
	bin.PutUint16(b[:], v)
	return append(dst, b[:]...)
}
func writeU32(dst []byte, v uint32) []byte {
	var b [4]byte
	bin.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

func readU8(b []byte, place BoundsErrPlace) (uint8, int, error) {
	if len(b) < 1 {
		return 0, 0, TooFewBytesError{Place: place, Actual: len(b), Min: 1}
	}
	return b[0], 1, nil
}

func readU16(b []byte, place BoundsErrPlace) (uint16, int, error) {
	if len(b) < 2 {
		return 0, 0, TooFewBytesError{Place: place, Actual: len(b), Min: 2}
	}
	return bin.Uint16(b[:2]), 2, nil
}

func readU32(b []byte, place BoundsErrPlace) (uint32, int, error) {
	if len(b) < 4 {
		return 0, 0, TooFewBytesError{Place: place, Actual: len(b), Min: 4}
	}
	return bin.Uint32(b[:4]), 4, nil
}
