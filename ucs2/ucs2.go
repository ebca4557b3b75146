// Package ucs2 implements the UCS-2 (ISO/IEC 10646, 2-byte Basic
// Multilingual Plane subset) encoding SMPP's data_coding value 0x08
// selects. Unlike UTF-16, UCS-2 has no surrogate-pair mechanism, so any
// rune above the BMP (> 0xFFFF) is unencodable.
//
// Grounded on the teacher's big-endian wire conventions (wire.go's `bin`
// shorthand) applied to a new domain: UCS-2 is simply a run of big-endian
// uint16 code units.
package ucs2

import (
	"encoding/binary"
	"fmt"
)

// ErrUnencodable is returned when a rune lies outside the UCS-2 range
// (above 0xFFFF, or within the UTF-16 surrogate range 0xD800-0xDFFF, which
// UCS-2 has no use for).
type ErrUnencodable struct {
	Rune rune
}

func (e ErrUnencodable) Error() string {
	return fmt.Sprintf("ucs2: rune %q is outside the UCS-2 range", e.Rune)
}

// ErrOddLength is returned when a byte slice to decode has an odd length,
// since every UCS-2 code unit is 2 bytes.
const ErrOddLength = constErr("ucs2: byte slice has odd length")

type constErr string

func (e constErr) Error() string { return string(e) }

// Encode converts s into big-endian UCS-2 code units.
func Encode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		if r > 0xFFFF || (r >= 0xD800 && r <= 0xDFFF) {
			return nil, ErrUnencodable{Rune: r}
		}
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(r))
		out = append(out, b[:]...)
	}
	return out, nil
}

// Decode converts big-endian UCS-2 code units back into a string.
func Decode(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", ErrOddLength
	}
	runes := make([]rune, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		runes = append(runes, rune(binary.BigEndian.Uint16(b[i:i+2])))
	}
	return string(runes), nil
}
