// Package udh implements the User Data Header elements used to segment a
// long message across multiple short_message/message_payload submissions,
// and the concatenation reference/part-number element used to reassemble
// them.
//
// Grounded on the original Rusmpp ConcatenatedShortMessage8Bit/16Bit UDH
// elements (rusmpp-core/src/udhs/concatenated_short_message_{8,16}_bit.rs),
// realized in the teacher's sentinel-error-plus-struct-error style
// (errors.go's Error/TooFewBytesError family).
package udh

import "fmt"

// Error is the error type for constant errors in the udh package.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrTotalPartsZero means a concatenation element declared zero total
	// parts, which cannot describe any message.
	ErrTotalPartsZero Error = "udh: total_parts is zero"
	// ErrPartNumberZero means a concatenation element declared part number
	// zero; part numbers are 1-based.
	ErrPartNumberZero Error = "udh: part_number is zero"
	// ErrTooFewBytes means fewer bytes were supplied than an element
	// requires to decode.
	ErrTooFewBytes Error = "udh: too few bytes to decode element"
	// ErrInvalidIEDataLength means the IE Data Length byte did not match
	// the value the element format requires.
	ErrInvalidIEDataLength Error = "udh: invalid information element data length"
)

// PartNumberExceedsTotalPartsError means part_number is greater than
// total_parts, which cannot describe a valid position within the message.
type PartNumberExceedsTotalPartsError struct {
	PartNumber  uint16
	TotalParts  uint16
}

func (e PartNumberExceedsTotalPartsError) Error() string {
	return fmt.Sprintf("udh: part_number %d exceeds total_parts %d", e.PartNumber, e.TotalParts)
}

// ConcatenatedShortMessage8Bit is the 8-bit-reference concatenation
// information element (IEI 0x00).
//
// Encoded as a full UDH it reads "05 00 03 RR TP PN": UDH length 5, IEI
// 0x00, IE Data Length 3, then reference, total_parts, part_number.
type ConcatenatedShortMessage8Bit struct {
	Reference  uint8
	TotalParts uint8
	PartNumber uint8
}

// NewConcatenatedShortMessage8Bit validates and constructs an element.
func NewConcatenatedShortMessage8Bit(reference, totalParts, partNumber uint8) (ConcatenatedShortMessage8Bit, error) {
	c := ConcatenatedShortMessage8Bit{Reference: reference, TotalParts: totalParts, PartNumber: partNumber}
	if err := c.validate(); err != nil {
		return ConcatenatedShortMessage8Bit{}, err
	}
	return c, nil
}

func (c ConcatenatedShortMessage8Bit) validate() error {
	if c.TotalParts == 0 {
		return ErrTotalPartsZero
	}
	if c.PartNumber == 0 {
		return ErrPartNumberZero
	}
	if c.PartNumber > c.TotalParts {
		return PartNumberExceedsTotalPartsError{PartNumber: uint16(c.PartNumber), TotalParts: uint16(c.TotalParts)}
	}
	return nil
}

// Length returns the element's IE Data Length payload size (excluding the
// IEI and IE Data Length bytes themselves).
func (ConcatenatedShortMessage8Bit) Length() int { return 3 }

// UDHLength returns the size of this element when encoded as a standalone
// full UDH, including the leading UDH length byte.
func (c ConcatenatedShortMessage8Bit) UDHLength() int { return c.Length() + 3 }

// AppendTo appends the IEI, IE Data Length, and payload bytes (not
// including the overall UDH length byte, since a short_message may carry
// several elements sharing a single UDH length prefix).
func (c ConcatenatedShortMessage8Bit) AppendTo(dst []byte) []byte {
	return append(dst, 0x00, 0x03, c.Reference, c.TotalParts, c.PartNumber)
}

// AppendUDH appends a full single-element UDH: the UDH length byte
// followed by this element's IEI/IE Data Length/payload bytes.
func (c ConcatenatedShortMessage8Bit) AppendUDH(dst []byte) []byte {
	dst = append(dst, byte(c.Length()+2))
	return c.AppendTo(dst)
}

// DecodeConcatenatedShortMessage8Bit decodes an element's IE Data Length
// and payload from src (src begins at the IE Data Length byte; the IEI is
// not part of src).
func DecodeConcatenatedShortMessage8Bit(src []byte) (ConcatenatedShortMessage8Bit, int, error) {
	if len(src) < 4 {
		return ConcatenatedShortMessage8Bit{}, 0, ErrTooFewBytes
	}
	if src[0] != 0x03 {
		return ConcatenatedShortMessage8Bit{}, 0, ErrInvalidIEDataLength
	}
	c, err := NewConcatenatedShortMessage8Bit(src[1], src[2], src[3])
	if err != nil {
		return ConcatenatedShortMessage8Bit{}, 0, err
	}
	return c, 4, nil
}

// ConcatenatedShortMessage16Bit is the 16-bit-reference concatenation
// information element (IEI 0x08), used when more than 255 concurrent
// concatenated messages from one source would collide on an 8-bit
// reference number.
//
// Encoded as a full UDH it reads "06 08 04 RR RR TP PN": UDH length 6, IEI
// 0x08, IE Data Length 4, then a big-endian 16-bit reference, total_parts,
// part_number.
type ConcatenatedShortMessage16Bit struct {
	Reference  uint16
	TotalParts uint8
	PartNumber uint8
}

// NewConcatenatedShortMessage16Bit validates and constructs an element.
func NewConcatenatedShortMessage16Bit(reference uint16, totalParts, partNumber uint8) (ConcatenatedShortMessage16Bit, error) {
	c := ConcatenatedShortMessage16Bit{Reference: reference, TotalParts: totalParts, PartNumber: partNumber}
	if err := c.validate(); err != nil {
		return ConcatenatedShortMessage16Bit{}, err
	}
	return c, nil
}

func (c ConcatenatedShortMessage16Bit) validate() error {
	if c.TotalParts == 0 {
		return ErrTotalPartsZero
	}
	if c.PartNumber == 0 {
		return ErrPartNumberZero
	}
	if c.PartNumber > c.TotalParts {
		return PartNumberExceedsTotalPartsError{PartNumber: uint16(c.PartNumber), TotalParts: uint16(c.TotalParts)}
	}
	return nil
}

// Length returns the element's IE Data Length payload size.
func (ConcatenatedShortMessage16Bit) Length() int { return 4 }

// UDHLength returns the size of this element when encoded as a standalone
// full UDH, including the leading UDH length byte.
func (c ConcatenatedShortMessage16Bit) UDHLength() int { return c.Length() + 3 }

// AppendTo appends the IEI, IE Data Length, and payload bytes.
func (c ConcatenatedShortMessage16Bit) AppendTo(dst []byte) []byte {
	return append(dst, 0x08, 0x04, byte(c.Reference>>8), byte(c.Reference), c.TotalParts, c.PartNumber)
}

// AppendUDH appends a full single-element UDH.
func (c ConcatenatedShortMessage16Bit) AppendUDH(dst []byte) []byte {
	dst = append(dst, byte(c.Length()+2))
	return c.AppendTo(dst)
}

// DecodeConcatenatedShortMessage16Bit decodes an element's IE Data Length
// and payload from src (src begins at the IE Data Length byte).
func DecodeConcatenatedShortMessage16Bit(src []byte) (ConcatenatedShortMessage16Bit, int, error) {
	if len(src) < 5 {
		return ConcatenatedShortMessage16Bit{}, 0, ErrTooFewBytes
	}
	if src[0] != 0x04 {
		return ConcatenatedShortMessage16Bit{}, 0, ErrInvalidIEDataLength
	}
	reference := uint16(src[1])<<8 | uint16(src[2])
	c, err := NewConcatenatedShortMessage16Bit(reference, src[3], src[4])
	if err != nil {
		return ConcatenatedShortMessage16Bit{}, 0, err
	}
	return c, 5, nil
}
