package smppd

import "fmt"

// Address is the (ton, npi, addr) triple used for source_addr/destination_addr
// fields throughout the PDU set.
type Address struct {
	Ton  Ton
	Npi  Npi
	Addr COctetString // max 21 per SMPP 5.0 §4.7.3 source_addr/destination_addr
}

func (a Address) Length() int { return 2 + a.Addr.Length() }

func (a Address) AppendTo(dst []byte) []byte {
	dst = writeU8(dst, uint8(a.Ton))
	dst = writeU8(dst, uint8(a.Npi))
	return a.Addr.AppendTo(dst)
}

func decodeAddress(b []byte, addrMax int, place BoundsErrPlace) (Address, int, error) {
	ton, n1, err := readU8(b, place)
	if err != nil {
		return Address{}, 0, err
	}
	npi, n2, err := readU8(b[n1:], place)
	if err != nil {
		return Address{}, 0, err
	}
	addr, n3, err := decodeCOctetString(b[n1+n2:], 1, addrMax, place)
	if err != nil {
		return Address{}, 0, err
	}
	return Address{Ton: Ton(ton), Npi: Npi(npi), Addr: addr}, n1 + n2 + n3, nil
}

// DestAddress is one entry of a submit_multi dest_address list: either a
// single SME address or a distribution list name, discriminated by
// DestFlag, per §4.D's counted-container invariant (number_of_dests must
// equal len(DestAddresses)).
//
// Grounded on the Rusmpp DestAddress sum type, re-expressed as a tagged
// struct since Go has no direct sum-type equivalent.
type DestAddress struct {
	Flag             DestFlag
	SmeAddress       Address      // valid when Flag == DestFlagSmeAddress
	DistributionList COctetString // valid when Flag == DestFlagDistributionList, max 21
}

func (d DestAddress) Length() int {
	if d.Flag == DestFlagDistributionList {
		return 1 + d.DistributionList.Length()
	}
	return 1 + d.SmeAddress.Length()
}

func (d DestAddress) AppendTo(dst []byte) []byte {
	dst = writeU8(dst, uint8(d.Flag))
	if d.Flag == DestFlagDistributionList {
		return d.DistributionList.AppendTo(dst)
	}
	return d.SmeAddress.AppendTo(dst)
}

// decodeDestAddress decodes one dest_flag-prefixed entry. Every dest_flag
// other than DestFlagDistributionList, including unassigned values, is
// decoded as an SME address; no flag value is rejected.
func decodeDestAddress(b []byte, place BoundsErrPlace) (DestAddress, int, error) {
	flag, n1, err := readU8(b, place)
	if err != nil {
		return DestAddress{}, 0, err
	}
	switch DestFlag(flag) {
	case DestFlagDistributionList:
		dl, n2, err := decodeCOctetString(b[n1:], 1, 21, place)
		if err != nil {
			return DestAddress{}, 0, err
		}
		return DestAddress{Flag: DestFlagDistributionList, DistributionList: dl}, n1 + n2, nil
	default:
		addr, n2, err := decodeAddress(b[n1:], 21, place)
		if err != nil {
			return DestAddress{}, 0, err
		}
		return DestAddress{Flag: DestFlagSmeAddress, SmeAddress: addr}, n1 + n2, nil
	}
}

func decodeDestAddressList(b []byte, count int, place BoundsErrPlace) ([]DestAddress, int, error) {
	out := make([]DestAddress, 0, count)
	total := 0
	for i := 0; i < count; i++ {
		d, n, err := decodeDestAddress(b[total:], place)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, d)
		total += n
	}
	return out, total, nil
}

func destAddressListLength(list []DestAddress) int {
	n := 0
	for _, d := range list {
		n += d.Length()
	}
	return n
}

func appendDestAddressList(dst []byte, list []DestAddress) []byte {
	for _, d := range list {
		dst = d.AppendTo(dst)
	}
	return dst
}

// UnsuccessSme is one entry of submit_multi_resp's unsuccess_sme list: an
// address paired with the per-destination error status, per §4.D's
// no_unsuccess/len(UnsuccessSmes) counted-container invariant.
type UnsuccessSme struct {
	Addr   Address
	Status CommandStatus
}

func (u UnsuccessSme) Length() int { return u.Addr.Length() + 4 }

func (u UnsuccessSme) AppendTo(dst []byte) []byte {
	dst = u.Addr.AppendTo(dst)
	return writeU32(dst, uint32(u.Status))
}

func decodeUnsuccessSme(b []byte, place BoundsErrPlace) (UnsuccessSme, int, error) {
	addr, n1, err := decodeAddress(b, 21, place)
	if err != nil {
		return UnsuccessSme{}, 0, err
	}
	status, n2, err := readU32(b[n1:], place)
	if err != nil {
		return UnsuccessSme{}, 0, err
	}
	return UnsuccessSme{Addr: addr, Status: CommandStatus(status)}, n1 + n2, nil
}

func decodeUnsuccessSmeList(b []byte, count int, place BoundsErrPlace) ([]UnsuccessSme, int, error) {
	out := make([]UnsuccessSme, 0, count)
	total := 0
	for i := 0; i < count; i++ {
		u, n, err := decodeUnsuccessSme(b[total:], place)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, u)
		total += n
	}
	return out, total, nil
}

func unsuccessSmeListLength(list []UnsuccessSme) int {
	n := 0
	for _, u := range list {
		n += u.Length()
	}
	return n
}

func appendUnsuccessSmeList(dst []byte, list []UnsuccessSme) []byte {
	for _, u := range list {
		dst = u.AppendTo(dst)
	}
	return dst
}

// BroadcastAreaIdentifier carries the broadcast_area_identifier TLV value:
// an area format selector plus the format-specific area description.
// Supplemented from original_source/ (rusmpp-core/src/pdus/types/broadcast_area_identifier.rs),
// which the distilled spec only gestures at via the TLV tag list.
type BroadcastAreaIdentifier struct {
	Format BroadcastAreaFormat
	Area   AnyOctetString
}

type BroadcastAreaFormat uint8

const (
	BroadcastAreaFormatAlias        BroadcastAreaFormat = 0x00
	BroadcastAreaFormatEllipsoidArc BroadcastAreaFormat = 0x01
	BroadcastAreaFormatPolygon      BroadcastAreaFormat = 0x02
)

func (f BroadcastAreaFormat) String() string {
	switch f {
	case BroadcastAreaFormatAlias:
		return "Alias"
	case BroadcastAreaFormatEllipsoidArc:
		return "EllipsoidArc"
	case BroadcastAreaFormatPolygon:
		return "Polygon"
	default:
		return "Other"
	}
}

func (a BroadcastAreaIdentifier) AppendTo(dst []byte) []byte {
	dst = writeU8(dst, uint8(a.Format))
	return append(dst, a.Area...)
}

func decodeBroadcastAreaIdentifier(raw []byte) (BroadcastAreaIdentifier, error) {
	if len(raw) < 1 {
		return BroadcastAreaIdentifier{}, TooFewBytesError{Place: "broadcast_area_identifier", Actual: len(raw), Min: 1}
	}
	return BroadcastAreaIdentifier{Format: BroadcastAreaFormat(raw[0]), Area: AnyOctetString(append([]byte(nil), raw[1:]...))}, nil
}

// BroadcastAreaSuccess carries the broadcast_area_success TLV value: the
// percentage (0-100, or 0xFF for "information not available") of a
// broadcast area successfully covered.
type BroadcastAreaSuccess uint8

const BroadcastAreaSuccessUnavailable BroadcastAreaSuccess = 0xFF

func (s BroadcastAreaSuccess) String() string {
	if s == BroadcastAreaSuccessUnavailable {
		return "Unavailable"
	}
	return fmt.Sprintf("%d%%", uint8(s))
}
