package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressRoundTrip(t *testing.T) {
	addr, err := NewCOctetString("14155551234", 1, 21)
	require.NoError(t, err)
	a := Address{Ton: TonInternational, Npi: NpiIsdn, Addr: addr}

	buf := a.AppendTo(nil)
	require.Len(t, buf, a.Length())

	got, n, err := decodeAddress(buf, 21, "test")
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, a, got)
}

func TestDestAddressRoundTripSmeAddress(t *testing.T) {
	addr, err := NewCOctetString("14155551234", 1, 21)
	require.NoError(t, err)
	d := DestAddress{Flag: DestFlagSmeAddress, SmeAddress: Address{Ton: TonInternational, Npi: NpiIsdn, Addr: addr}}

	buf := d.AppendTo(nil)
	require.Len(t, buf, d.Length())

	got, n, err := decodeDestAddress(buf, "test")
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, d, got)
}

func TestDestAddressRoundTripDistributionList(t *testing.T) {
	list, err := NewCOctetString("mylist", 1, 21)
	require.NoError(t, err)
	d := DestAddress{Flag: DestFlagDistributionList, DistributionList: list}

	buf := d.AppendTo(nil)
	got, n, err := decodeDestAddress(buf, "test")
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, d, got)
}

// TestDestAddressListCountedContainer is property 6: the decoded slice
// length always equals the count the caller passed in, derived from the
// number_of_dests field rather than stored as a redundant field.
func TestDestAddressListCountedContainer(t *testing.T) {
	addr1, err := NewCOctetString("111", 1, 21)
	require.NoError(t, err)
	addr2, err := NewCOctetString("222", 1, 21)
	require.NoError(t, err)
	list := []DestAddress{
		{Flag: DestFlagSmeAddress, SmeAddress: Address{Addr: addr1}},
		{Flag: DestFlagSmeAddress, SmeAddress: Address{Addr: addr2}},
	}

	buf := appendDestAddressList(nil, list)
	require.Len(t, buf, destAddressListLength(list))

	got, n, err := decodeDestAddressList(buf, len(list), "test")
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Len(t, got, len(list))
	require.Equal(t, list, got)
}

func TestUnsuccessSmeRoundTrip(t *testing.T) {
	addr, err := NewCOctetString("14155551234", 1, 21)
	require.NoError(t, err)
	u := UnsuccessSme{Addr: Address{Ton: TonInternational, Npi: NpiIsdn, Addr: addr}, Status: EsmeRInvDstAdr}

	buf := u.AppendTo(nil)
	require.Len(t, buf, u.Length())

	got, n, err := decodeUnsuccessSme(buf, "test")
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, u, got)
}

func TestUnsuccessSmeListCountedContainer(t *testing.T) {
	addr, err := NewCOctetString("111", 1, 21)
	require.NoError(t, err)
	list := []UnsuccessSme{
		{Addr: Address{Addr: addr}, Status: EsmeROk},
		{Addr: Address{Addr: addr}, Status: EsmeRInvDstAdr},
	}

	buf := appendUnsuccessSmeList(nil, list)
	require.Len(t, buf, unsuccessSmeListLength(list))

	got, n, err := decodeUnsuccessSmeList(buf, len(list), "test")
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, list, got)
}

func TestBroadcastAreaIdentifierRoundTrip(t *testing.T) {
	a := BroadcastAreaIdentifier{Format: BroadcastAreaFormatPolygon, Area: AnyOctetString("polygon-points")}
	buf := a.AppendTo(nil)

	got, err := decodeBroadcastAreaIdentifier(buf)
	require.NoError(t, err)
	require.Equal(t, a, got)
}

func TestDecodeBroadcastAreaIdentifierRejectsEmpty(t *testing.T) {
	_, err := decodeBroadcastAreaIdentifier(nil)
	var tooFew TooFewBytesError
	require.ErrorAs(t, err, &tooFew)
}

func TestBroadcastAreaSuccessString(t *testing.T) {
	require.Equal(t, "42%", BroadcastAreaSuccess(42).String())
	require.Equal(t, "Unavailable", BroadcastAreaSuccessUnavailable.String())
}
