package smppd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindRequestRoundTrip(t *testing.T) {
	systemID, err := NewCOctetString("ESME1", 1, 16)
	require.NoError(t, err)
	password, err := NewCOctetString("secret", 1, 9)
	require.NoError(t, err)
	systemType, err := NewCOctetString("VMS", 1, 13)
	require.NoError(t, err)
	addressRange, err := NewCOctetString("", 1, 41)
	require.NoError(t, err)

	req := BindRequest{
		SystemID:         systemID,
		Password:         password,
		SystemType:       systemType,
		InterfaceVersion: Smpp5_0,
		AddrTon:          TonInternational,
		AddrNpi:          NpiIsdn,
		AddressRange:     addressRange,
	}

	buf := req.AppendTo(nil)
	require.Len(t, buf, req.Length())

	got, err := decodeBindRequest(buf)
	require.NoError(t, err)
	require.Equal(t, req, got)
}

func TestBindRequestNormalizesLegacyInterfaceVersion(t *testing.T) {
	systemID, err := NewCOctetString("ESME1", 1, 16)
	require.NoError(t, err)
	password, err := NewCOctetString("secret", 1, 9)
	require.NoError(t, err)
	systemType, err := NewCOctetString("", 1, 13)
	require.NoError(t, err)
	addressRange, err := NewCOctetString("", 1, 41)
	require.NoError(t, err)

	req := BindRequest{SystemID: systemID, Password: password, SystemType: systemType, AddressRange: addressRange}
	buf := req.AppendTo(nil)
	buf[len(systemID.Bytes())+1+len(password.Bytes())+1+len(systemType.Bytes())+1] = 0x22 // interface_version byte

	got, err := decodeBindRequest(buf)
	require.NoError(t, err)
	require.Equal(t, Smpp3_3OrEarlier, got.(BindRequest).InterfaceVersion)
}

func TestBindRequestRejectsOversizedSystemID(t *testing.T) {
	_, err := NewCOctetString("thisSystemIdIsWayTooLongForTheField", 1, 16)
	var tooMany TooManyBytesError
	require.ErrorAs(t, err, &tooMany)
}

func TestBindResponseRoundTripWithScInterfaceVersionTlv(t *testing.T) {
	systemID, err := NewCOctetString("MC", 1, 16)
	require.NoError(t, err)
	resp := BindResponse{
		SystemID: systemID,
		Tlvs:     []Tlv{{Tag: TagScInterfaceVersion, Value: []byte{0x50}}},
	}

	buf := resp.AppendTo(nil)
	require.Len(t, buf, resp.Length())

	got, err := decodeBindResponse(buf)
	require.NoError(t, err)
	require.Equal(t, resp, got)
}

func TestBindOperationsShareDecoderAcrossThreeCommandIDs(t *testing.T) {
	systemID, err := NewCOctetString("ESME1", 1, 16)
	require.NoError(t, err)
	password, err := NewCOctetString("secret", 1, 9)
	require.NoError(t, err)
	systemType, err := NewCOctetString("", 1, 13)
	require.NoError(t, err)
	addressRange, err := NewCOctetString("", 1, 41)
	require.NoError(t, err)

	req := BindRequest{SystemID: systemID, Password: password, SystemType: systemType, AddressRange: addressRange}
	buf := req.AppendTo(nil)

	for _, id := range []CommandID{BindTransmitterID, BindReceiverID, BindTransceiverID} {
		cmd := NewCommand(id, EsmeROk, 1, req)
		decoded, err := ReadCommand(cmd.AppendTo(nil))
		require.NoError(t, err)
		require.Equal(t, req, decoded.Body)
		_ = buf
	}
}
