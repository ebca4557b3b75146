package smppd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBindTransceiverSubmitSmScenario is the literal Bind -> SubmitSm ->
// Response scenario: a bind_transceiver naming a specific system_id and
// password, followed by a submit_sm carrying a specific short_message.
func TestBindTransceiverSubmitSmScenario(t *testing.T) {
	systemID, err := NewCOctetString("NfDfddEKVI0NCxO", 1, 16)
	require.NoError(t, err)
	password, err := NewCOctetString("rEZYMq5j", 1, 9)
	require.NoError(t, err)

	bind := NewCommand(BindTransceiverID, EsmeROk, 1, BindRequest{
		SystemID:         systemID,
		Password:         password,
		InterfaceVersion: Smpp5_0,
	})

	buf := bind.AppendTo(nil)
	require.Len(t, buf, bind.Length())
	// command_length: 16-byte header + 30-byte body (16+9+1+1+1+1+1).
	require.EqualValues(t, 46, beU32(buf[0:4]))
	require.Equal(t, uint32(BindTransceiverID), beU32(buf[4:8]))
	require.Equal(t, uint32(EsmeROk), beU32(buf[8:12]))
	require.Equal(t, uint32(1), beU32(buf[12:16]))

	decoded, err := ReadCommand(buf)
	require.NoError(t, err)
	got, ok := decoded.Body.(BindRequest)
	require.True(t, ok)
	require.Equal(t, "NfDfddEKVI0NCxO", got.SystemID.String())
	require.Equal(t, "rEZYMq5j", got.Password.String())
	require.Equal(t, Smpp5_0, got.InterfaceVersion)

	shortMessage, err := NewOctetString([]byte("Hi, I am a short message."), 0, 254)
	require.NoError(t, err)
	submit := NewCommand(SubmitSMID, EsmeROk, 2, SubmitSm{ShortMessage: shortMessage})
	submitBuf := submit.AppendTo(nil)
	require.Equal(t, uint32(SubmitSMID), beU32(submitBuf[4:8]))
	require.Equal(t, uint32(2), beU32(submitBuf[12:16]))

	decodedSubmit, err := ReadCommand(submitBuf)
	require.NoError(t, err)
	gotSubmit, ok := decodedSubmit.Body.(SubmitSm)
	require.True(t, ok)
	require.Equal(t, "Hi, I am a short message.", string(gotSubmit.ShortMessage.Bytes()))
}

// TestUnknownCommandPreservesBytes is the literal unknown-command-id
// scenario: a frame with command_id 0xDEADBEEF and 4 opaque body bytes must
// decode without error and re-encode byte-identical.
func TestUnknownCommandPreservesBytes(t *testing.T) {
	raw := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	frame := make([]byte, 0, 20)
	frame = writeU32(frame, 20)
	frame = writeU32(frame, 0xDEADBEEF)
	frame = writeU32(frame, 0)
	frame = writeU32(frame, 1)
	frame = append(frame, raw...)

	cmd, err := ReadCommand(frame)
	require.NoError(t, err)
	require.Equal(t, CommandID(0xDEADBEEF), cmd.ID)
	require.Nil(t, cmd.Body)
	require.Equal(t, raw, cmd.Raw)

	require.Equal(t, frame, cmd.AppendTo(nil))
}

// TestFramingResync is property 8: decoding a valid frame followed by
// trailing garbage in a buffered stream decodes the first frame correctly
// and leaves a clean, identifiable error on the remainder.
func TestFramingResync(t *testing.T) {
	first := NewCommand(EnquireLinkID, EsmeROk, 5, nil).AppendTo(nil)
	garbage := []byte{0x01, 0x02, 0x03} // fewer than 4 bytes: an incomplete length prefix

	stream := append(append([]byte(nil), first...), garbage...)
	r := bytes.NewReader(stream)

	cmd, n, err := ReadFrom(r, 0)
	require.NoError(t, err)
	require.Equal(t, EnquireLinkID, cmd.ID)
	require.EqualValues(t, len(first), n)

	_, _, err = ReadFrom(r, 0)
	require.Error(t, err)
}

// TestCommandLengthAgreement is property 2: writing into a buffer of
// exactly Length() bytes fills it completely.
func TestCommandLengthAgreement(t *testing.T) {
	cmd := NewCommand(EnquireLinkID, EsmeROk, 1, nil)
	buf := cmd.AppendTo(make([]byte, 0, cmd.Length()))
	require.Len(t, buf, cmd.Length())
	require.Equal(t, cap(buf), len(buf))
}

func TestReadFromRejectsBelowMinLength(t *testing.T) {
	var frame [4]byte
	bin.PutUint32(frame[:], 8)
	_, _, err := ReadFrom(bytes.NewReader(frame[:]), 0)
	var minErr MinLengthError
	require.ErrorAs(t, err, &minErr)
}

func TestReadFromRejectsAboveMaxLength(t *testing.T) {
	var frame [4]byte
	bin.PutUint32(frame[:], 1<<20)
	_, _, err := ReadFrom(bytes.NewReader(frame[:]), 1024)
	var maxErr MaxLengthError
	require.ErrorAs(t, err, &maxErr)
}

func TestSequenceAllocatorWrapsBelowHighBit(t *testing.T) {
	a := &sequenceAllocator{next: 0x7FFFFFFE}
	require.EqualValues(t, 0x7FFFFFFE, a.Next())
	require.EqualValues(t, 0x7FFFFFFF, a.Next())
	require.EqualValues(t, 1, a.Next())
}

func beU32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
