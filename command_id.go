package smppd

import "fmt"

// CommandID selects a PDU's body variant. Request and response IDs for the
// same operation differ only in the high bit (0x8000_0000).
//
// Grounded in the teacher-adjacent fiorix/go-smpp pdu.ID table (see
// other_examples), generalized to the full SMPP 5.0 operation set.
type CommandID uint32

// respBit is the bit that, when set, turns a request CommandID into its
// response counterpart.
const respBit CommandID = 0x80000000

const (
	GenericNackID         CommandID = 0x80000000
	BindReceiverID        CommandID = 0x00000001
	BindReceiverRespID    CommandID = 0x80000001
	BindTransmitterID     CommandID = 0x00000002
	BindTransmitterRespID CommandID = 0x80000002
	QuerySMID             CommandID = 0x00000003
	QuerySMRespID         CommandID = 0x80000003
	SubmitSMID            CommandID = 0x00000004
	SubmitSMRespID        CommandID = 0x80000004
	DeliverSMID           CommandID = 0x00000005
	DeliverSMRespID       CommandID = 0x80000005
	UnbindID              CommandID = 0x00000006
	UnbindRespID          CommandID = 0x80000006
	ReplaceSMID           CommandID = 0x00000007
	ReplaceSMRespID       CommandID = 0x80000007
	CancelSMID            CommandID = 0x00000008
	CancelSMRespID        CommandID = 0x80000008
	BindTransceiverID     CommandID = 0x00000009
	BindTransceiverRespID CommandID = 0x80000009
	OutbindID             CommandID = 0x0000000B
	EnquireLinkID         CommandID = 0x00000015
	EnquireLinkRespID     CommandID = 0x80000015
	SubmitMultiID         CommandID = 0x00000021
	SubmitMultiRespID     CommandID = 0x80000021
	AlertNotificationID   CommandID = 0x00000102
	DataSMID              CommandID = 0x00000103
	DataSMRespID          CommandID = 0x80000103
	BroadcastSMID         CommandID = 0x00000111
	BroadcastSMRespID     CommandID = 0x80000111
	QueryBroadcastSMID       CommandID = 0x00000112
	QueryBroadcastSMRespID   CommandID = 0x80000112
	CancelBroadcastSMID      CommandID = 0x00000113
	CancelBroadcastSMRespID  CommandID = 0x80000113
)

var commandIDNames = map[CommandID]string{
	GenericNackID:           "generic_nack",
	BindReceiverID:          "bind_receiver",
	BindReceiverRespID:      "bind_receiver_resp",
	BindTransmitterID:       "bind_transmitter",
	BindTransmitterRespID:   "bind_transmitter_resp",
	QuerySMID:               "query_sm",
	QuerySMRespID:           "query_sm_resp",
	SubmitSMID:              "submit_sm",
	SubmitSMRespID:          "submit_sm_resp",
	DeliverSMID:             "deliver_sm",
	DeliverSMRespID:         "deliver_sm_resp",
	UnbindID:                "unbind",
	UnbindRespID:            "unbind_resp",
	ReplaceSMID:             "replace_sm",
	ReplaceSMRespID:         "replace_sm_resp",
	CancelSMID:              "cancel_sm",
	CancelSMRespID:          "cancel_sm_resp",
	BindTransceiverID:       "bind_transceiver",
	BindTransceiverRespID:   "bind_transceiver_resp",
	OutbindID:               "outbind",
	EnquireLinkID:           "enquire_link",
	EnquireLinkRespID:       "enquire_link_resp",
	SubmitMultiID:           "submit_multi",
	SubmitMultiRespID:       "submit_multi_resp",
	AlertNotificationID:     "alert_notification",
	DataSMID:                "data_sm",
	DataSMRespID:            "data_sm_resp",
	BroadcastSMID:           "broadcast_sm",
	BroadcastSMRespID:       "broadcast_sm_resp",
	QueryBroadcastSMID:      "query_broadcast_sm",
	QueryBroadcastSMRespID:  "query_broadcast_sm_resp",
	CancelBroadcastSMID:     "cancel_broadcast_sm",
	CancelBroadcastSMRespID: "cancel_broadcast_sm_resp",
}

// String returns the conventional lower_snake_case SMPP name for id, or a
// hex fallback for unrecognized ids (unknown command ids are never a decode
// error — see ReadCommand).
func (id CommandID) String() string {
	if s, ok := commandIDNames[id]; ok {
		return s
	}
	return fmt.Sprintf("unknown(0x%08x)", uint32(id))
}

// IsResponse reports whether id is a response-side command id.
func (id CommandID) IsResponse() bool {
	return id&respBit != 0 || id == GenericNackID
}

// Response returns the response-side CommandID for a request id.
func (id CommandID) Response() CommandID {
	return id | respBit
}

// HasBody reports whether id's operation defines a body at all. It returns
// false for enquire_link, enquire_link_resp, unbind, unbind_resp,
// generic_nack, cancel_sm_resp, replace_sm_resp and cancel_broadcast_sm_resp,
// and true for every other id; command_status is not consulted.
func (id CommandID) HasBody() bool {
	switch id {
	case EnquireLinkID, EnquireLinkRespID, UnbindID, UnbindRespID, GenericNackID,
		CancelSMRespID, ReplaceSMRespID, CancelBroadcastSMRespID:
		return false
	default:
		return true
	}
}
