package smppd

// SessionState models one connection's position in the SMPP 5.0 bind
// lifecycle. The state machine is advisory: the codec never drops valid
// wire bytes on its account; enforcement is a caller's (or conn.Conn's)
// choice.
//
// Grounded directly on the original Rusmpp SessionState state machine
// (rusmpp-core/src/session/session_state.rs), re-expressed as Go constants
// and pure functions instead of match expressions.
type SessionState int

const (
	// Closed is the initial state: no socket.
	Closed SessionState = iota
	// Open: connected, not yet bound.
	Open
	// BoundTx: bound as transmitter.
	BoundTx
	// BoundRx: bound as receiver.
	BoundRx
	// BoundTrx: bound as transceiver (union of BoundTx and BoundRx sends).
	BoundTrx
	// Outbound: MC-initiated outbind pending an ESME bind.
	Outbound
	// Unbound: unbind in flight, awaiting unbind_resp.
	Unbound
)

var sessionStateNames = [...]string{"Closed", "Open", "BoundTx", "BoundRx", "BoundTrx", "Outbound", "Unbound"}

func (s SessionState) String() string {
	if int(s) < 0 || int(s) >= len(sessionStateNames) {
		return "Unknown"
	}
	return sessionStateNames[s]
}

// IsBound reports whether s is one of BoundTx, BoundRx, BoundTrx.
func (s SessionState) IsBound() bool {
	return s == BoundTx || s == BoundRx || s == BoundTrx
}

func idIn(id CommandID, set ...CommandID) bool {
	for _, x := range set {
		if id == x {
			return true
		}
	}
	return false
}

var linkCommands = []CommandID{EnquireLinkID, EnquireLinkRespID, GenericNackID}

// CanSendAsEsme reports whether an ESME in state s may send a PDU with the
// given command id, per the SMPP 5.0 §2.4 Operation Matrix.
func (s SessionState) CanSendAsEsme(id CommandID) bool {
	switch s {
	case Closed:
		return false
	case Open, Outbound:
		return idIn(id, BindReceiverID, BindTransmitterID, BindTransceiverID, EnquireLinkID, EnquireLinkRespID, GenericNackID)
	case BoundTx:
		return idIn(id,
			BroadcastSMID, CancelBroadcastSMID, CancelSMID, DataSMID,
			EnquireLinkID, EnquireLinkRespID, GenericNackID,
			QueryBroadcastSMID, QuerySMID, ReplaceSMID, SubmitMultiID, SubmitSMID,
			UnbindID, UnbindRespID,
		)
	case BoundRx:
		return idIn(id, DataSMRespID, DeliverSMRespID, EnquireLinkID, EnquireLinkRespID, GenericNackID, UnbindID, UnbindRespID)
	case BoundTrx:
		return BoundTx.CanSendAsEsme(id) || BoundRx.CanSendAsEsme(id)
	case Unbound:
		return idIn(id, linkCommands...)
	default:
		return false
	}
}

// CanReceiveAsEsme reports whether an ESME in state s may receive a PDU
// with the given command id. This is simply the MC's send-side predicate.
func (s SessionState) CanReceiveAsEsme(id CommandID) bool {
	return s.CanSendAsMc(id)
}

// CanSendAsMc reports whether an MC in state s may send a PDU with the
// given command id, per the SMPP 5.0 §2.4 Operation Matrix.
func (s SessionState) CanSendAsMc(id CommandID) bool {
	switch s {
	case Closed:
		return false
	case Open:
		return idIn(id, BindReceiverRespID, BindTransmitterRespID, BindTransceiverRespID, EnquireLinkID, EnquireLinkRespID, GenericNackID, OutbindID)
	case Outbound:
		return idIn(id, BindReceiverRespID, BindTransmitterRespID, BindTransceiverRespID, EnquireLinkID, EnquireLinkRespID, GenericNackID)
	case BoundTx:
		return idIn(id,
			BroadcastSMRespID, CancelBroadcastSMRespID, CancelSMRespID, DataSMRespID,
			EnquireLinkID, EnquireLinkRespID, GenericNackID,
			QueryBroadcastSMRespID, QuerySMRespID, ReplaceSMRespID, SubmitMultiRespID, SubmitSMRespID,
			UnbindID, UnbindRespID,
		)
	case BoundRx:
		return idIn(id, AlertNotificationID, DataSMID, DeliverSMID, EnquireLinkID, EnquireLinkRespID, GenericNackID, UnbindID, UnbindRespID)
	case BoundTrx:
		return BoundTx.CanSendAsMc(id) || BoundRx.CanSendAsMc(id)
	case Unbound:
		return idIn(id, linkCommands...)
	default:
		return false
	}
}

// CanReceiveAsMc reports whether an MC in state s may receive a PDU with
// the given command id. This is simply the ESME's send-side predicate.
func (s SessionState) CanReceiveAsMc(id CommandID) bool {
	return s.CanSendAsEsme(id)
}
