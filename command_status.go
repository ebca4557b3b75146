package smppd

import "fmt"

// CommandStatus is the means by which an ESME or MC sends an error code to
// its peer. Requests MUST carry EsmeROk (0); responses carry the error
// taxonomy below. It is an open code space: any raw uint32 is a valid
// CommandStatus, so decoding never fails on an unrecognized value.
//
// Grounded in the original Rusmpp CommandStatus enum
// (rusmpp/src/pdus/types/command_status.rs) and cross-checked against the
// esmeStatus table in the fiorix/go-smpp pdu.Header (other_examples).
type CommandStatus uint32

const (
	EsmeROk               CommandStatus = 0x00000000
	EsmeRInvMsgLen        CommandStatus = 0x00000001
	EsmeRInvCmdLen        CommandStatus = 0x00000002
	EsmeRInvCmdID         CommandStatus = 0x00000003
	EsmeRInvBndSts        CommandStatus = 0x00000004
	EsmeRAlyBnd           CommandStatus = 0x00000005
	EsmeRInvPrtFlg        CommandStatus = 0x00000006
	EsmeRInvRegDlvFlg     CommandStatus = 0x00000007
	EsmeRSysErr           CommandStatus = 0x00000008
	EsmeRInvSrcAdr        CommandStatus = 0x0000000A
	EsmeRInvDstAdr        CommandStatus = 0x0000000B
	EsmeRInvMsgID         CommandStatus = 0x0000000C
	EsmeRBindFail         CommandStatus = 0x0000000D
	EsmeRInvPaswd         CommandStatus = 0x0000000E
	EsmeRInvSysID         CommandStatus = 0x0000000F
	EsmeRCancelFail       CommandStatus = 0x00000011
	EsmeRReplaceFail      CommandStatus = 0x00000013
	EsmeRMsgQFul          CommandStatus = 0x00000014
	EsmeRInvSerTyp        CommandStatus = 0x00000015
	EsmeRInvNumDests      CommandStatus = 0x00000033
	EsmeRInvDlName        CommandStatus = 0x00000034
	EsmeRInvDestFlag      CommandStatus = 0x00000040
	EsmeRInvSubRep        CommandStatus = 0x00000042
	EsmeRInvEsmClass      CommandStatus = 0x00000043
	EsmeRCntSubDl         CommandStatus = 0x00000044
	EsmeRSubmitFail       CommandStatus = 0x00000045
	EsmeRInvSrcTon        CommandStatus = 0x00000048
	EsmeRInvSrcNpi        CommandStatus = 0x00000049
	EsmeRInvDstTon        CommandStatus = 0x00000050
	EsmeRInvDstNpi        CommandStatus = 0x00000051
	EsmeRInvSysTyp        CommandStatus = 0x00000053
	EsmeRInvRepFlag       CommandStatus = 0x00000054
	EsmeRInvNumMsgs       CommandStatus = 0x00000055
	EsmeRThrottled        CommandStatus = 0x00000058
	EsmeRInvSched         CommandStatus = 0x00000061
	EsmeRInvExpiry        CommandStatus = 0x00000062
	EsmeRInvDftMsgID      CommandStatus = 0x00000063
	EsmeRxTAppn           CommandStatus = 0x00000064
	EsmeRxPAppn           CommandStatus = 0x00000065
	EsmeRxRAppn           CommandStatus = 0x00000066
	EsmeRQueryFail        CommandStatus = 0x00000067
	EsmeRInvTlvStream     CommandStatus = 0x000000C0
	EsmeRTlvNotAllwd      CommandStatus = 0x000000C1
	EsmeRInvTlvLen        CommandStatus = 0x000000C2
	EsmeRMissingTlv       CommandStatus = 0x000000C3
	EsmeRInvTlvVal        CommandStatus = 0x000000C4
	EsmeRDeliveryFailure  CommandStatus = 0x000000FE
	EsmeRUnknownErr       CommandStatus = 0x000000FF
	EsmeRSerTypUnauth     CommandStatus = 0x00000100
	EsmeRProhibited       CommandStatus = 0x00000101
	EsmeRSerTypUnavail    CommandStatus = 0x00000102
	EsmeRSerTypDenied     CommandStatus = 0x00000103
	EsmeRInvDcs           CommandStatus = 0x00000104
	EsmeRInvSrcAddrSubunit CommandStatus = 0x00000105
	EsmeRInvDstAddrSubunit CommandStatus = 0x00000106
	EsmeRInvBcastFreqInt  CommandStatus = 0x00000107
	EsmeRInvBcastAliasName CommandStatus = 0x00000108
	EsmeRInvBcastAreaFmt  CommandStatus = 0x00000109
	EsmeRInvNumBcastAreas CommandStatus = 0x0000010A
	EsmeRInvBcastCntType  CommandStatus = 0x0000010B
	EsmeRInvBcastMsgClass CommandStatus = 0x0000010C
	EsmeRBcastFail        CommandStatus = 0x0000010D
	EsmeRBcastQueryFail   CommandStatus = 0x0000010E
	EsmeRBcastCancelFail  CommandStatus = 0x0000010F
	EsmeRInvBcastRep      CommandStatus = 0x00000110
	EsmeRInvBcastSrvGrp   CommandStatus = 0x00000111
	EsmeRInvBcastChanInd  CommandStatus = 0x00000112
)

var commandStatusNames = map[CommandStatus]string{
	EsmeROk:                "OK",
	EsmeRInvMsgLen:         "message length is invalid",
	EsmeRInvCmdLen:         "command length is invalid",
	EsmeRInvCmdID:          "invalid command id",
	EsmeRInvBndSts:         "incorrect bind status for given command",
	EsmeRAlyBnd:            "esme already in bound state",
	EsmeRInvPrtFlg:         "invalid priority flag",
	EsmeRInvRegDlvFlg:      "invalid registered delivery flag",
	EsmeRSysErr:            "system error",
	EsmeRInvSrcAdr:         "invalid source address",
	EsmeRInvDstAdr:         "invalid destination address",
	EsmeRInvMsgID:          "invalid message id",
	EsmeRBindFail:          "bind failed",
	EsmeRInvPaswd:          "invalid password",
	EsmeRInvSysID:          "invalid system id",
	EsmeRCancelFail:        "cancel_sm failed",
	EsmeRReplaceFail:       "replace_sm failed",
	EsmeRMsgQFul:           "message queue full",
	EsmeRInvSerTyp:         "invalid service type",
	EsmeRInvNumDests:       "invalid number of destinations",
	EsmeRInvDlName:         "invalid distribution list name",
	EsmeRInvDestFlag:       "invalid destination flag",
	EsmeRInvSubRep:         "invalid submit with replace request",
	EsmeRInvEsmClass:       "invalid esm_class field data",
	EsmeRCntSubDl:          "cannot submit to distribution list",
	EsmeRSubmitFail:        "submit_sm or submit_multi failed",
	EsmeRInvSrcTon:         "invalid source address ton",
	EsmeRInvSrcNpi:         "invalid source address npi",
	EsmeRInvDstTon:         "invalid destination address ton",
	EsmeRInvDstNpi:         "invalid destination address npi",
	EsmeRInvSysTyp:         "invalid system_type field",
	EsmeRInvRepFlag:        "invalid replace_if_present flag",
	EsmeRInvNumMsgs:        "invalid number of messages",
	EsmeRThrottled:         "throttling error",
	EsmeRInvSched:          "invalid scheduled delivery time",
	EsmeRInvExpiry:         "invalid message validity period",
	EsmeRInvDftMsgID:       "predefined message invalid or not found",
	EsmeRxTAppn:            "esme receiver temporary app error",
	EsmeRxPAppn:            "esme receiver permanent app error",
	EsmeRxRAppn:            "esme receiver reject message error",
	EsmeRQueryFail:         "query_sm request failed",
	EsmeRInvTlvStream:      "error in the optional part of the pdu body",
	EsmeRTlvNotAllwd:       "tlv not allowed",
	EsmeRInvTlvLen:         "invalid parameter length",
	EsmeRMissingTlv:        "expected tlv missing",
	EsmeRInvTlvVal:         "invalid tlv value",
	EsmeRDeliveryFailure:   "delivery failure (data_sm_resp)",
	EsmeRUnknownErr:        "unknown error",
	EsmeRSerTypUnauth:      "esme not authorised to use service type",
	EsmeRProhibited:        "esme prohibited from using operation",
	EsmeRSerTypUnavail:     "service type denied due to unavailability",
	EsmeRSerTypDenied:      "service type denied for other reasons",
	EsmeRInvDcs:            "invalid data coding scheme",
	EsmeRInvSrcAddrSubunit: "invalid source address subunit",
	EsmeRInvDstAddrSubunit: "invalid destination address subunit",
	EsmeRInvBcastFreqInt:   "invalid broadcast frequency interval",
	EsmeRInvBcastAliasName: "invalid broadcast alias name",
	EsmeRInvBcastAreaFmt:   "invalid broadcast area format",
	EsmeRInvNumBcastAreas:  "invalid number of broadcast areas",
	EsmeRInvBcastCntType:   "invalid broadcast content type",
	EsmeRInvBcastMsgClass:  "invalid broadcast message class",
	EsmeRBcastFail:         "broadcast_sm failed",
	EsmeRBcastQueryFail:    "query_broadcast_sm failed",
	EsmeRBcastCancelFail:   "cancel_broadcast_sm failed",
	EsmeRInvBcastRep:       "invalid broadcast repetitions",
	EsmeRInvBcastSrvGrp:    "invalid broadcast service group",
	EsmeRInvBcastChanInd:   "invalid broadcast channel indicator",
}

// String returns a human-readable description of s, or a hex fallback for
// the open error-code space.
func (s CommandStatus) String() string {
	if m, ok := commandStatusNames[s]; ok {
		return m
	}
	return fmt.Sprintf("unknown status 0x%08x", uint32(s))
}

// Error implements the error interface so a non-ok CommandStatus can be
// returned and compared directly, matching the fiorix/go-smpp Status.Error
// convention this is grounded on.
func (s CommandStatus) Error() string {
	return s.String()
}

// IsOK reports whether s is EsmeROk.
func (s CommandStatus) IsOK() bool { return s == EsmeROk }
