package smppd

import "fmt"

// TlvTag identifies an optional parameter (TLV). It is an open code space:
// any raw uint16 is representable; String falls back to a hex rendering
// for tags not in the known table.
//
// Grounded on the original Rusmpp TLVTag enum
// (rusmpp/src/pdus/tlvs/tlv_tag.rs), which enumerates every tag assigned by
// SMPP 5.0.
type TlvTag uint16

const (
	TagDestAddrSubunit         TlvTag = 0x0005
	TagDestNetworkType         TlvTag = 0x0006
	TagDestBearerType          TlvTag = 0x0007
	TagDestTelematicsID        TlvTag = 0x0008
	TagSourceAddrSubunit       TlvTag = 0x000D
	TagSourceNetworkType       TlvTag = 0x000E
	TagSourceBearerType        TlvTag = 0x000F
	TagSourceTelematicsID      TlvTag = 0x0010
	TagQosTimeToLive           TlvTag = 0x0017
	TagPayloadType             TlvTag = 0x0019
	TagAdditionalStatusInfoText TlvTag = 0x001D
	TagReceiptedMessageID      TlvTag = 0x001E
	TagMsMsgWaitFacilities     TlvTag = 0x0030
	TagPrivacyIndicator        TlvTag = 0x0201
	TagSourceSubaddress        TlvTag = 0x0202
	TagDestSubaddress          TlvTag = 0x0203
	TagUserMessageReference    TlvTag = 0x0204
	TagUserResponseCode        TlvTag = 0x0205
	TagSourcePort              TlvTag = 0x020A
	TagDestPort                TlvTag = 0x020B
	TagSarMsgRefNum            TlvTag = 0x020C
	TagLanguageIndicator       TlvTag = 0x020D
	TagSarTotalSegments        TlvTag = 0x020E
	TagSarSegmentSeqnum        TlvTag = 0x020F
	TagScInterfaceVersion      TlvTag = 0x0210
	TagCallbackNumPresInd      TlvTag = 0x0302
	TagCallbackNumAtag         TlvTag = 0x0303
	TagNumberOfMessages        TlvTag = 0x0304
	TagCallbackNum             TlvTag = 0x0381
	TagDpfResult               TlvTag = 0x0420
	TagSetDpf                  TlvTag = 0x0421
	TagMsAvailabilityStatus    TlvTag = 0x0422
	TagNetworkErrorCode        TlvTag = 0x0423
	TagMessagePayload          TlvTag = 0x0424
	TagDeliveryFailureReason   TlvTag = 0x0425
	TagMoreMessagesToSend      TlvTag = 0x0426
	TagMessageState            TlvTag = 0x0427
	TagCongestionState         TlvTag = 0x0428
	TagUssdServiceOp           TlvTag = 0x0501
	TagBroadcastChannelIndicator TlvTag = 0x0600
	TagBroadcastContentType    TlvTag = 0x0601
	TagBroadcastContentTypeInfo TlvTag = 0x0602
	TagBroadcastMessageClass   TlvTag = 0x0603
	TagBroadcastRepNum         TlvTag = 0x0604
	TagBroadcastFrequencyInterval TlvTag = 0x0605
	TagBroadcastAreaIdentifier TlvTag = 0x0606
	TagBroadcastErrorStatus    TlvTag = 0x0607
	TagBroadcastAreaSuccess    TlvTag = 0x0608
	TagBroadcastEndTime        TlvTag = 0x0609
	TagBroadcastServiceGroup   TlvTag = 0x060A
	TagBillingIdentification   TlvTag = 0x060B
	TagSourceNetworkID         TlvTag = 0x060D
	TagDestNetworkID           TlvTag = 0x060E
	TagSourceNodeID            TlvTag = 0x060F
	TagDestNodeID              TlvTag = 0x0610
	TagDestAddrNpResolution    TlvTag = 0x0611
	TagDestAddrNpInformation   TlvTag = 0x0612
	TagDestAddrNpCountry       TlvTag = 0x0613
	TagDisplayTime             TlvTag = 0x1201
	TagSmsSignal               TlvTag = 0x1203
	TagMsValidity              TlvTag = 0x1204
	TagAlertOnMessageDelivery  TlvTag = 0x130C
	TagItsReplyType            TlvTag = 0x1380
	TagItsSessionInfo          TlvTag = 0x1383
)

var tlvTagNames = map[TlvTag]string{
	TagDestAddrSubunit: "dest_addr_subunit", TagDestNetworkType: "dest_network_type",
	TagDestBearerType: "dest_bearer_type", TagDestTelematicsID: "dest_telematics_id",
	TagSourceAddrSubunit: "source_addr_subunit", TagSourceNetworkType: "source_network_type",
	TagSourceBearerType: "source_bearer_type", TagSourceTelematicsID: "source_telematics_id",
	TagQosTimeToLive: "qos_time_to_live", TagPayloadType: "payload_type",
	TagAdditionalStatusInfoText: "additional_status_info_text", TagReceiptedMessageID: "receipted_message_id",
	TagMsMsgWaitFacilities: "ms_msg_wait_facilities", TagPrivacyIndicator: "privacy_indicator",
	TagSourceSubaddress: "source_subaddress", TagDestSubaddress: "dest_subaddress",
	TagUserMessageReference: "user_message_reference", TagUserResponseCode: "user_response_code",
	TagSourcePort: "source_port", TagDestPort: "dest_port",
	TagSarMsgRefNum: "sar_msg_ref_num", TagLanguageIndicator: "language_indicator",
	TagSarTotalSegments: "sar_total_segments", TagSarSegmentSeqnum: "sar_segment_seqnum",
	TagScInterfaceVersion: "sc_interface_version", TagCallbackNumPresInd: "callback_num_pres_ind",
	TagCallbackNumAtag: "callback_num_atag", TagNumberOfMessages: "number_of_messages",
	TagCallbackNum: "callback_num", TagDpfResult: "dpf_result", TagSetDpf: "set_dpf",
	TagMsAvailabilityStatus: "ms_availability_status", TagNetworkErrorCode: "network_error_code",
	TagMessagePayload: "message_payload", TagDeliveryFailureReason: "delivery_failure_reason",
	TagMoreMessagesToSend: "more_messages_to_send", TagMessageState: "message_state",
	TagCongestionState: "congestion_state", TagUssdServiceOp: "ussd_service_op",
	TagBroadcastChannelIndicator: "broadcast_channel_indicator", TagBroadcastContentType: "broadcast_content_type",
	TagBroadcastContentTypeInfo: "broadcast_content_type_info", TagBroadcastMessageClass: "broadcast_message_class",
	TagBroadcastRepNum: "broadcast_rep_num", TagBroadcastFrequencyInterval: "broadcast_frequency_interval",
	TagBroadcastAreaIdentifier: "broadcast_area_identifier", TagBroadcastErrorStatus: "broadcast_error_status",
	TagBroadcastAreaSuccess: "broadcast_area_success", TagBroadcastEndTime: "broadcast_end_time",
	TagBroadcastServiceGroup: "broadcast_service_group", TagBillingIdentification: "billing_identification",
	TagSourceNetworkID: "source_network_id", TagDestNetworkID: "dest_network_id",
	TagSourceNodeID: "source_node_id", TagDestNodeID: "dest_node_id",
	TagDestAddrNpResolution: "dest_addr_np_resolution", TagDestAddrNpInformation: "dest_addr_np_information",
	TagDestAddrNpCountry: "dest_addr_np_country", TagDisplayTime: "display_time",
	TagSmsSignal: "sms_signal", TagMsValidity: "ms_validity",
	TagAlertOnMessageDelivery: "alert_on_message_delivery", TagItsReplyType: "its_reply_type",
	TagItsSessionInfo: "its_session_info",
}

// String returns the conventional snake_case tag name, or a hex fallback.
func (t TlvTag) String() string {
	if s, ok := tlvTagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("unknown(0x%04x)", uint16(t))
}

// Tlv is a single Tag-Length-Value optional parameter. Unknown tags are
// preserved verbatim in Value so that TLV streams are always
// resynchronizable, per §4.C.
type Tlv struct {
	Tag   TlvTag
	Value []byte
}

// Length returns the number of bytes t occupies on the wire (4-byte header
// plus the value).
func (t Tlv) Length() int { return 4 + len(t.Value) }

// AppendTo appends the wire encoding of t to dst.
func (t Tlv) AppendTo(dst []byte) []byte {
	dst = writeU16(dst, uint16(t.Tag))
	dst = writeU16(dst, uint16(len(t.Value)))
	return append(dst, t.Value...)
}

// decodeTlv reads one Tag-Length-Value triple from b. It always consumes
// exactly 4+value_length bytes once the 4-byte TL header is present, even
// for an unrecognized tag, keeping the outer cursor resynchronized.
func decodeTlv(b []byte) (Tlv, int, error) {
	if len(b) < 4 {
		return Tlv{}, 0, TooFewBytesError{Place: "tlv", Actual: len(b), Min: 4}
	}
	tag := TlvTag(bin.Uint16(b[0:2]))
	length := int(bin.Uint16(b[2:4]))
	if len(b) < 4+length {
		return Tlv{}, 0, TooFewBytesError{Place: "tlv.value", Actual: len(b) - 4, Min: length}
	}
	value := append([]byte(nil), b[4:4+length]...)
	return Tlv{Tag: tag, Value: value}, 4 + length, nil
}

// decodeTlvList decodes TLVs from b until it is exhausted, per the
// Vec<Tlv> "extends until the outer body length is exhausted" contract.
// max bounds the number of elements, returning TooManyElementsError if
// exceeded, matching the bounded-collection contract of §9.
func decodeTlvList(b []byte, max int, place BoundsErrPlace) ([]Tlv, error) {
	var out []Tlv
	for len(b) > 0 {
		if len(out) >= max {
			return nil, TooManyElementsError{Place: place, Max: max}
		}
		tlv, n, err := decodeTlv(b)
		if err != nil {
			return nil, err
		}
		out = append(out, tlv)
		b = b[n:]
	}
	return out, nil
}

func encodeTlvList(dst []byte, tlvs []Tlv) []byte {
	for _, t := range tlvs {
		dst = t.AppendTo(dst)
	}
	return dst
}

func tlvListLength(tlvs []Tlv) int {
	n := 0
	for _, t := range tlvs {
		n += t.Length()
	}
	return n
}

// Get returns the first Tlv in tlvs with the given tag.
func Get(tlvs []Tlv, tag TlvTag) (Tlv, bool) {
	for _, t := range tlvs {
		if t.Tag == tag {
			return t, true
		}
	}
	return Tlv{}, false
}

// upsertTlv returns tlvs with tag's value replaced by value, or value
// appended as a new Tlv if tag was not already present.
func upsertTlv(tlvs []Tlv, tag TlvTag, value []byte) []Tlv {
	for i, t := range tlvs {
		if t.Tag == tag {
			out := append([]Tlv(nil), tlvs...)
			out[i] = Tlv{Tag: tag, Value: value}
			return out
		}
	}
	return append(append([]Tlv(nil), tlvs...), Tlv{Tag: tag, Value: value})
}

// removeTlv returns tlvs with every Tlv matching tag removed.
func removeTlv(tlvs []Tlv, tag TlvTag) []Tlv {
	out := tlvs[:0:0]
	for _, t := range tlvs {
		if t.Tag != tag {
			out = append(out, t)
		}
	}
	return out
}

// maxTlvCount bounds the number of TLVs accepted in a single PDU body,
// matching the "bounded collections ... fails with TooManyElements rather
// than silently truncating" contract of §9.
const maxTlvCount = 255
