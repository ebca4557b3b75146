package smppd

// Context-scoped TLV tag sets restrict the universe of admissible tags for
// a particular PDU body. Rather than distinct wrapper sum-types (as in the
// Rust source's MessageSubmissionRequestTlv etc.), each is a set of
// admissible TlvTag values plus a Validate function over a []Tlv — Go has
// no clean way to express "a Tlv whose Tag is one of these N variants" as
// a closed sum type, so membership checking is the idiomatic substitute,
// grounded in the teacher's Attributes.Get-by-type lookup pattern
// (attributes.go) generalized to a tag allow-list.

func tagSet(tags ...TlvTag) map[TlvTag]struct{} {
	m := make(map[TlvTag]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return m
}

var messageSubmissionRequestTags = tagSet(
	TagAlertOnMessageDelivery, TagBillingIdentification, TagCallbackNum, TagCallbackNumAtag,
	TagCallbackNumPresInd, TagDestAddrNpCountry, TagDestAddrNpInformation, TagDestAddrNpResolution,
	TagDestAddrSubunit, TagDestBearerType, TagDestNetworkID, TagDestNetworkType, TagDestNodeID,
	TagDestSubaddress, TagDestTelematicsID, TagDestPort, TagDisplayTime, TagItsReplyType,
	TagItsSessionInfo, TagLanguageIndicator, TagMessagePayload, TagMoreMessagesToSend,
	TagMsMsgWaitFacilities, TagMsValidity, TagNumberOfMessages, TagPayloadType, TagPrivacyIndicator,
	TagQosTimeToLive, TagSarMsgRefNum, TagSarSegmentSeqnum, TagSarTotalSegments, TagSetDpf,
	TagSmsSignal, TagSourceAddrSubunit, TagSourceBearerType, TagSourceNetworkID, TagSourceNetworkType,
	TagSourceNodeID, TagSourcePort, TagSourceSubaddress, TagSourceTelematicsID,
	TagUserMessageReference, TagUserResponseCode, TagUssdServiceOp,
)

var messageSubmissionResponseTags = tagSet(
	TagAdditionalStatusInfoText, TagDeliveryFailureReason, TagDpfResult, TagNetworkErrorCode,
)

var messageDeliveryRequestTags = tagSet(
	TagCallbackNum, TagCallbackNumAtag, TagCallbackNumPresInd, TagDestAddrNpCountry,
	TagDestAddrNpInformation, TagDestAddrNpResolution, TagDestAddrSubunit, TagDestNetworkID,
	TagDestNodeID, TagDestSubaddress, TagDestPort, TagDpfResult, TagItsReplyType, TagItsSessionInfo,
	TagLanguageIndicator, TagMessagePayload, TagMessageState, TagNetworkErrorCode, TagPayloadType,
	TagPrivacyIndicator, TagReceiptedMessageID, TagSarMsgRefNum, TagSarSegmentSeqnum,
	TagSarTotalSegments, TagSourceAddrSubunit, TagSourceNetworkID, TagSourceNodeID, TagSourcePort,
	TagSourceSubaddress, TagUserMessageReference, TagUserResponseCode, TagUssdServiceOp,
)

var messageDeliveryResponseTags = tagSet(
	TagAdditionalStatusInfoText, TagDeliveryFailureReason, TagNetworkErrorCode,
)

var broadcastRequestTags = tagSet(
	TagAlertOnMessageDelivery, TagBroadcastAreaIdentifier, TagBroadcastContentType,
	TagBroadcastChannelIndicator, TagBroadcastContentTypeInfo,
	TagBroadcastMessageClass, TagBroadcastServiceGroup, TagCallbackNum, TagCallbackNumAtag,
	TagCallbackNumPresInd, TagDestAddrSubunit, TagDestSubaddress, TagDestPort, TagDisplayTime,
	TagLanguageIndicator, TagMessagePayload, TagMsValidity, TagPayloadType, TagPrivacyIndicator,
	TagSmsSignal, TagSourceAddrSubunit, TagSourcePort, TagSourceSubaddress, TagUserMessageReference,
)

var broadcastResponseTags = tagSet(TagBroadcastErrorStatus, TagBroadcastAreaIdentifier)

// replaceMessageRequestTags is the admissible tag set for replace_sm: per
// the Rust ground truth's ReplaceSm (rusmpp-core/src/pdus/borrowed/replace_sm.rs),
// message_payload is the sole optional parameter this operation carries.
var replaceMessageRequestTags = tagSet(TagMessagePayload)

var queryBroadcastResponseTags = tagSet(TagBroadcastEndTime, TagUserMessageReference)

// validateTlvTags reports an error if any Tlv in tlvs has a tag outside
// admissible. Unknown-but-admitted tags are fine (they still decode as raw
// bytes via Tlv.Value); this only rejects tags foreign to the PDU context.
func validateTlvTags(tlvs []Tlv, admissible map[TlvTag]struct{}, place BoundsErrPlace) error {
	for _, t := range tlvs {
		if _, ok := admissible[t.Tag]; !ok {
			return UnsupportedKeyError{Place: place, Key: uint32(t.Tag)}
		}
	}
	return nil
}
