// Package tag defines well-known FIX tag numbers and the header/body
// routing rules the codec uses when it cannot rely on a full data
// dictionary.
package tag

// Tag is a FIX field tag. Valid wire tags are in [1, 99999].
type Tag int

// Administrative header/trailer tags. BeginString, BodyLength and
// CheckSum are synthesized at encode time and never stored among
// user-appended fields; MsgType is stored like any other field and
// placed first in the body at encode time.
const (
	BeginString Tag = 8
	BodyLength  Tag = 9
	MsgType     Tag = 35
	CheckSum    Tag = 10
)

// Session-header routing tags used by ReverseRoute.
const (
	SenderCompID         Tag = 49
	TargetCompID         Tag = 56
	OnBehalfOfCompID     Tag = 115
	DeliverToCompID      Tag = 128
	SenderSubID          Tag = 50
	TargetSubID          Tag = 57
	OnBehalfOfSubID      Tag = 116
	DeliverToSubID       Tag = 129
	SenderLocationID     Tag = 142
	TargetLocationID     Tag = 143
	OnBehalfOfLocationID Tag = 144
	DeliverToLocationID  Tag = 145
)

// headerTags is the membership set behind IsHeader: the session-header
// routing tags above. Tags 8, 9, 10 and 35 are not in it.
var headerTags = map[Tag]struct{}{
	SenderCompID:         {},
	TargetCompID:         {},
	OnBehalfOfCompID:     {},
	DeliverToCompID:      {},
	SenderSubID:          {},
	TargetSubID:          {},
	OnBehalfOfSubID:      {},
	DeliverToSubID:       {},
	SenderLocationID:     {},
	TargetLocationID:     {},
	OnBehalfOfLocationID: {},
	DeliverToLocationID:  {},
}

// IsHeader reports whether t is one of the well-known session-header
// routing tags. It is advisory only: the codec's actual header/body
// placement is driven by the caller's explicit routing flag at append
// time (spec §4.3), not by this table.
func IsHeader(t Tag) bool {
	_, ok := headerTags[t]
	return ok
}

// IsSynthesized reports whether t is one of the three tags the encoder
// always computes itself (BeginString, BodyLength, CheckSum) and so
// must never be stored verbatim among user fields.
func IsSynthesized(t Tag) bool {
	return t == BeginString || t == BodyLength || t == CheckSum
}

// Valid reports whether t falls in the wire-legal tag range.
func Valid(t Tag) bool {
	return t > 0 && t <= 99999
}
