// Package wire holds wire-format constants shared by the Safe and
// Fast codec pipelines: the SOH delimiter and the canonical
// length-prefixed field table (spec §3, "Length-prefixed field
// table"). The table is a fixed compile-time array, not a registry:
// spec §6 states callers may not extend it at runtime in the
// reference design.
package wire

// SOH is the FIX field delimiter, byte 0x01.
const SOH = 0x01

// LengthPrefixedPair is a (length-tag, data-tag) pair from spec §3.
// The data tag's value is read as exactly N bytes, where N is the
// immediately preceding length tag's integer value.
type LengthPrefixedPair struct {
	LengthTag int
	DataTag   int
}

// LengthPrefixedPairs is the canonical four pairs spec §3 names.
var LengthPrefixedPairs = [4]LengthPrefixedPair{
	{LengthTag: 91, DataTag: 90},   // SecureDataLen / SecureData
	{LengthTag: 93, DataTag: 89},   // SignatureLength / Signature
	{LengthTag: 212, DataTag: 213}, // XmlDataLen / XmlData
	{LengthTag: 354, DataTag: 355}, // EncodedTextLen / EncodedText
}

// DataTagFor returns the data tag paired with lengthTag, and whether
// lengthTag is one of the recognized length tags.
func DataTagFor(lengthTag int) (dataTag int, ok bool) {
	for _, p := range LengthPrefixedPairs {
		if p.LengthTag == lengthTag {
			return p.DataTag, true
		}
	}
	return 0, false
}

// IsDataTag reports whether tag is one of the recognized data tags in
// the length-prefixed table.
func IsDataTag(t int) bool {
	for _, p := range LengthPrefixedPairs {
		if p.DataTag == t {
			return true
		}
	}
	return false
}
