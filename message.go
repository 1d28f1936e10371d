// Package fixcodec implements the Safe Message and Safe Parser halves
// of the FIX codec core (spec §4.3, §4.4): an owning, correctness-first
// representation of a FIX message, built from the same wire-format
// rules the Fast pipeline (package fast) exploits for zero-copy
// parsing.
//
// Adapted from goutham-ab-quickfix's message.go: the teacher's
// Message/FieldMap pair is map-backed and so cannot preserve
// duplicate-tag multiplicity (spec §3 requires repeating groups to be
// representable as repeated tag occurrences in order); this package
// keeps the teacher's header/body split and its rebuild-then-encode
// algorithm but replaces the backing FieldMap with an ordered
// fieldList.
package fixcodec

import (
	"bytes"
	"strconv"

	"github.com/cbusbey/fixcodec/checksum"
	"github.com/cbusbey/fixcodec/fix"
	"github.com/cbusbey/fixcodec/fixtime"
	"github.com/cbusbey/fixcodec/tag"
	"github.com/cbusbey/fixcodec/wire"
)

// Message is an owning collection of FIX fields split into header and
// body lists, per spec §4.3.
//
// Tags 8 (BeginString), 9 (BodyLength) and 10 (CheckSum) are never
// stored in the header/body field lists: Append silently drops them
// (this is the resolution of the §9 Open Question on header/body
// routing of tag 8 — see DESIGN.md). BeginString is carried in its own
// field and set via SetBeginString; BodyLength and CheckSum have no
// caller-visible setter at all, since both are purely derived values
// computed by Encode. Tag 35 (MsgType) is stored like any other field
// (spec §4.3) and is simply relocated to the front of the body portion
// at encode time.
type Message struct {
	beginString string
	header      fieldList
	body        fieldList
}

// New returns an empty Message.
func New() *Message {
	return &Message{}
}

// SetBeginString sets the BeginString (tag 8) value synthesized at
// encode time.
func (m *Message) SetBeginString(value string) {
	m.beginString = value
}

// BeginString returns the BeginString value previously set, or "" if
// none has been set.
func (m *Message) BeginString() string {
	return m.beginString
}

// Append routes (tag, value) to the header or body list. Duplicates
// are permitted; multiplicity is significant (spec §3). Tags 8, 9, and
// 10 are silently dropped: they are never stored among user fields.
func (m *Message) Append(t int, value string, header bool) {
	if tag.IsSynthesized(tag.Tag(t)) {
		return
	}
	if header {
		m.header.append(t, value)
	} else {
		m.body.append(t, value)
	}
}

// AppendInt appends the canonical decimal text of v.
func (m *Message) AppendInt(t int, v int, header bool) {
	m.Append(t, fix.IntValue{Value: v}.Text(), header)
}

// AppendFloat appends the canonical decimal text of v.
func (m *Message) AppendFloat(t int, v float64, header bool) {
	m.Append(t, fix.FloatValue{Value: v}.Text(), header)
}

// AppendBool appends "Y" or "N" per the FIX boolean convention.
func (m *Message) AppendBool(t int, v bool, header bool) {
	m.Append(t, fix.BoolValue{Value: v}.Text(), header)
}

// AppendString parses a single "tag=value" pair and appends it.
// Parse errors (missing "=", non-numeric tag) are silently skipped,
// per spec §4.3.
func (m *Message) AppendString(pair string, header bool) {
	eq := indexByte(pair, '=')
	if eq < 0 {
		return
	}
	t, err := strconv.Atoi(pair[:eq])
	if err != nil {
		return
	}
	m.Append(t, pair[eq+1:], header)
}

// AppendPairs batch-appends min(len(tags), len(values)) fields.
func (m *Message) AppendPairs(tags []int, values []string, header bool) {
	n := len(tags)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		m.Append(tags[i], values[i], header)
	}
}

// AppendLengthPrefixed appends the length tag then the data tag, for
// a length-prefixed binary field (spec §3). data may contain embedded
// SOH bytes; they survive intact through Encode and Parse.
func (m *Message) AppendLengthPrefixed(lengthTag, dataTag int, data []byte, header bool) {
	m.AppendInt(lengthTag, len(data), header)
	m.Append(dataTag, string(data), header)
}

// AppendUTCTimestamp appends ts formatted as UTCTimestamp.
func (m *Message) AppendUTCTimestamp(t int, ts float64, precision fixtime.Precision, header bool) {
	m.Append(t, fixtime.UTCTimestamp(ts, precision), header)
}

// AppendUTCTimeOnly appends ts formatted as UTCTimeOnly.
func (m *Message) AppendUTCTimeOnly(t int, ts float64, precision fixtime.Precision, header bool) {
	m.Append(t, fixtime.UTCTimeOnly(ts, precision), header)
}

// AppendUTCDateOnly appends ts formatted as UTCDateOnly.
func (m *Message) AppendUTCDateOnly(t int, ts float64, header bool) {
	m.Append(t, fixtime.UTCDateOnly(ts), header)
}

// AppendTZTimestamp appends ts, shifted by offsetSeconds, formatted as
// TZTimestamp.
func (m *Message) AppendTZTimestamp(t int, ts float64, offsetSeconds int, precision fixtime.Precision, header bool) {
	m.Append(t, fixtime.TZTimestamp(ts, offsetSeconds, precision), header)
}

// AppendLocalMktDate appends ts formatted as LocalMktDate.
func (m *Message) AppendLocalMktDate(t int, ts float64, header bool) {
	m.Append(t, fixtime.LocalMktDate(ts), header)
}

// AppendMonthYear appends ts formatted as MonthYear.
func (m *Message) AppendMonthYear(t int, ts float64, header bool) {
	m.Append(t, fixtime.MonthYear(ts), header)
}

// GetAll returns every occurrence of t, header list first then body
// list, in append order.
func (m *Message) GetAll(t int) []string {
	var out []string
	for _, f := range m.header.fields {
		if f.Tag == t {
			out = append(out, f.Value)
		}
	}
	for _, f := range m.body.fields {
		if f.Tag == t {
			out = append(out, f.Value)
		}
	}
	return out
}

// Get returns the nth (1-based) occurrence of t, counted across the
// header-then-body sequence. nth <= 0 is treated as 1. Absent returns
// ("", false).
func (m *Message) Get(t int, nth int) (string, bool) {
	if nth <= 0 {
		nth = 1
	}
	all := m.GetAll(t)
	if nth > len(all) {
		return "", false
	}
	return all[nth-1], true
}

// Set updates the first occurrence of t (header searched before
// body); if no occurrence exists, it is appended to the body.
func (m *Message) Set(t int, value string) {
	if tag.IsSynthesized(tag.Tag(t)) {
		return
	}
	for i := range m.header.fields {
		if m.header.fields[i].Tag == t {
			m.header.fields[i].Value = value
			return
		}
	}
	for i := range m.body.fields {
		if m.body.fields[i].Tag == t {
			m.body.fields[i].Value = value
			return
		}
	}
	m.body.append(t, value)
}

// Remove removes the nth (1-based) occurrence of t, counted across
// the header-then-body sequence, and reports whether it removed one.
func (m *Message) Remove(t int, nth int) bool {
	if nth <= 0 {
		nth = 1
	}
	removed, consumed := m.header.removeNth(t, nth, 0)
	if removed {
		return true
	}
	removed, _ = m.body.removeNth(t, nth, consumed)
	return removed
}

// Clear empties both the header and body lists, and clears
// BeginString. Reset is an alias for Clear (spec §4.3).
func (m *Message) Clear() {
	m.beginString = ""
	m.header.clear()
	m.body.clear()
}

// Reset is an alias for Clear.
func (m *Message) Reset() {
	m.Clear()
}

// Clone returns an independent deep copy of m.
func (m *Message) Clone() *Message {
	return &Message{
		beginString: m.beginString,
		header:      m.header.clone(),
		body:        m.body.clone(),
	}
}

// Validate reports whether both BeginString and MsgType (tag 35) are
// present. It does not verify the wire checksum; see ValidateChecksum
// for a stricter check (§9 Open Question).
func (m *Message) Validate() bool {
	return m.beginString != "" && m.HasField(int(tag.MsgType))
}

// ValidateChecksum additionally verifies that wireBytes' trailing
// "10=" field matches the modulo-256 checksum of the bytes preceding
// it. wireBytes is expected to be the output of Encode (or an
// equivalent well-formed FIX message). This is a stricter extension
// beyond Validate's documented contract (spec §9 Open Question), kept
// separate so Validate's existing behavior is unchanged.
func (m *Message) ValidateChecksum(wireBytes []byte) bool {
	if !m.Validate() {
		return false
	}
	idx := bytes.LastIndex(wireBytes, []byte("10="))
	if idx < 0 {
		return false
	}
	want := checksum.Fast(wireBytes[:idx])
	got := wireBytes[idx+len("10="):]
	return string(got) == padChecksum(want)+string([]byte{wire.SOH})
}

// CountFields returns the total number of fields across header and
// body (BeginString is not counted; it is not stored as a field).
func (m *Message) CountFields() int {
	return len(m.header.fields) + len(m.body.fields)
}

// HasField reports whether t is present. BeginString (tag 8) is
// special-cased to check the dedicated field rather than the field
// lists, since Append never stores it there.
func (m *Message) HasField(t int) bool {
	if t == int(tag.BeginString) {
		return m.beginString != ""
	}
	return m.header.has(t) || m.body.has(t)
}

// Encode produces the wire bytes for m: header fields then body
// fields in append order, minus the synthesized tags, with tag 35
// relocated first in the body portion, body length computed, and the
// checksum appended, per spec §4.3's encoding algorithm.
func (m *Message) Encode() []byte {
	return m.encode(false)
}

// EncodeRaw emits every stored field in original order without
// synthesizing BeginString/BodyLength/CheckSum or relocating MsgType.
// Used only for debug dumps (spec §4.3).
func (m *Message) EncodeRaw() []byte {
	return m.encode(true)
}

func (m *Message) encode(raw bool) []byte {
	if raw {
		var buf bytes.Buffer
		for _, f := range m.header.fields {
			writeField(&buf, f.Tag, f.Value)
		}
		for _, f := range m.body.fields {
			writeField(&buf, f.Tag, f.Value)
		}
		return buf.Bytes()
	}

	var msgType string
	haveMsgType := false
	var rest bytes.Buffer
	capture := func(f field) {
		if f.Tag == int(tag.MsgType) {
			if !haveMsgType {
				msgType = f.Value
				haveMsgType = true
			}
			return
		}
		writeField(&rest, f.Tag, f.Value)
	}
	for _, f := range m.header.fields {
		capture(f)
	}
	for _, f := range m.body.fields {
		capture(f)
	}

	var bodyContent bytes.Buffer
	writeField(&bodyContent, int(tag.MsgType), msgType)
	bodyContent.Write(rest.Bytes())

	var full bytes.Buffer
	writeField(&full, int(tag.BeginString), m.beginString)
	full.WriteString(strconv.Itoa(int(tag.BodyLength)))
	full.WriteByte('=')
	full.WriteString(strconv.Itoa(bodyContent.Len()))
	full.WriteByte(wire.SOH)
	full.Write(bodyContent.Bytes())

	sum := checksum.Fast(full.Bytes())
	full.WriteString(strconv.Itoa(int(tag.CheckSum)))
	full.WriteByte('=')
	full.WriteString(padChecksum(sum))
	full.WriteByte(wire.SOH)

	return full.Bytes()
}

func writeField(buf *bytes.Buffer, t int, value string) {
	buf.WriteString(strconv.Itoa(t))
	buf.WriteByte('=')
	buf.WriteString(value)
	buf.WriteByte(wire.SOH)
}

func padChecksum(sum byte) string {
	s := strconv.Itoa(int(sum))
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// ReverseRoute returns a new Message with routing header fields
// initialized as the reverse of m's, for constructing a reply.
// Adapted from goutham-ab-quickfix's Message.reverseRoute, translated
// from FieldMap lookups to Get/Append against this package's
// fieldList storage.
func (m *Message) ReverseRoute() *Message {
	reply := New()

	route := func(src, dest tag.Tag) {
		if v, ok := m.Get(int(src), 1); ok && v != "" {
			reply.Append(int(dest), v, true)
		}
	}

	route(tag.SenderCompID, tag.TargetCompID)
	route(tag.SenderSubID, tag.TargetSubID)
	route(tag.SenderLocationID, tag.TargetLocationID)

	route(tag.TargetCompID, tag.SenderCompID)
	route(tag.TargetSubID, tag.SenderSubID)
	route(tag.TargetLocationID, tag.SenderLocationID)

	route(tag.OnBehalfOfCompID, tag.DeliverToCompID)
	route(tag.OnBehalfOfSubID, tag.DeliverToSubID)
	route(tag.DeliverToCompID, tag.OnBehalfOfCompID)
	route(tag.DeliverToSubID, tag.OnBehalfOfSubID)

	// Tags added in FIX 4.1.
	if m.beginString != BeginStringFIX40 {
		route(tag.OnBehalfOfLocationID, tag.DeliverToLocationID)
		route(tag.DeliverToLocationID, tag.OnBehalfOfLocationID)
	}

	return reply
}
