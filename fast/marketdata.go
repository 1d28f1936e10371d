package fast

import "github.com/cbusbey/fixcodec/wire"

// marketDataCapacity bounds the fixed-capacity specialization below;
// 2000 fields comfortably covers a full-depth market-data snapshot
// without growing (spec §4.5's "e.g. 2000").
const marketDataCapacity = 2000

// marketDataBufCapacity bounds the specialization's backing buffer.
// A snapshot with 2000 short fields rarely exceeds a few tens of
// kilobytes; 32KiB leaves headroom without chasing a generic message's
// worst case.
const marketDataBufCapacity = 32 * 1024

// MarketDataMessage is the fixed-capacity specialization of Message
// spec §4.5 calls for on a specific high-volume message class: its
// three index arrays and backing buffer are plain Go arrays embedded
// in the struct rather than slices backed by heap allocations, so a
// MarketDataMessage held by value never triggers an allocation of its
// own — only ParseMarketDataInto's copy into the embedded buffer costs
// anything, and that copy would be paid regardless of representation.
type MarketDataMessage struct {
	buf    [marketDataBufCapacity]byte
	bufLen int

	tags   [marketDataCapacity]int
	starts [marketDataCapacity]int
	ends   [marketDataCapacity]int
	n      int
}

// Reset truncates the message to empty without touching the backing
// arrays' contents.
func (m *MarketDataMessage) Reset() {
	m.bufLen = 0
	m.n = 0
}

// addField records one field. Once marketDataCapacity is reached,
// further fields are silently dropped rather than panicking — a
// message with more than 2000 fields does not fit this specialization
// and callers should fall back to the generic Message.
func (m *MarketDataMessage) addField(tag, start, end int) {
	if m.n >= marketDataCapacity {
		return
	}
	m.tags[m.n] = tag
	m.starts[m.n] = start
	m.ends[m.n] = end
	m.n++
}

// FieldCount returns the number of fields currently indexed.
func (m *MarketDataMessage) FieldCount() int {
	return m.n
}

// HasField reports whether tag appears at least once.
func (m *MarketDataMessage) HasField(tag int) bool {
	for i := 0; i < m.n; i++ {
		if m.tags[i] == tag {
			return true
		}
	}
	return false
}

// Get returns the first occurrence of tag.
func (m *MarketDataMessage) Get(tag int) (string, bool) {
	for i := 0; i < m.n; i++ {
		if m.tags[i] == tag {
			return string(m.buf[m.starts[i]:m.ends[i]]), true
		}
	}
	return "", false
}

// ParseMarketDataInto populates msg in place from input using the
// same scanning algorithm as ParseInto, but writing into msg's
// embedded fixed-size arrays instead of heap-backed slices. Input
// longer than marketDataBufCapacity is truncated; a market-data feed
// producing snapshots that large should use the generic Message
// instead.
func ParseMarketDataInto(input []byte, msg *MarketDataMessage) {
	msg.Reset()
	n := copy(msg.buf[:], input)
	msg.bufLen = n

	buf := msg.buf[:n]
	pos := 0
	pendingDataTag := 0
	pendingLen := 0

	for pos < n {
		eq := scanByte(buf[pos:], '=')
		if eq < 0 {
			return
		}
		eq += pos

		t, ok := parseDigitsFast(buf[pos:eq])
		if !ok {
			pos++
			continue
		}

		valueStart := eq + 1
		var start, end, nextPos int

		if pendingLen > 0 && t == pendingDataTag {
			endCandidate := valueStart + pendingLen
			if endCandidate < n && buf[endCandidate] == wire.SOH {
				start, end, nextPos = valueStart, endCandidate, endCandidate+1
			} else {
				start, end, nextPos = scanValue(buf, valueStart, n)
			}
			pendingDataTag, pendingLen = 0, 0
		} else {
			start, end, nextPos = scanValue(buf, valueStart, n)
		}

		if dataTag, isLengthTag := wire.DataTagFor(t); isLengthTag {
			if length, ok := parseDigitsFast(buf[start:end]); ok && length > 0 {
				pendingDataTag, pendingLen = dataTag, length
			}
		}

		msg.addField(t, start, end)
		pos = nextPos
	}
}

// EntryTemplate names an expected, ordered run of tags for one
// repeating-group entry in a known market-data message shape.
//
// This is the Go translation of the Open Question in spec §9 over an
// "unconditional template-walking" market-data parser: rather than
// generalizing it into the codec's contract, it is kept here as an
// opt-in fast path for callers who know their exact message shape in
// advance (grounded on gurre-prime-fix-md-go/parser.go's
// parseTradeFromSegmentFast, which extracts a fixed sequence of
// tags from one repeating-group segment without per-tag dispatch).
type EntryTemplate struct {
	Tags []int
}

// WalkTemplate extracts each tag in template from segment, in order,
// assuming segment's fields appear in exactly that sequence with no
// gaps or reordering. Any mismatch — wrong tag, missing '=', missing
// terminator — fails the whole walk rather than attempting to
// resynchronize, since a template mismatch means the caller's
// assumption about the message shape was wrong and a partial,
// best-effort result would be misleading.
func WalkTemplate(segment []byte, template []int) (values [][]byte, ok bool) {
	pos := 0
	values = make([][]byte, 0, len(template))
	for _, want := range template {
		eq := scanByte(segment[pos:], '=')
		if eq < 0 {
			return nil, false
		}
		eq += pos
		t, okTag := parseDigitsFast(segment[pos:eq])
		if !okTag || t != want {
			return nil, false
		}
		rel := scanByte(segment[eq+1:], wire.SOH)
		if rel < 0 {
			return nil, false
		}
		valStart, valEnd := eq+1, eq+1+rel
		values = append(values, segment[valStart:valEnd])
		pos = valEnd + 1
	}
	return values, true
}
