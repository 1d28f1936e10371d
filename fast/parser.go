package fast

import (
	"github.com/cbusbey/fixcodec/wire"
)

// ParseInto populates msg in place from input: it copies input into
// msg's backing buffer, resets the index arrays, then walks the
// buffer once recording (tag, start, end) triples via scanByte's
// word-parallel search for '=' and SOH (spec §4.6's Fast Parser).
//
// There is no error return. A malformed tag (non-digits before '=')
// advances the scan by one byte and continues, the same
// resync-by-one-byte guarantee the Safe Parser provides, so the walk
// always terminates in O(len(input)).
func ParseInto(input []byte, msg *Message) {
	msg.buf = append(msg.buf[:0], input...)
	msg.Clear()

	buf := msg.buf
	n := len(buf)
	pos := 0

	// pendingDataTag/pendingLen mirror the Safe Parser's length-
	// prefixed field state machine (parser.go in the root package):
	// set after a length tag is seen, consumed by the next field that
	// carries the matching data tag; intervening tags leave it set.
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

// scanValue locates the end of the value starting at start, returning
// the byte range and the position to resume scanning from. A value
// with no terminating SOH runs to the end of the buffer, mirroring
// the root package's extractFields behavior for a truncated field.
func scanValue(buf []byte, start, n int) (valStart, valEnd, nextPos int) {
	rel := scanByte(buf[start:], wire.SOH)
	if rel < 0 {
		return start, n, n
	}
	return start, start + rel, start + rel + 1
}

// parseDigitsFast parses an all-digit byte slice into an int. It
// rejects empty input and any non-digit byte, returning ok=false
// rather than an error, since the Fast Parser never returns errors.
func parseDigitsFast(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
