// Package fast implements the Fast Message, Fast Parser, and Fast
// Builder of spec §4.5/§4.6: a zero-allocation-on-the-hot-path,
// SIMD-style pipeline meant for sub-microsecond parsing and
// multi-million-messages-per-second encoding on a single core.
//
// Grounded on gurre-prime-fix-md-go/parser.go's single-pass
// tag/SOH scanning hot path (the scalar model for ParseInto's walk)
// and on yaninyzwitty-hyperpb-go's zero-copy field-view design
// (zc.go, field.go): a message owns one backing allocation and field
// views are plain byte-slice references whose lifetime is tied to
// that allocation, enforced by Go's ordinary slice/reference
// semantics rather than unsafe pointer arithmetic.
package fast

// Message is an indexed view over a single contiguous backing buffer
// that it owns: parallel arrays (tags, starts, ends) where field i
// is the byte range buf[starts[i]:ends[i]] (spec §4.5). A Message is
// self-owning: the backing buffer is copied in by the parser, not
// borrowed, so the Message and its field views remain valid for as
// long as the Message itself is alive.
type Message struct {
	buf    []byte
	tags   []int
	starts []int
	ends   []int
}

// NewMessage returns an empty Fast Message.
func NewMessage() *Message {
	return &Message{}
}

// addField appends to all three parallel arrays without bounds
// checking; the parser is the only writer and is responsible for
// passing valid offsets into buf (spec §4.5).
func (m *Message) addField(tag, start, end int) {
	m.tags = append(m.tags, tag)
	m.starts = append(m.starts, start)
	m.ends = append(m.ends, end)
}

// Clear truncates all three index arrays to zero length without
// releasing their capacity. It does not touch the backing buffer;
// ParseInto overwrites it on the next parse.
func (m *Message) Clear() {
	m.tags = m.tags[:0]
	m.starts = m.starts[:0]
	m.ends = m.ends[:0]
}

// FieldCount returns the number of fields currently indexed.
func (m *Message) FieldCount() int {
	return len(m.tags)
}

// HasField reports whether tag appears at least once.
func (m *Message) HasField(tag int) bool {
	for _, t := range m.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Get returns the first occurrence of tag, copying the backing bytes
// into a freshly allocated string at the call site (spec §4.5).
func (m *Message) Get(tag int) (string, bool) {
	return m.GetNth(tag, 1)
}

// GetNth returns the nth (1-based) occurrence of tag, in the order the
// parser discovered fields — which is wire order.
func (m *Message) GetNth(tag, nth int) (string, bool) {
	if nth <= 0 {
		nth = 1
	}
	count := 0
	for i, t := range m.tags {
		if t == tag {
			count++
			if count == nth {
				return string(m.buf[m.starts[i]:m.ends[i]]), true
			}
		}
	}
	return "", false
}

// GetBytes is like Get but returns a slice referencing the backing
// buffer directly, for callers on a hot path who can guarantee they
// are done with the view before the Message is cleared or reparsed.
func (m *Message) GetBytes(tag int) ([]byte, bool) {
	for i, t := range m.tags {
		if t == tag {
			return m.buf[m.starts[i]:m.ends[i]], true
		}
	}
	return nil, false
}

// RawBuffer returns the message's owned backing buffer.
func (m *Message) RawBuffer() []byte {
	return m.buf
}

// TagAt, StartAt, EndAt give positional access to the parallel arrays
// for callers that want to walk fields in wire order without
// allocating, e.g. a market-data template matcher.
func (m *Message) TagAt(i int) int   { return m.tags[i] }
func (m *Message) StartAt(i int) int { return m.starts[i] }
func (m *Message) EndAt(i int) int   { return m.ends[i] }
