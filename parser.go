package fixcodec

import (
	"bytes"
	"strconv"

	"github.com/cbusbey/fixcodec/tag"
	"github.com/cbusbey/fixcodec/wire"
)

// trailerLength is the fixed byte length of "10=XXX\x01".
const trailerLength = 7

var (
	beginStringAnchor = []byte("8=")
	bodyLengthAnchor  = []byte{wire.SOH, '9', '='}
)

// Parser is the Safe Parser: an incremental framing state machine
// over a growing byte buffer (spec §4.4). Grounded on
// goutham-ab-quickfix's message.go field-at-a-time scanning
// (extractField/extractSpecificField, bytes.IndexByte over '\001'),
// generalized from "parse exactly one complete buffer, error on
// anything else" to "accumulate across calls, resynchronize on
// garbage, return not-found until a complete message exists" — and on
// gurre-prime-fix-md-go/parser.go's single-pass tag/SOH scan idiom.
type Parser struct {
	cfg Config
	buf []byte
}

// NewParser returns a Parser with the given configuration.
func NewParser(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

// AppendBuffer appends b to the parser's accumulated byte buffer.
func (p *Parser) AppendBuffer(b []byte) {
	p.buf = append(p.buf, b...)
}

// Pending returns the number of unconsumed bytes currently buffered.
func (p *Parser) Pending() int {
	return len(p.buf)
}

// GetMessage attempts to extract one complete message from the
// accumulated buffer, per spec §4.4's five-step framing algorithm. ok
// is false when the buffer does not yet contain a complete message;
// callers should AppendBuffer more bytes and retry; such a call
// consumes nothing beyond a stripped junk prefix. Malformed framing
// is resynchronized by dropping exactly one byte and retrying, so
// every resynchronization step advances buffer consumption by at
// least one byte and a call terminates in O(len(buffer)).
func (p *Parser) GetMessage() (msg *Message, ok bool) {
	for {
		anchor := bytes.Index(p.buf, beginStringAnchor)
		if anchor < 0 {
			return nil, false
		}
		if anchor > 0 && p.cfg.StripFieldsBeforeBeginString {
			p.buf = p.buf[anchor:]
			anchor = 0
		}

		hdrIdx := bytes.Index(p.buf[anchor:], bodyLengthAnchor)
		if hdrIdx < 0 {
			return nil, false
		}
		hdrIdx += anchor

		valueStart := hdrIdx + len(bodyLengthAnchor)
		sohIdx := bytes.IndexByte(p.buf[valueStart:], wire.SOH)
		if sohIdx < 0 {
			return nil, false
		}
		sohIdx += valueStart

		bodyLen, err := parseDigits(p.buf[valueStart:sohIdx])
		if err != nil {
			// Malformed body length: drop one byte, resynchronize.
			p.buf = p.buf[1:]
			continue
		}

		total := sohIdx + 1 + bodyLen + trailerLength
		if len(p.buf) < total {
			return nil, false
		}

		raw := p.buf[:total]
		p.buf = p.buf[total:]
		return extractFields(raw, p.cfg), true
	}
}

// extractFields walks raw once, extracting fields per spec §4.4's
// field-extraction algorithm, and routes them into a fresh Message.
func extractFields(raw []byte, cfg Config) *Message {
	m := New()
	pos := 0
	n := len(raw)

	pendingDataTag := 0
	pendingLen := 0

	for pos < n {
		eq := bytes.IndexByte(raw[pos:], '=')
		if eq < 0 {
			break
		}
		eq += pos

		t, err := parseDigits(raw[pos:eq])
		if err != nil {
			pos++
			continue
		}

		valueStart := eq + 1
		var value []byte
		var nextPos int

		if pendingLen > 0 && t == pendingDataTag {
			end := valueStart + pendingLen
			if end < n && raw[end] == wire.SOH {
				value = raw[valueStart:end]
				nextPos = end + 1
			} else {
				// Malformed length-prefixed field (declared length
				// doesn't land on a SOH); fall back to scanning for
				// the next SOH like an ordinary field.
				value, nextPos = scanToSOH(raw, valueStart, n)
			}
			pendingDataTag, pendingLen = 0, 0
		} else {
			value, nextPos = scanToSOH(raw, valueStart, n)
		}

		// The length-prefixed reset-only-on-adjacency behavior is
		// intentional (spec §9 Open Question): pendingLen is only
		// cleared above, when the *matching* data tag is observed
		// immediately following consumption; an intervening tag
		// leaves it set, exactly as the source behaves.
		if dataTag, isLengthTag := wire.DataTagFor(t); isLengthTag {
			if N, err := strconv.Atoi(string(value)); err == nil && N > 0 {
				pendingDataTag, pendingLen = dataTag, N
			}
		}

		if len(value) == 0 && !cfg.AllowEmptyValues {
			pos = nextPos
			continue
		}

		routeParsedField(m, t, string(value))
		pos = nextPos
	}

	return m
}

// scanToSOH returns the bytes from start up to (not including) the
// next SOH in raw, or to end-of-slice if none is found, along with
// the position just past the consumed value.
func scanToSOH(raw []byte, start, n int) (value []byte, nextPos int) {
	sohIdx := bytes.IndexByte(raw[start:], wire.SOH)
	if sohIdx < 0 {
		return raw[start:], n
	}
	return raw[start : start+sohIdx], start + sohIdx + 1
}

// routeParsedField places a wire-parsed field into m. BeginString is
// captured into its dedicated field; BodyLength and CheckSum are
// synthesized values the encoder recomputes and so are dropped here;
// every other tag (including MsgType) is appended to the body, since
// the Safe Parser has no dictionary telling it which tags are
// conventionally header fields (spec §4.4's field-extraction algorithm
// appends everything it finds to the message's body).
func routeParsedField(m *Message, t int, value string) {
	switch tag.Tag(t) {
	case tag.BeginString:
		m.SetBeginString(value)
	case tag.BodyLength, tag.CheckSum:
	default:
		m.Append(t, value, false)
	}
}

// parseDigits parses b as an unsigned decimal integer, failing on any
// non-digit byte or an empty slice.
func parseDigits(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, decodeError{Kind: ErrMalformedTag, OrigError: "empty numeric field"}
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, decodeError{Kind: ErrMalformedTag, OrigError: "non-digit byte in numeric field"}
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// Decode is a one-shot convenience wrapper, modeled on the teacher's
// parseMessage: it parses the first complete message out of raw and
// reports an error if no complete message can be framed from raw.
// Bytes after the first message are ignored, and malformed fields
// inside it are skipped as GetMessage skips them. Unlike GetMessage,
// it is not meant for incremental streaming use.
func Decode(raw []byte, cfg Config) (*Message, error) {
	p := NewParser(cfg)
	p.AppendBuffer(raw)
	msg, ok := p.GetMessage()
	if !ok {
		return nil, decodeError{Kind: ErrIncompleteFraming, OrigError: "incomplete or unframeable message"}
	}
	return msg, nil
}
