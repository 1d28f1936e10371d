// Package fix42 adapts the Safe Message's untyped tag/value surface
// into typed accessors for a couple of well-known FIX 4.2 message
// families, in the style of goutham-ab-quickfix/fix42/MassQuote.go:
// one thin wrapper struct per message type, one accessor method per
// field, each delegating straight to the generic Get/Set.
package fix42

import (
	"github.com/cbusbey/fixcodec"
	"github.com/cbusbey/fixcodec/fix"
)

const (
	tagQuoteReqID         = 131
	tagQuoteID            = 117
	tagQuoteResponseLevel = 301
	tagDefBidSize         = 293
	tagDefOfferSize       = 294
)

// MassQuote wraps a Message carrying a FIX 4.2 MassQuote (MsgType=i).
type MassQuote struct {
	*fixcodec.Message
}

// NewMassQuote wraps msg as a MassQuote view.
func NewMassQuote(msg *fixcodec.Message) *MassQuote {
	return &MassQuote{Message: msg}
}

func (m *MassQuote) QuoteReqID() (string, bool) {
	return m.Get(tagQuoteReqID, 1)
}

func (m *MassQuote) SetQuoteReqID(v string) {
	m.Set(tagQuoteReqID, v)
}

func (m *MassQuote) QuoteID() (string, bool) {
	return m.Get(tagQuoteID, 1)
}

func (m *MassQuote) SetQuoteID(v string) {
	m.Set(tagQuoteID, v)
}

func (m *MassQuote) QuoteResponseLevel() (int, bool) {
	v, ok := m.Get(tagQuoteResponseLevel, 1)
	if !ok {
		return 0, false
	}
	n, err := fix.ParseInt(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *MassQuote) SetQuoteResponseLevel(v int) {
	m.Set(tagQuoteResponseLevel, fix.IntValue{Value: v}.Text())
}

func (m *MassQuote) DefBidSize() (float64, bool) {
	v, ok := m.Get(tagDefBidSize, 1)
	if !ok {
		return 0, false
	}
	n, err := fix.ParseFloat(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *MassQuote) SetDefBidSize(v float64) {
	m.Set(tagDefBidSize, fix.FloatValue{Value: v}.Text())
}

func (m *MassQuote) DefOfferSize() (float64, bool) {
	v, ok := m.Get(tagDefOfferSize, 1)
	if !ok {
		return 0, false
	}
	n, err := fix.ParseFloat(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *MassQuote) SetDefOfferSize(v float64) {
	m.Set(tagDefOfferSize, fix.FloatValue{Value: v}.Text())
}
