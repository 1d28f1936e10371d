package fix42

import (
	"github.com/cbusbey/fixcodec"
	"github.com/cbusbey/fixcodec/fix"
)

const (
	tagClOrdID  = 11
	tagSymbol   = 55
	tagSide     = 54
	tagOrderQty = 38
	tagOrdType  = 40
	tagPrice    = 44
)

// Side values per FIX 4.2's Side (54) field.
const (
	SideBuy  = "1"
	SideSell = "2"
)

// NewOrderSingle wraps a Message carrying a FIX 4.2 NewOrderSingle
// (MsgType=D), with string, int, and float fields.
type NewOrderSingle struct {
	*fixcodec.Message
}

// NewNewOrderSingle wraps msg as a NewOrderSingle view.
func NewNewOrderSingle(msg *fixcodec.Message) *NewOrderSingle {
	return &NewOrderSingle{Message: msg}
}

func (m *NewOrderSingle) ClOrdID() (string, bool) {
	return m.Get(tagClOrdID, 1)
}

func (m *NewOrderSingle) SetClOrdID(v string) {
	m.Set(tagClOrdID, v)
}

func (m *NewOrderSingle) Symbol() (string, bool) {
	return m.Get(tagSymbol, 1)
}

func (m *NewOrderSingle) SetSymbol(v string) {
	m.Set(tagSymbol, v)
}

func (m *NewOrderSingle) Side() (string, bool) {
	return m.Get(tagSide, 1)
}

func (m *NewOrderSingle) SetSide(v string) {
	m.Set(tagSide, v)
}

func (m *NewOrderSingle) OrderQty() (int, bool) {
	v, ok := m.Get(tagOrderQty, 1)
	if !ok {
		return 0, false
	}
	n, err := fix.ParseInt(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *NewOrderSingle) SetOrderQty(v int) {
	m.Set(tagOrderQty, fix.IntValue{Value: v}.Text())
}

func (m *NewOrderSingle) OrdType() (string, bool) {
	return m.Get(tagOrdType, 1)
}

func (m *NewOrderSingle) SetOrdType(v string) {
	m.Set(tagOrdType, v)
}

func (m *NewOrderSingle) Price() (float64, bool) {
	v, ok := m.Get(tagPrice, 1)
	if !ok {
		return 0, false
	}
	n, err := fix.ParseFloat(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *NewOrderSingle) SetPrice(v float64) {
	m.Set(tagPrice, fix.FloatValue{Value: v}.Text())
}
