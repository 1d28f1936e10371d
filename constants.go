package fixcodec

// Recognized BeginString values (spec §6 "Wire format").
const (
	BeginStringFIX40  = "FIX.4.0"
	BeginStringFIX41  = "FIX.4.1"
	BeginStringFIX42  = "FIX.4.2"
	BeginStringFIX43  = "FIX.4.3"
	BeginStringFIX44  = "FIX.4.4"
	BeginStringFIXT11 = "FIXT.1.1"
)
