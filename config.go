package fixcodec

// Config holds the Safe Parser's configurable framing behaviors (spec
// §4.4).
type Config struct {
	// AllowEmptyValues controls whether a field with an empty value is
	// kept. If false, such fields are skipped silently.
	AllowEmptyValues bool

	// AllowMissingBeginString is reserved: the parser currently
	// requires a "8=" anchor to frame at all (spec §4.4).
	AllowMissingBeginString bool

	// StripFieldsBeforeBeginString controls whether bytes preceding
	// the first "8=" anchor are discarded from the buffer (true) or
	// left in place (false).
	StripFieldsBeforeBeginString bool
}

// DefaultConfig returns the parser's default framing configuration:
// empty values kept, junk prefixes stripped.
func DefaultConfig() Config {
	return Config{
		AllowEmptyValues:             true,
		AllowMissingBeginString:      false,
		StripFieldsBeforeBeginString: true,
	}
}
