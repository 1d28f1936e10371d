package fixcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHeartbeat(t *testing.T) []byte {
	t.Helper()
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "0", false)
	return m.Encode()
}

func TestParserIncompleteReturnsNotFound(t *testing.T) {
	p := NewParser(DefaultConfig())
	p.AppendBuffer([]byte("8=FIX.4.2\x019=5"))
	_, ok := p.GetMessage()
	assert.False(t, ok)
}

// Scenario 6 (spec §8): partial delivery.
func TestParserPartialDelivery(t *testing.T) {
	full := buildHeartbeat(t)
	require.Greater(t, len(full), 10)

	p := NewParser(DefaultConfig())
	p.AppendBuffer(full[:10])
	_, ok := p.GetMessage()
	assert.False(t, ok)

	p.AppendBuffer(full[10:])
	msg, ok := p.GetMessage()
	require.True(t, ok)
	assert.True(t, msg.Validate())
}

// Scenario 5 (spec §8): framing resynchronization.
func TestParserResynchronizesOnGarbage(t *testing.T) {
	p := NewParser(DefaultConfig())
	p.AppendBuffer([]byte("GARBAGE\x01GARBAGE\x01"))

	_, ok := p.GetMessage()
	assert.False(t, ok)

	p.AppendBuffer(buildHeartbeat(t))
	msg, ok := p.GetMessage()
	require.True(t, ok)
	assert.Equal(t, BeginStringFIX42, msg.BeginString())
	v, ok := msg.Get(35, 1)
	require.True(t, ok)
	assert.Equal(t, "0", v)
}

func TestParserMalformedBodyLengthResyncs(t *testing.T) {
	p := NewParser(DefaultConfig())
	// "9=" value is non-numeric; parser must drop bytes and recover
	// once it reaches a real message.
	p.AppendBuffer([]byte("8=FIX.4.2\x019=abc\x01"))
	p.AppendBuffer(buildHeartbeat(t))

	msg, ok := p.GetMessage()
	require.True(t, ok)
	assert.True(t, msg.Validate())
}

func TestParserMultipleMessagesInOneBuffer(t *testing.T) {
	p := NewParser(DefaultConfig())
	p.AppendBuffer(buildHeartbeat(t))
	p.AppendBuffer(buildHeartbeat(t))

	first, ok := p.GetMessage()
	require.True(t, ok)
	assert.True(t, first.Validate())

	second, ok := p.GetMessage()
	require.True(t, ok)
	assert.True(t, second.Validate())

	_, ok = p.GetMessage()
	assert.False(t, ok)
}

func TestParserEmbeddedSOHSurvivesStreamingParse(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX44)
	m.Append(35, "A", false)
	data := []byte("SECRET\x01KEY\x01MATERIAL")
	m.AppendLengthPrefixed(91, 90, data, false)
	encoded := m.Encode()

	p := NewParser(DefaultConfig())
	p.AppendBuffer(encoded)
	msg, ok := p.GetMessage()
	require.True(t, ok)

	v, ok := msg.Get(90, 1)
	require.True(t, ok)
	assert.Equal(t, string(data), v)
}

func TestParserDisallowEmptyValuesSkipsField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowEmptyValues = false

	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "0", false)
	m.Append(58, "", false) // Text field, empty on purpose
	encoded := m.Encode()

	p := NewParser(cfg)
	p.AppendBuffer(encoded)
	msg, ok := p.GetMessage()
	require.True(t, ok)
	assert.False(t, msg.HasField(58))
}

func TestParserAllowEmptyValuesKeepsField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowEmptyValues = true

	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "0", false)
	m.Append(58, "", false)
	encoded := m.Encode()

	p := NewParser(cfg)
	p.AppendBuffer(encoded)
	msg, ok := p.GetMessage()
	require.True(t, ok)
	assert.True(t, msg.HasField(58))
}

func TestDecodeOneShot(t *testing.T) {
	encoded := buildHeartbeat(t)
	msg, err := Decode(encoded, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, msg.Validate())
}

func TestDecodeIncompleteReturnsError(t *testing.T) {
	_, err := Decode([]byte("8=FIX.4.2\x019=5"), DefaultConfig())
	assert.Error(t, err)
}

func TestParserJunkPrefixNotStripped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StripFieldsBeforeBeginString = false

	p := NewParser(cfg)
	p.AppendBuffer([]byte("JUNK"))
	p.AppendBuffer(buildHeartbeat(t))

	msg, ok := p.GetMessage()
	require.True(t, ok)
	assert.True(t, msg.Validate())
}
