package fixcodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndGet(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.AppendInt(35, 0, false) // Heartbeat
	m.AppendInt(112, 42, false)

	v, ok := m.Get(112, 1)
	require.True(t, ok)
	assert.Equal(t, "42", v)

	_, ok = m.Get(999, 1)
	assert.False(t, ok)
}

func TestAppendTagsSynthesizedAreDropped(t *testing.T) {
	m := New()
	m.Append(8, "FIX.4.2", true)
	m.Append(9, "100", true)
	m.Append(10, "000", false)

	assert.Equal(t, 0, m.CountFields())
	assert.False(t, m.HasField(8))
}

func TestSetUpdatesFirstOccurrence(t *testing.T) {
	m := New()
	m.AppendInt(54, 1, false)
	m.AppendInt(54, 2, false)
	m.Set(54, "9")

	v, _ := m.Get(54, 1)
	assert.Equal(t, "9", v)
	v2, _ := m.Get(54, 2)
	assert.Equal(t, "2", v2)
}

func TestSetAppendsWhenAbsent(t *testing.T) {
	m := New()
	m.Set(44, "150.50")
	v, ok := m.Get(44, 1)
	require.True(t, ok)
	assert.Equal(t, "150.50", v)
}

func TestRepeatingPartyIDSource(t *testing.T) {
	m := New()
	m.Append(447, "D", false)
	m.Append(447, "P", false)
	m.Append(447, "C", false)

	v1, ok1 := m.Get(447, 1)
	v2, ok2 := m.Get(447, 2)
	v3, ok3 := m.Get(447, 3)
	_, ok4 := m.Get(447, 4)

	require.True(t, ok1)
	require.True(t, ok2)
	require.True(t, ok3)
	assert.False(t, ok4)
	assert.Equal(t, "D", v1)
	assert.Equal(t, "P", v2)
	assert.Equal(t, "C", v3)
}

func TestRemoveNth(t *testing.T) {
	m := New()
	m.Append(447, "D", false)
	m.Append(447, "P", false)

	removed := m.Remove(447, 2)
	assert.True(t, removed)

	all := m.GetAll(447)
	assert.Equal(t, []string{"D"}, all)

	assert.False(t, m.Remove(447, 5))
}

func TestClearAndReset(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "D", false)
	m.Clear()

	assert.Equal(t, 0, m.CountFields())
	assert.Equal(t, "", m.BeginString())
	assert.False(t, m.Validate())
}

func TestClone(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "D", false)

	clone := m.Clone()
	clone.Append(55, "AAPL", false)

	assert.Equal(t, 1, m.CountFields())
	assert.Equal(t, 2, clone.CountFields())
}

func TestValidate(t *testing.T) {
	m := New()
	assert.False(t, m.Validate())

	m.SetBeginString(BeginStringFIX42)
	assert.False(t, m.Validate())

	m.Append(35, "0", false)
	assert.True(t, m.Validate())
}

// Scenario 1 (spec §8): Minimal Heartbeat.
func TestEncodeMinimalHeartbeat(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "0", false)

	wire := string(m.Encode())
	require.True(t, strings.HasPrefix(wire, "8=FIX.4.2\x019=5\x0135=0\x0110="))
	assert.True(t, strings.HasSuffix(wire, "\x01"))

	// Body length covers exactly "35=0\x01" (5 bytes).
	assert.Contains(t, wire, "9=5\x01")
}

// Scenario 2 (spec §8): New Order Single.
func TestEncodeNewOrderSingleRoundTrip(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "D", false)
	m.Append(55, "AAPL", false)
	m.Append(54, "1", false)
	m.Append(38, "100", false)
	m.Append(44, "150.50", false)

	encoded := m.Encode()

	parser := NewParser(DefaultConfig())
	parser.AppendBuffer(encoded)
	parsed, ok := parser.GetMessage()
	require.True(t, ok)

	v, ok := parsed.Get(44, 1)
	require.True(t, ok)
	assert.Equal(t, "150.50", v)

	idx := strings.LastIndex(string(encoded), "10=")
	var sum int
	for _, b := range encoded[:idx] {
		sum += int(b)
	}
	sum %= 256
	assert.Contains(t, string(encoded), strings256(sum))
}

func strings256(sum int) string {
	s := "10="
	digits := [3]byte{}
	n := sum
	for i := 2; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return s + string(digits[:])
}

// Scenario 3 (spec §8): embedded SOH in a length-prefixed field.
func TestEmbeddedSOHInSignature(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "A", false)
	data := []byte("BINARY\x01DATA")
	m.AppendLengthPrefixed(93, 89, data, false)

	encoded := m.Encode()

	parser := NewParser(DefaultConfig())
	parser.AppendBuffer(encoded)
	parsed, ok := parser.GetMessage()
	require.True(t, ok)

	v, ok := parsed.Get(89, 1)
	require.True(t, ok)
	assert.Equal(t, string(data), v)
	assert.Equal(t, 11, len(v))
}

func TestIdempotentEncode(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "0", false)
	m.Append(112, "hello", false)

	assert.Equal(t, m.Encode(), m.Encode())
}

func TestHeaderFirstOffsets(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "D", false)
	m.Append(55, "AAPL", false)

	wire := string(m.Encode())
	i8 := strings.Index(wire, "8=")
	i9 := strings.Index(wire, "9=")
	i35 := strings.Index(wire, "35=")
	require.True(t, i8 >= 0 && i9 >= 0 && i35 >= 0)
	assert.True(t, i8 < i9)
	assert.True(t, i9 < i35)
}

func TestBodyLengthMatchesContent(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "D", false)
	m.Append(55, "AAPL", false)

	encoded := string(m.Encode())
	start := strings.Index(encoded, "9=") + 2
	end := strings.Index(encoded[start:], "\x01") + start
	declared := encoded[start:end]

	bodyStart := end + 1
	checksumIdx := strings.LastIndex(encoded, "10=")
	body := encoded[bodyStart:checksumIdx]

	assert.Equal(t, len(body), atoi(declared))
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func TestValidateChecksum(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(35, "0", false)

	encoded := m.Encode()
	assert.True(t, m.ValidateChecksum(encoded))

	tampered := append([]byte{}, encoded...)
	tampered[0] = 'X'
	assert.False(t, m.ValidateChecksum(tampered))
}

func TestReverseRoute(t *testing.T) {
	m := New()
	m.SetBeginString(BeginStringFIX42)
	m.Append(49, "SENDER", true)
	m.Append(56, "TARGET", true)

	reply := m.ReverseRoute()
	sender, _ := reply.Get(56, 1) // SenderCompID became TargetCompID
	target, _ := reply.Get(49, 1)
	assert.Equal(t, "SENDER", sender)
	assert.Equal(t, "TARGET", target)
}

func TestAppendStringSkipsMalformedPair(t *testing.T) {
	m := New()
	m.AppendString("not-a-pair", false)
	assert.Equal(t, 0, m.CountFields())

	m.AppendString("112=hello", false)
	v, ok := m.Get(112, 1)
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestAppendPairsBatchesMinLength(t *testing.T) {
	m := New()
	m.AppendPairs([]int{1, 2, 3}, []string{"a", "b"}, false)
	assert.Equal(t, 2, m.CountFields())
}

func TestAppendBoolConvention(t *testing.T) {
	m := New()
	m.AppendBool(43, true, false)
	m.AppendBool(123, false, false)

	v1, _ := m.Get(43, 1)
	v2, _ := m.Get(123, 1)
	assert.Equal(t, "Y", v1)
	assert.Equal(t, "N", v2)
}
