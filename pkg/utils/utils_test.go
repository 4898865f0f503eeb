package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatThousands(tt.in))
	}
}

func TestFormatJST(t *testing.T) {
	// Virada de dia: 20:30 UTC é 05:30 do dia seguinte em JST
	utc := time.Date(2024, 12, 31, 20, 30, 15, 0, time.UTC)
	assert.Equal(t, "2025-01-01 05:30:15 JST", FormatJST(utc))

	saoPaulo := time.FixedZone("BRT", -3*60*60)
	assert.Equal(t, "2024-07-01 21:00:00 JST", FormatJST(time.Date(2024, 7, 1, 9, 0, 0, 0, saoPaulo)))
}

func TestCompactJSON(t *testing.T) {
	assert.Equal(t, `{"accounts":[1,2]}`, CompactJSON([]byte("{\n  \"accounts\": [1, 2]\n}")))
	assert.Equal(t, "not json", CompactJSON([]byte("not json")))

	long := `{"a":"` + strings.Repeat("x", 2*maxLoggedPayload) + `"}`
	got := CompactJSON([]byte(long))
	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
	assert.Len(t, got, maxLoggedPayload+len("...(truncated)"))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 8)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
