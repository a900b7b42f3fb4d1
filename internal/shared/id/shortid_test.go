package id

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate(8)
	require.NoError(t, err)
	assert.Len(t, got, 8)
	for _, r := range got {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
	}

	got, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, SuffixLength)
}

func TestNewTicketID(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	got, err := NewTicketID(now)
	require.NoError(t, err)

	stamp := strconv.FormatInt(now.UnixMilli(), 36)
	assert.True(t, strings.HasPrefix(got, PrefixTicket+stamp))
	assert.Len(t, got, len(PrefixTicket)+len(stamp)+SuffixLength)
}

func TestNewMessageID_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got, err := NewMessageID(now)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, PrefixMessage))
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true
	}
}
