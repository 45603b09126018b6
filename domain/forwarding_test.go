package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatForward(t *testing.T) {
	t.Run("should prefix the content with the source channel name", func(t *testing.T) {
		req := require.New(t)
		req.Equal("📨 **運営委員会より** より:\nHello", FormatForward("運営委員会より", "1366634832540602408", "Hello"))
	})

	t.Run("should fall back to the channel id when the name is unknown", func(t *testing.T) {
		req := require.New(t)
		req.Equal("📨 **#1366634832540602408** より:\nHello", FormatForward("", "1366634832540602408", "Hello"))
	})

	t.Run("should keep multi-line content untouched", func(t *testing.T) {
		req := require.New(t)
		req.Equal("📨 **開発者より** より:\nline 1\nline 2", FormatForward("開発者より", "1", "line 1\nline 2"))
	})
}

func TestWatchedSources(t *testing.T) {
	req := require.New(t)
	sources := DefaultWatchedSources()

	req.Equal(3, sources.Len())
	req.True(sources.Contains("1366634832540602408"))
	req.True(sources.Contains("1366635200792105010"))
	req.True(sources.Contains("1366638510207008838"))
	req.False(sources.Contains("42"))
	req.False(sources.Contains(""))

	// IDs hands out a copy
	ids := sources.IDs()
	ids[0] = "42"
	req.False(sources.Contains("42"))

	req.Equal(1, NewWatchedSources("7", "7").Len())
}
