package storage

import (
	"channel-relay/domain"
	"channel-relay/errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	guildA   domain.GuildID   = "1366630000000000001"
	guildB   domain.GuildID   = "1366630000000000002"
	channelX domain.ChannelID = "1366631111111111111"
	channelY domain.ChannelID = "1366632222222222222"
)

func newTestRepository(t *testing.T) (*ForwardingRepository, string) {
	path := filepath.Join(t.TempDir(), "channels.json")
	return NewForwardingRepository(path, slog.New(slog.NewTextHandler(io.Discard, nil))), path
}

func TestForwardingRepository_Load(t *testing.T) {
	t.Run("should start empty when the file does not exist", func(t *testing.T) {
		req := require.New(t)
		repository, _ := newTestRepository(t)

		req.NoError(repository.Load())
		req.Empty(repository.All())
		_, ok := repository.Get(guildA)
		req.False(ok)
	})

	t.Run("should read a flat guild to channel object", func(t *testing.T) {
		req := require.New(t)
		repository, path := newTestRepository(t)
		content := `{"1366630000000000001": "1366631111111111111", "1366630000000000002": "1366632222222222222"}`
		req.NoError(os.WriteFile(path, []byte(content), 0o644))

		req.NoError(repository.Load())
		req.Equal([]domain.ForwardingRule{
			{GuildID: guildA, ChannelID: channelX},
			{GuildID: guildB, ChannelID: channelY},
		}, repository.All())
	})

	t.Run("should report malformed content and keep nothing", func(t *testing.T) {
		for name, content := range map[string]string{
			"truncated":     `{"1366630000000000001": "13666`,
			"array":         `["1366630000000000001"]`,
			"numeric value": `{"1366630000000000001": 1366631111111111111}`,
			"nested value":  `{"1366630000000000001": {"id": "1"}}`,
		} {
			t.Run(name, func(t *testing.T) {
				req := require.New(t)
				repository, path := newTestRepository(t)
				req.NoError(repository.Set(guildB, channelY))
				req.NoError(os.WriteFile(path, []byte(content), 0o644))

				err := repository.Load()
				req.ErrorIs(err, errors.ErrMalformedConfig)
				req.Empty(repository.All())
			})
		}
	})

	t.Run("should treat a null document as empty", func(t *testing.T) {
		req := require.New(t)
		repository, path := newTestRepository(t)
		req.NoError(os.WriteFile(path, []byte("null"), 0o644))

		req.NoError(repository.Load())
		req.Empty(repository.All())
	})
}

func TestForwardingRepository_Set(t *testing.T) {
	t.Run("should write the whole mapping as pretty printed json", func(t *testing.T) {
		req := require.New(t)
		repository, path := newTestRepository(t)
		req.NoError(repository.Load())

		req.NoError(repository.Set(guildA, channelX))

		data, err := os.ReadFile(path)
		req.NoError(err)
		req.Equal("{\n  \"1366630000000000001\": \"1366631111111111111\"\n}", string(data))
		got, ok := repository.Get(guildA)
		req.True(ok)
		req.Equal(channelX, got)
	})

	t.Run("should keep a single entry per guild, the latest one", func(t *testing.T) {
		req := require.New(t)
		repository, _ := newTestRepository(t)

		req.NoError(repository.Set(guildA, channelX))
		req.NoError(repository.Set(guildA, channelY))

		req.Equal([]domain.ForwardingRule{{GuildID: guildA, ChannelID: channelY}}, repository.All())
	})

	t.Run("should reload exactly what was written", func(t *testing.T) {
		req := require.New(t)
		repository, path := newTestRepository(t)
		req.NoError(repository.Set(guildA, channelX))
		req.NoError(repository.Set(guildB, channelY))
		req.NoError(repository.Set(guildA, channelY))

		reloaded := NewForwardingRepository(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
		req.NoError(reloaded.Load())
		req.Equal(repository.All(), reloaded.All())
	})

	t.Run("should store opaque identifiers as they are", func(t *testing.T) {
		req := require.New(t)
		repository, path := newTestRepository(t)

		req.NoError(repository.Set("G", "C"))

		data, err := os.ReadFile(path)
		req.NoError(err)
		req.JSONEq(`{"G": "C"}`, string(data))

		reloaded := NewForwardingRepository(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
		req.NoError(reloaded.Load())
		req.Equal([]domain.ForwardingRule{{GuildID: "G", ChannelID: "C"}}, reloaded.All())
	})

	t.Run("should reject empty identifiers", func(t *testing.T) {
		req := require.New(t)
		repository, path := newTestRepository(t)

		req.ErrorIs(repository.Set("", channelX), errors.ErrInvalidRule)
		req.ErrorIs(repository.Set(guildA, ""), errors.ErrInvalidRule)

		req.Empty(repository.All())
		_, err := os.Stat(path)
		req.True(os.IsNotExist(err))
	})

	t.Run("should roll back a new entry when the file cannot be written", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "missing", "channels.json")
		repository := NewForwardingRepository(path, slog.New(slog.NewTextHandler(io.Discard, nil)))

		req.Error(repository.Set(guildA, channelX))
		_, ok := repository.Get(guildA)
		req.False(ok)
	})

	t.Run("should restore the previous entry when the file cannot be written", func(t *testing.T) {
		req := require.New(t)
		dir := filepath.Join(t.TempDir(), "config")
		req.NoError(os.Mkdir(dir, 0o755))
		repository := NewForwardingRepository(filepath.Join(dir, "channels.json"), slog.New(slog.NewTextHandler(io.Discard, nil)))
		req.NoError(repository.Set(guildA, channelX))

		req.NoError(os.RemoveAll(dir))
		req.Error(repository.Set(guildA, channelY))

		got, ok := repository.Get(guildA)
		req.True(ok)
		req.Equal(channelX, got)
	})

	t.Run("should not leave temporary files behind", func(t *testing.T) {
		req := require.New(t)
		repository, path := newTestRepository(t)
		req.NoError(repository.Set(guildA, channelX))
		req.NoError(repository.Set(guildB, channelY))

		entries, err := os.ReadDir(filepath.Dir(path))
		req.NoError(err)
		req.Len(entries, 1)
		req.Equal("channels.json", entries[0].Name())
	})
}
