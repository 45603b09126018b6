package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("should apply defaults next to the token", func(t *testing.T) {
		req := require.New(t)
		var config Config
		err := env.Unmarshal(env.EnvSet{"TOKEN": "secret"}, &config)
		req.NoError(err)
		req.Equal("channels.json", config.ChannelsFile)
		req.Equal("INFO", config.LogLevel)
		req.NoError(config.Validate())
	})

	t.Run("should require the token", func(t *testing.T) {
		req := require.New(t)
		var config Config
		err := env.Unmarshal(env.EnvSet{}, &config)
		req.Error(err)

		blank := Config{ChannelsFile: "channels.json", LogLevel: "INFO"}
		req.Error(blank.Validate())
	})

	t.Run("should reject an unknown log level", func(t *testing.T) {
		req := require.New(t)
		config := Config{Token: "secret", ChannelsFile: "channels.json", LogLevel: "LOUD"}
		req.Error(config.Validate())
	})
}
