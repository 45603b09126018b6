package internal

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Token        string `env:"TOKEN,required=true" validate:"required"`
	ChannelsFile string `env:"CHANNELS_FILE,default=channels.json" validate:"required"`
	LogLevel     string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
