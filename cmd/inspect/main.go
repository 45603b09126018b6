package main

import (
	"channel-relay/infrastructure/storage"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	ChannelsFile string `envconfig:"CHANNELS_FILE" default:"channels.json"`
	// INSPECT_COLOURS toggles the coloured header
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	repository := storage.NewForwardingRepository(config.ChannelsFile, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := repository.Load(); err != nil {
		log.Fatalf("Failed to load %s: %v", config.ChannelsFile, err)
	}

	header := fmt.Sprintf("Forwarding rules in %s", config.ChannelsFile)
	if config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	rules := repository.All()
	if len(rules) == 0 {
		fmt.Println("(no destination configured)")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Guild", "Destination channel"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, rule := range rules {
		table.Append([]string{string(rule.GuildID), string(rule.ChannelID)})
	}
	table.Render()
}
