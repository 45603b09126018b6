// Package domain contains the core concepts of the relay bot.
// A guild owns at most one forwarding rule; messages posted in a watched
// source channel of that guild are relayed to the rule's destination.
package domain

import (
	"fmt"

	"github.com/samber/lo"
)

// GuildID identifies a Discord guild (community).
type GuildID string

// ChannelID identifies a Discord channel.
type ChannelID string

// ForwardingRule maps a guild to its single destination channel.
type ForwardingRule struct {
	GuildID   GuildID   `validate:"required"`
	ChannelID ChannelID `validate:"required"`
}

// WatchedSources is the fixed set of channels whose messages get relayed.
type WatchedSources struct {
	ids []ChannelID
}

func NewWatchedSources(ids ...ChannelID) WatchedSources {
	return WatchedSources{ids: lo.Uniq(ids)}
}

// DefaultWatchedSources returns the announcement channels the bot was built for.
func DefaultWatchedSources() WatchedSources {
	return NewWatchedSources(
		"1366634832540602408", // 運営委員会より
		"1366635200792105010", // 開発者より
		"1366638510207008838", // 人事部より
	)
}

func (w WatchedSources) Contains(id ChannelID) bool {
	return lo.Contains(w.ids, id)
}

func (w WatchedSources) IDs() []ChannelID {
	return append([]ChannelID(nil), w.ids...)
}

func (w WatchedSources) Len() int {
	return len(w.ids)
}

// FormatForward builds the relayed text: a label naming the source channel,
// then the original content on the next line. An unnamed channel is labelled
// by its id.
func FormatForward(sourceName string, sourceID ChannelID, content string) string {
	label := sourceName
	if label == "" {
		label = "#" + string(sourceID)
	}
	return fmt.Sprintf("📨 **%s** より:\n%s", label, content)
}
