package event

import (
	"channel-relay/domain"
)

// MessageReceived is a message posted in any channel the bot can see.
// GuildID is empty for direct messages.
type MessageReceived struct {
	AuthorIsBot bool
	ChannelID   domain.ChannelID
	ChannelName string
	GuildID     domain.GuildID
	Content     string
}

// CommandInvoked is a slash command invocation.
// Interaction is the platform handle used to answer the invoker.
type CommandInvoked struct {
	Name        string
	GuildID     domain.GuildID
	ChannelID   domain.ChannelID
	Interaction any
}

// Ready is emitted once the gateway session is established.
type Ready struct {
	ApplicationID string
	UserTag       string
	GuildIDs      []domain.GuildID
}
