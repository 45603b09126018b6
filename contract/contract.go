//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"channel-relay/domain"
	"channel-relay/domain/event"
	"context"
)

// IPlatform is the narrow slice of the chat platform the relay depends on.
type IPlatform interface {
	// ResolveChannel fails when the channel is gone, inaccessible or outside the guild.
	ResolveChannel(ctx context.Context, guildID domain.GuildID, channelID domain.ChannelID) error
	Send(ctx context.Context, channelID domain.ChannelID, content string) error
	Reply(ctx context.Context, interaction any, content string) error
	RegisterCommands(ctx context.Context, applicationID string, guildID domain.GuildID, commands []domain.CommandDefinition) error
}

// IEventHandler receives the platform events, one call per event.
type IEventHandler interface {
	HandleReady(ctx context.Context, ready event.Ready)
	HandleMessage(ctx context.Context, message event.MessageReceived)
	HandleCommand(ctx context.Context, command event.CommandInvoked)
}
