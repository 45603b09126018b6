package services

import (
	"channel-relay/contract"
	"channel-relay/domain"
	"channel-relay/domain/event"
	"channel-relay/infrastructure/storage"
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// RelayService forwards messages from the watched channels to the destination
// configured for their guild. Every event is handled on its own: a failure
// is logged and never affects the next event.
type RelayService struct {
	log        *slog.Logger
	sources    domain.WatchedSources
	repository storage.IForwardingRepository
	platform   contract.IPlatform
}

var _ contract.IEventHandler = (*RelayService)(nil)

func NewRelayService(
	log *slog.Logger,
	sources domain.WatchedSources,
	repository storage.IForwardingRepository,
	platform contract.IPlatform,
) *RelayService {
	return &RelayService{
		log:        log,
		sources:    sources,
		repository: repository,
		platform:   platform,
	}
}

// HandleReady registers the setup command in every guild, one guild at a time.
// A guild whose registration fails simply lacks the command until the next start.
func (s *RelayService) HandleReady(ctx context.Context, ready event.Ready) {
	s.log.Info("🤖 Bot started", "user", ready.UserTag, "guilds", len(ready.GuildIDs))

	commands := []domain.CommandDefinition{domain.SetupCommand}
	failed := 0
	for _, guildID := range ready.GuildIDs {
		if err := s.platform.RegisterCommands(ctx, ready.ApplicationID, guildID, commands); err != nil {
			failed++
			s.log.Error("❌ Slash command registration failed", "guild_id", guildID, "error", err)
		}
	}
	s.log.Info("✅ Slash command registration done",
		"registered", len(ready.GuildIDs)-failed,
		"failed", failed)
}

func (s *RelayService) HandleMessage(ctx context.Context, message event.MessageReceived) {
	if message.AuthorIsBot || !s.sources.Contains(message.ChannelID) || message.GuildID == "" {
		return
	}

	log := s.log.With(
		"relay_id", uuid.NewString(),
		"guild_id", message.GuildID,
		"source_channel_id", message.ChannelID,
	)

	destination, ok := s.repository.Get(message.GuildID)
	if !ok {
		log.Debug("No destination configured for guild")
		return
	}
	log = log.With("destination_channel_id", destination)

	if err := s.platform.ResolveChannel(ctx, message.GuildID, destination); err != nil {
		log.Warn("Destination channel unavailable, message dropped", "error", err)
		return
	}

	content := domain.FormatForward(message.ChannelName, message.ChannelID, message.Content)
	if err := s.platform.Send(ctx, destination, content); err != nil {
		log.Error("❌ Message forwarding failed", "error", err)
		return
	}
	log.Debug("Message forwarded")
}

// HandleCommand answers /setup by making the invoking channel the guild's
// destination. There is no privilege check: command visibility is left to
// the platform.
func (s *RelayService) HandleCommand(ctx context.Context, command event.CommandInvoked) {
	if command.Name != domain.SetupCommand.Name || command.GuildID == "" {
		return
	}

	log := s.log.With(
		"interaction_id", uuid.NewString(),
		"guild_id", command.GuildID,
		"channel_id", command.ChannelID,
	)

	reply := domain.SetupSucceededReply
	if err := s.repository.Set(command.GuildID, command.ChannelID); err != nil {
		log.Error("❌ Saving forwarding destination failed", "error", err)
		reply = domain.SetupFailedReply
	} else {
		log.Info("Forwarding destination configured")
	}

	if err := s.platform.Reply(ctx, command.Interaction, reply); err != nil {
		log.Error("❌ Setup reply failed", "error", err)
	}
}
