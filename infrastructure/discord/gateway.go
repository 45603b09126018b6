// Package discord adapts a discordgo session to the relay: it turns gateway
// events into domain events and implements contract.IPlatform over REST.
package discord

import (
	"channel-relay/contract"
	"channel-relay/domain"
	"channel-relay/domain/event"
	"channel-relay/errors"
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

// session is the part of *discordgo.Session the gateway uses.
type session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

type Gateway struct {
	session session
	state   *discordgo.State
	log     *slog.Logger

	// ctx is the process context, used for requests made from event callbacks.
	ctx     context.Context
	removes []func()
}

var _ contract.IPlatform = (*Gateway)(nil)

// NewSession creates a bot session with the intents the relay needs.
// The token is only checked by Discord when the session is opened.
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.ErrMissingToken
	}
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = Intents
	return s, nil
}

func NewGateway(s *discordgo.Session, log *slog.Logger) *Gateway {
	return newGateway(s, s.State, log)
}

func newGateway(s session, state *discordgo.State, log *slog.Logger) *Gateway {
	return &Gateway{session: s, state: state, log: log, ctx: context.Background()}
}

// Open subscribes the handler to the gateway events and connects.
// An invalid token surfaces here.
func (g *Gateway) Open(ctx context.Context, handler contract.IEventHandler) error {
	g.ctx = ctx
	g.removes = append(g.removes,
		g.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
			handler.HandleReady(g.ctx, toReady(r))
		}),
		g.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
			handler.HandleMessage(g.ctx, toMessageReceived(m, g.channelName(m.ChannelID)))
		}),
		g.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
			command, ok := toCommandInvoked(i)
			if !ok {
				g.log.Debug("Ignoring non command interaction")
				return
			}
			handler.HandleCommand(g.ctx, command)
		}),
	)
	if err := g.session.Open(); err != nil {
		g.unsubscribe()
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	g.log.Info("Discord session opened")
	return nil
}

func (g *Gateway) Close() error {
	g.unsubscribe()
	return g.session.Close()
}

func (g *Gateway) unsubscribe() {
	for _, remove := range g.removes {
		remove()
	}
	g.removes = nil
}

func (g *Gateway) ResolveChannel(ctx context.Context, guildID domain.GuildID, channelID domain.ChannelID) error {
	channel, err := g.state.Channel(string(channelID))
	if err != nil {
		channel, err = g.session.Channel(string(channelID), discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
		}
	}
	if channel.GuildID != string(guildID) {
		return fmt.Errorf("%w: channel %s, guild %s", errors.ErrChannelNotInGuild, channelID, guildID)
	}
	return nil
}

func (g *Gateway) Send(ctx context.Context, channelID domain.ChannelID, content string) error {
	_, err := g.session.ChannelMessageSend(string(channelID), content, discordgo.WithContext(ctx))
	return err
}

func (g *Gateway) Reply(ctx context.Context, interaction any, content string) error {
	i, ok := interaction.(*discordgo.Interaction)
	if !ok || i == nil {
		return fmt.Errorf("%w: %T", errors.ErrUnknownInteraction, interaction)
	}
	return g.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}, discordgo.WithContext(ctx))
}

// RegisterCommands replaces the guild's command set with the given definitions.
func (g *Gateway) RegisterCommands(ctx context.Context, applicationID string, guildID domain.GuildID, commands []domain.CommandDefinition) error {
	_, err := g.session.ApplicationCommandBulkOverwrite(
		applicationID,
		string(guildID),
		toApplicationCommands(commands),
		discordgo.WithContext(ctx),
	)
	return err
}

// channelName reads the name from the state cache only; an uncached channel
// gets an empty name and is labelled by its id.
func (g *Gateway) channelName(channelID string) string {
	channel, err := g.state.Channel(channelID)
	if err != nil {
		return ""
	}
	return channel.Name
}

func toReady(r *discordgo.Ready) event.Ready {
	ready := event.Ready{
		GuildIDs: lo.Map(r.Guilds, func(guild *discordgo.Guild, _ int) domain.GuildID {
			return domain.GuildID(guild.ID)
		}),
	}
	if r.User != nil {
		ready.ApplicationID = r.User.ID
		ready.UserTag = r.User.String()
	}
	if r.Application != nil && r.Application.ID != "" {
		ready.ApplicationID = r.Application.ID
	}
	return ready
}

func toMessageReceived(m *discordgo.MessageCreate, channelName string) event.MessageReceived {
	return event.MessageReceived{
		AuthorIsBot: m.Author != nil && m.Author.Bot,
		ChannelID:   domain.ChannelID(m.ChannelID),
		ChannelName: channelName,
		GuildID:     domain.GuildID(m.GuildID),
		Content:     m.Content,
	}
}

func toCommandInvoked(i *discordgo.InteractionCreate) (event.CommandInvoked, bool) {
	if i.Interaction == nil || i.Type != discordgo.InteractionApplicationCommand {
		return event.CommandInvoked{}, false
	}
	return event.CommandInvoked{
		Name:        i.ApplicationCommandData().Name,
		GuildID:     domain.GuildID(i.GuildID),
		ChannelID:   domain.ChannelID(i.ChannelID),
		Interaction: i.Interaction,
	}, true
}

func toApplicationCommands(commands []domain.CommandDefinition) []*discordgo.ApplicationCommand {
	return lo.Map(commands, func(c domain.CommandDefinition, _ int) *discordgo.ApplicationCommand {
		return &discordgo.ApplicationCommand{
			Name:        c.Name,
			Description: c.Description,
			Type:        discordgo.ChatApplicationCommand,
		}
	})
}
