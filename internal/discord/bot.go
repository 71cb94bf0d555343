package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"voicelog/internal/models"
	"voicelog/internal/recorder"
)

// Bot represents the Discord bot
type Bot struct {
	session  *discordgo.Session
	listener *recorder.Listener
	logger   *log.Logger
}

// New creates a new Discord bot
func New(token string, listener *recorder.Listener, logger *log.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsGuildMembers

	bot := &Bot{
		session:  session,
		listener: listener,
		logger:   logger,
	}

	session.AddHandler(bot.voiceStateUpdate)

	return bot, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	b.logger.Println("✅ Bot is running...")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() error {
	return b.session.Close()
}

// voiceStateUpdate handles voice state updates. A recover guard keeps any
// unexpected panic from unsubscribing the handler.
func (b *Bot) voiceStateUpdate(s *discordgo.Session, vs *discordgo.VoiceStateUpdate) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Printf("❌ voice handler panic recovered: %v", r)
		}
	}()

	pc := models.PresenceChange{
		Member:       b.memberIdentity(s, vs),
		AfterChannel: b.channelName(s, vs.ChannelID),
	}
	if vs.BeforeUpdate != nil {
		pc.BeforeChannel = b.channelName(s, vs.BeforeUpdate.ChannelID)
	}

	b.listener.HandlePresenceChange(context.Background(), pc)
}

// memberIdentity extracts display name and username from the update,
// fetching the member when the gateway didn't attach one.
func (b *Bot) memberIdentity(s *discordgo.Session, vs *discordgo.VoiceStateUpdate) models.Member {
	member := vs.Member
	if member == nil {
		m, err := s.State.Member(vs.GuildID, vs.UserID)
		if err != nil {
			m, err = s.GuildMember(vs.GuildID, vs.UserID)
		}
		if err != nil {
			b.logger.Printf("❌ failed to resolve member %s: %v", vs.UserID, err)
			return models.Member{DisplayName: vs.UserID, Username: vs.UserID}
		}
		member = m
	}

	identity := models.Member{}
	if member.User != nil {
		identity.Username = member.User.Username
		identity.DisplayName = member.User.GlobalName
		if identity.DisplayName == "" {
			identity.DisplayName = member.User.Username
		}
	}
	if member.Nick != "" {
		identity.DisplayName = member.Nick
	}
	return identity
}

// channelName resolves a channel ID to its name, preferring gateway state
// over a REST round-trip. Unresolvable channels fall back to the raw ID so
// the row is still meaningful.
func (b *Bot) channelName(s *discordgo.Session, channelID string) string {
	if channelID == "" {
		return ""
	}
	if ch, err := s.State.Channel(channelID); err == nil {
		return ch.Name
	}
	ch, err := s.Channel(channelID)
	if err != nil {
		b.logger.Printf("❌ failed to resolve channel %s: %v", channelID, err)
		return channelID
	}
	return ch.Name
}
