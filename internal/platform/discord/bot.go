// Package discord runs the guild-chat frontend: slash commands and legacy
// prefixed text commands, all routed to the shared joke generator. Unlike
// the CLI, out-of-range user input is rejected with a visible message
// instead of being clamped.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
)

const (
	colorRed    = 0xED4245
	colorGold   = 0xF1C40F
	colorBlue   = 0x3498DB
	colorPurple = 0x9B59B6
)

// Settings carries the per-deployment knobs the bot needs.
type Settings struct {
	Token            string
	Prefix           string
	DefaultTheme     string
	DefaultMeanness  int
	DefaultNerdiness int
}

// Bot is the Discord frontend for the joke generator.
type Bot struct {
	session  *discordgo.Session
	gen      *joke.Generator
	settings Settings
	log      zerolog.Logger

	// ctx is the run context; handlers use it for generation calls.
	ctx context.Context
}

// New creates the bot and wires up its event handlers. The session is not
// opened until Run.
func New(settings Settings, gen *joke.Generator, log zerolog.Logger) (*Bot, error) {
	if settings.Token == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}
	if settings.Prefix == "" {
		settings.Prefix = "!"
	}

	session, err := discordgo.New("Bot " + settings.Token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		session:  session,
		gen:      gen,
		settings: settings,
		log:      log,
		ctx:      context.Background(),
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	session.AddHandler(b.onMessage)

	return b, nil
}

// Run opens the gateway connection, registers the slash commands, and
// blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening Discord session: %w", err)
	}
	defer b.session.Close()

	if _, err := b.session.ApplicationCommandBulkOverwrite(
		b.session.State.User.ID, "", b.commands(),
	); err != nil {
		return fmt.Errorf("registering slash commands: %w", err)
	}
	b.log.Info().Int("commands", len(b.commands())).Msg("slash commands registered")

	<-ctx.Done()
	b.log.Info().Msg("Discord bot shutting down")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().
		Str("user", r.User.String()).
		Int("guilds", len(r.Guilds)).
		Msg("Discord bot logged in")
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	b.log.Info().Str("command", data.Name).Msg("slash command received")

	switch data.Name {
	case jokeCommand:
		b.handleJoke(s, i)
	case randomCommand:
		b.handleRandom(s, i)
	case batchCommand:
		b.handleBatch(s, i)
	case themesCommand:
		b.handleThemes(s, i)
	case helpCommand:
		b.handleHelp(s, i)
	}
}

// defaultParams seeds generation parameters from the deployment settings.
func (b *Bot) defaultParams() joke.Params {
	return joke.Params{
		Theme:     joke.Theme(b.settings.DefaultTheme),
		Meanness:  b.settings.DefaultMeanness,
		Nerdiness: b.settings.DefaultNerdiness,
	}
}
