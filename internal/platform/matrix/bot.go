// Package matrix runs the federated-chat-room frontend. The bot listens
// for prefixed text commands in joined rooms, optionally auto-joins on
// invite, and routes everything to the shared joke generator.
package matrix

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
)

// Settings carries the per-deployment knobs the bot needs. Either
// AccessToken or Password must be set.
type Settings struct {
	Homeserver       string
	UserID           string
	AccessToken      string
	Password         string
	DeviceID         string
	Prefix           string
	AutoJoin         bool
	DefaultTheme     string
	DefaultMeanness  int
	DefaultNerdiness int
}

// Bot is the Matrix frontend for the joke generator.
type Bot struct {
	client   *mautrix.Client
	gen      *joke.Generator
	settings Settings
	log      zerolog.Logger
}

// New creates the bot and registers its sync callbacks. No network traffic
// happens until Run.
func New(settings Settings, gen *joke.Generator, log zerolog.Logger) (*Bot, error) {
	if settings.UserID == "" {
		return nil, fmt.Errorf("MATRIX_USER_ID is required")
	}
	if settings.AccessToken == "" && settings.Password == "" {
		return nil, fmt.Errorf("either MATRIX_ACCESS_TOKEN or MATRIX_PASSWORD is required")
	}
	if settings.Homeserver == "" {
		settings.Homeserver = "https://matrix.org"
	}
	if !strings.HasPrefix(settings.Homeserver, "http://") && !strings.HasPrefix(settings.Homeserver, "https://") {
		settings.Homeserver = "https://" + settings.Homeserver
	}
	if settings.Prefix == "" {
		settings.Prefix = "!"
	}

	client, err := mautrix.NewClient(settings.Homeserver, id.UserID(settings.UserID), settings.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("creating Matrix client: %w", err)
	}
	client.DeviceID = id.DeviceID(settings.DeviceID)

	b := &Bot{
		client:   client,
		gen:      gen,
		settings: settings,
		log:      log,
	}

	syncer := client.Syncer.(*mautrix.DefaultSyncer)
	syncer.OnEventType(event.EventMessage, b.onMessage)
	if settings.AutoJoin {
		syncer.OnEventType(event.StateMember, b.onMembership)
	}

	return b, nil
}

// Run logs in if needed and syncs until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if b.settings.AccessToken == "" {
		b.log.Info().Str("user", b.settings.UserID).Msg("logging in with password")
		resp, err := b.client.Login(ctx, &mautrix.ReqLogin{
			Type: mautrix.AuthTypePassword,
			Identifier: mautrix.UserIdentifier{
				Type: mautrix.IdentifierTypeUser,
				User: b.settings.UserID,
			},
			Password:         b.settings.Password,
			DeviceID:         id.DeviceID(b.settings.DeviceID),
			StoreCredentials: true,
		})
		if err != nil {
			return fmt.Errorf("Matrix login failed: %w", err)
		}
		b.log.Info().Str("device", resp.DeviceID.String()).Msg("login successful")
	}

	b.log.Info().Str("user", b.settings.UserID).Msg("Matrix bot syncing")
	if err := b.client.SyncWithContext(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("Matrix sync failed: %w", err)
	}
	b.log.Info().Msg("Matrix bot shutting down")
	return nil
}

// onMembership auto-joins rooms the bot is invited to.
func (b *Bot) onMembership(ctx context.Context, evt *event.Event) {
	if evt.GetStateKey() != b.client.UserID.String() {
		return
	}
	if evt.Content.AsMember().Membership != event.MembershipInvite {
		return
	}

	b.log.Info().Str("room", evt.RoomID.String()).Msg("invited to room")
	if _, err := b.client.JoinRoomByID(ctx, evt.RoomID); err != nil {
		b.log.Error().Err(err).Str("room", evt.RoomID.String()).Msg("failed to join room")
		return
	}
	b.log.Info().Str("room", evt.RoomID.String()).Msg("joined room")
}

func (b *Bot) onMessage(ctx context.Context, evt *event.Event) {
	if evt.Sender == b.client.UserID {
		return
	}

	content := evt.Content.AsMessage()
	if content == nil {
		return
	}
	message := strings.TrimSpace(content.Body)
	if !strings.HasPrefix(message, b.settings.Prefix) {
		return
	}

	fields := strings.Fields(message[len(b.settings.Prefix):])
	if len(fields) == 0 {
		return
	}
	command, args := strings.ToLower(fields[0]), fields[1:]

	b.log.Info().
		Str("command", command).
		Str("sender", evt.Sender.String()).
		Str("room", evt.RoomID.String()).
		Msg("command received")

	switch command {
	case "joke":
		b.cmdJoke(ctx, evt.RoomID, args)
	case "random":
		b.cmdRandom(ctx, evt.RoomID)
	case "batch":
		b.cmdBatch(ctx, evt.RoomID, args)
	case "themes":
		b.cmdThemes(ctx, evt.RoomID)
	case "help":
		b.cmdHelp(ctx, evt.RoomID)
	default:
		b.sendText(ctx, evt.RoomID, fmt.Sprintf("Unknown command: %s. Try %shelp", command, b.settings.Prefix))
	}
}

func (b *Bot) defaultParams() joke.Params {
	return joke.Params{
		Theme:     joke.Theme(b.settings.DefaultTheme),
		Meanness:  b.settings.DefaultMeanness,
		Nerdiness: b.settings.DefaultNerdiness,
	}
}

func (b *Bot) cmdJoke(ctx context.Context, roomID id.RoomID, args []string) {
	params, err := parseJokeArgs(args, b.defaultParams())
	if err != nil {
		b.sendText(ctx, roomID, "❌ "+err.Error())
		return
	}

	b.sendText(ctx, roomID, "🎤 Generating joke...")

	j, err := b.gen.Generate(ctx, params)
	if err != nil {
		b.sendText(ctx, roomID, "❌ Error: "+err.Error())
		return
	}

	settings := fmt.Sprintf("[Theme: %s, M: %d/10, N: %d/10]", j.Theme, j.Meanness, j.Nerdiness)
	b.sendHTML(ctx, roomID,
		fmt.Sprintf("🎤 %s\n\n%s", j.Text, settings),
		fmt.Sprintf("🎤 %s<br/><br/><i>%s</i>", j.Text, settings))
}

func (b *Bot) cmdRandom(ctx context.Context, roomID id.RoomID) {
	b.sendText(ctx, roomID, "🎲 Generating random joke...")

	j, err := b.gen.RandomJoke(ctx)
	if err != nil {
		b.sendText(ctx, roomID, "❌ Error: "+err.Error())
		return
	}
	b.sendText(ctx, roomID, "🎲 "+j.Text)
}

func (b *Bot) cmdBatch(ctx context.Context, roomID id.RoomID, args []string) {
	count, params, err := parseBatchArgs(args, b.defaultParams())
	if err != nil {
		b.sendText(ctx, roomID, "❌ "+err.Error())
		return
	}

	b.sendText(ctx, roomID, fmt.Sprintf("🔥 Generating %d jokes...", count))

	jokes := b.gen.GenerateBatch(ctx, count, params)

	var plain, html strings.Builder
	plain.WriteString(fmt.Sprintf("🔥 %d Yo Mama Jokes", count))
	html.WriteString(fmt.Sprintf("🔥 <b>%d Yo Mama Jokes</b>", count))
	for n, j := range jokes {
		plain.WriteString(fmt.Sprintf("\n%d. %s", n+1, j.Text))
		html.WriteString(fmt.Sprintf("<br/>%d. %s", n+1, j.Text))
	}

	b.sendHTML(ctx, roomID, plain.String(), html.String())
}

func (b *Bot) cmdThemes(ctx context.Context, roomID id.RoomID) {
	var plain, html strings.Builder
	plain.WriteString("📋 Available Themes:")
	html.WriteString("📋 <b>Available Themes:</b>")
	for _, t := range joke.Themes() {
		plain.WriteString("\n• " + string(t))
		html.WriteString("<br/>• " + string(t))
	}
	b.sendHTML(ctx, roomID, plain.String(), html.String())
}

func (b *Bot) cmdHelp(ctx context.Context, roomID id.RoomID) {
	p := b.settings.Prefix
	plain := fmt.Sprintf(`🎤 Yo Mama Bot - Help

Commands:
• %[1]sjoke [theme] [meanness] [nerdiness] - Generate a joke
• %[1]srandom - Generate a random joke
• %[1]sbatch [count] [theme] - Generate multiple jokes
• %[1]sthemes - List available themes
• %[1]shelp - Show this help message

Parameters:
• Meanness: 1-10 (1=gentle, 10=brutal)
• Nerdiness: 1-10 (1=accessible, 10=very technical)`, p)

	b.sendHTML(ctx, roomID, plain, strings.ReplaceAll(plain, "\n", "<br/>"))
}

func (b *Bot) sendText(ctx context.Context, roomID id.RoomID, body string) {
	_, err := b.client.SendMessageEvent(ctx, roomID, event.EventMessage, &event.MessageEventContent{
		MsgType: event.MsgText,
		Body:    body,
	})
	if err != nil {
		b.log.Error().Err(err).Str("room", roomID.String()).Msg("failed to send message")
	}
}

func (b *Bot) sendHTML(ctx context.Context, roomID id.RoomID, body, formatted string) {
	_, err := b.client.SendMessageEvent(ctx, roomID, event.EventMessage, &event.MessageEventContent{
		MsgType:       event.MsgText,
		Body:          body,
		Format:        event.FormatHTML,
		FormattedBody: formatted,
	})
	if err != nil {
		b.log.Error().Err(err).Str("room", roomID.String()).Msg("failed to send message")
	}
}
