package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
)

const (
	meannessRejection  = "❌ Meanness must be between 1 and 11 (these go to eleven! 🎸)"
	nerdinessRejection = "❌ Nerdiness must be between 1 and 10"
	countRejection     = "❌ Count must be between 1 and 10"
	theGameFooter      = "You just lost The Game. Sorry! 😈"
)

// meannessInRange accepts the extended 1-11 scale; 11 is clamped by the
// core but advertised to users as a Spinal Tap joke.
func meannessInRange(v int) bool { return v >= 1 && v <= 11 }

func nerdinessInRange(v int) bool { return v >= 1 && v <= 10 }

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func (b *Bot) defer_(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.log.Error().Err(err).Msg("failed to defer interaction")
		return false
	}
	return true
}

func (b *Bot) followupText(s *discordgo.Session, i *discordgo.InteractionCreate, text string) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: text,
	}); err != nil {
		b.log.Error().Err(err).Msg("failed to send followup")
	}
}

func (b *Bot) followupEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}); err != nil {
		b.log.Error().Err(err).Msg("failed to send followup embed")
	}
}

func (b *Bot) handleJoke(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.defer_(s, i) {
		return
	}

	opts := optionMap(i)
	params := b.defaultParams()

	if opt, ok := opts[themeOption]; ok {
		params.Theme = joke.Theme(opt.StringValue())
	}
	if opt, ok := opts[meannessOption]; ok {
		params.Meanness = int(opt.IntValue())
		if !meannessInRange(params.Meanness) {
			b.followupText(s, i, meannessRejection)
			return
		}
	}
	if opt, ok := opts[nerdinessOption]; ok {
		params.Nerdiness = int(opt.IntValue())
		if !nerdinessInRange(params.Nerdiness) {
			b.followupText(s, i, nerdinessRejection)
			return
		}
	}
	if opt, ok := opts[targetOption]; ok {
		params.Target = opt.StringValue()
	}

	var mention string
	if opt, ok := opts[userOption]; ok {
		user := opt.UserValue(s)
		if user != nil {
			mention = user.Mention() + " "
			params.Target = user.Username
		}
	}

	// Hidden theme: maximum savagery, and the meanness dial repurposed
	// as nerdiness, matching the original easter egg.
	if params.Theme == joke.ThemeTheGame {
		if params.Target == "" {
			params.Target = "you"
		}
		params.Nerdiness = params.Meanness
		params.Meanness = 11

		j, err := b.gen.Generate(b.ctx, params)
		if err != nil {
			b.followupText(s, i, "❌ Failed to generate joke: "+err.Error())
			return
		}
		b.followupEmbed(s, i, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("%s🎮💀 %s", mention, j.Text),
			Color:       colorPurple,
			Footer:      &discordgo.MessageEmbedFooter{Text: theGameFooter},
		})
		return
	}

	j, err := b.gen.Generate(b.ctx, params)
	if err != nil {
		b.followupText(s, i, "❌ Failed to generate joke: "+err.Error())
		return
	}

	footer := fmt.Sprintf("Theme: %s | Meanness: %d/10 | Nerdiness: %d/10", j.Theme, j.Meanness, j.Nerdiness)
	b.followupEmbed(s, i, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("%s🎤 %s", mention, j.Text),
		Color:       colorRed,
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
	})
}

func (b *Bot) handleRandom(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.defer_(s, i) {
		return
	}

	j, err := b.gen.RandomJoke(b.ctx)
	if err != nil {
		b.followupText(s, i, "❌ Failed to generate joke: "+err.Error())
		return
	}

	b.followupEmbed(s, i, &discordgo.MessageEmbed{
		Description: "🎲 " + j.Text,
		Color:       colorGold,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Random joke with random settings"},
	})
}

func (b *Bot) handleBatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.defer_(s, i) {
		return
	}

	opts := optionMap(i)
	params := b.defaultParams()
	count := 3

	if opt, ok := opts[countOption]; ok {
		count = int(opt.IntValue())
		if count < 1 || count > 10 {
			b.followupText(s, i, countRejection)
			return
		}
	}
	if opt, ok := opts[themeOption]; ok {
		params.Theme = joke.Theme(opt.StringValue())
	}
	if opt, ok := opts[meannessOption]; ok {
		params.Meanness = int(opt.IntValue())
		if !meannessInRange(params.Meanness) {
			b.followupText(s, i, meannessRejection)
			return
		}
	}
	if opt, ok := opts[nerdinessOption]; ok {
		params.Nerdiness = int(opt.IntValue())
		if !nerdinessInRange(params.Nerdiness) {
			b.followupText(s, i, nerdinessRejection)
			return
		}
	}

	jokes := b.gen.GenerateBatch(b.ctx, count, params)

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔥 %d Yo Mama Jokes", count),
		Color: colorRed,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("M: %d | N: %d", params.Meanness, params.Nerdiness),
		},
	}
	for n, j := range jokes {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "#" + strconv.Itoa(n+1),
			Value: j.Text,
		})
	}

	b.followupEmbed(s, i, embed)
}

func (b *Bot) handleThemes(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var lines []string
	for _, t := range joke.Themes() {
		lines = append(lines, fmt.Sprintf("• `%s`", t))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📋 Available Joke Themes",
		Description: strings.Join(lines, "\n"),
		Color:       colorBlue,
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}); err != nil {
		b.log.Error().Err(err).Msg("failed to respond with themes")
	}
}

func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:       "🎤 Yo Mama Bot - Help",
		Description: "AI-powered Yo Mama joke generator with customizable meanness and nerdiness!",
		Color:       colorPurple,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "📝 Slash Commands",
				Value: "`/joke [theme] [meanness] [nerdiness] [target]` - Generate a custom joke\n" +
					"`/random` - Generate a completely random joke\n" +
					"`/batch [count] [theme] [meanness] [nerdiness]` - Generate multiple jokes (1-10)\n" +
					"`/themes` - List all available joke themes\n" +
					"`/help` - Show this help message",
			},
			{
				Name: "⚙️ Parameters",
				Value: "**Meanness (1-10):** 1 = gentle and playful, 10 = absolutely savage\n" +
					"**Nerdiness (1-10):** 1 = everyone can understand, 10 = extremely technical",
			},
			{
				Name: "💡 Examples",
				Value: "`/joke classic 7 1` - Classic jokes, pretty mean, easy to understand\n" +
					"`/joke cybersecurity 8 9` - Savage cybersecurity roast\n" +
					"`/random` - Surprise me!",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Prefix: %s | Powered by Google Gemini", b.settings.Prefix),
		},
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}); err != nil {
		b.log.Error().Err(err).Msg("failed to respond with help")
	}
}

// onMessage keeps the legacy prefixed text commands working alongside the
// slash commands.
func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, b.settings.Prefix) {
		return
	}

	fields := strings.Fields(m.Content[len(b.settings.Prefix):])
	if len(fields) == 0 {
		return
	}
	command, args := strings.ToLower(fields[0]), fields[1:]

	b.log.Info().Str("command", command).Msg("text command received")

	switch command {
	case "joke":
		b.textJoke(s, m, args)
	case "random":
		j, err := b.gen.RandomJoke(b.ctx)
		if err != nil {
			b.reply(s, m, "❌ Error: "+err.Error())
			return
		}
		b.reply(s, m, "🎲 "+j.Text)
	case "thegame":
		params := b.defaultParams()
		params.Theme = joke.ThemeTheGame
		params.Meanness = 11
		j, err := b.gen.Generate(b.ctx, params)
		if err != nil {
			b.reply(s, m, "❌ Error: "+err.Error())
			return
		}
		b.replyEmbed(s, m, &discordgo.MessageEmbed{
			Description: "🎮💀 " + j.Text,
			Color:       colorPurple,
			Footer:      &discordgo.MessageEmbedFooter{Text: theGameFooter},
		})
	case "themes":
		names := make([]string, 0, len(joke.Themes()))
		for _, t := range joke.Themes() {
			names = append(names, string(t))
		}
		b.reply(s, m, "📋 Available themes:\n"+strings.Join(names, ", "))
	case "help":
		b.reply(s, m, fmt.Sprintf(
			"🎤 Yo Mama Bot: `%[1]sjoke [theme] [meanness] [nerdiness]`, `%[1]srandom`, `%[1]sthemes`. Slash commands also available: /help",
			b.settings.Prefix))
	}
}

func (b *Bot) textJoke(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	params := b.defaultParams()

	if len(args) > 0 {
		params.Theme = joke.Theme(args[0])
	}
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || !meannessInRange(v) {
			b.reply(s, m, meannessRejection)
			return
		}
		params.Meanness = v
	}
	if len(args) > 2 {
		v, err := strconv.Atoi(args[2])
		if err != nil || !nerdinessInRange(v) {
			b.reply(s, m, nerdinessRejection)
			return
		}
		params.Nerdiness = v
	}

	j, err := b.gen.Generate(b.ctx, params)
	if err != nil {
		b.reply(s, m, "❌ Error: "+err.Error())
		return
	}
	b.reply(s, m, "🎤 "+j.Text)
}

func (b *Bot) reply(s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
		b.log.Error().Err(err).Msg("failed to send message")
	}
}

func (b *Bot) replyEmbed(s *discordgo.Session, m *discordgo.MessageCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		b.log.Error().Err(err).Msg("failed to send embed")
	}
}
