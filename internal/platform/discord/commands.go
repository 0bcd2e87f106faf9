package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
)

const (
	jokeCommand   = "joke"
	randomCommand = "random"
	batchCommand  = "batch"
	themesCommand = "themes"
	helpCommand   = "help"

	themeOption     = "theme"
	meannessOption  = "meanness"
	nerdinessOption = "nerdiness"
	targetOption    = "target"
	userOption      = "user"
	countOption     = "count"
)

// themeChoices presents the catalog in declared order, with the hidden
// easter egg disguised at the end.
func themeChoices() []*discordgo.ApplicationCommandOptionChoice {
	labels := map[joke.Theme]string{
		joke.ThemeClassic:       "🎭 Classic (Traditional Yo Mama)",
		joke.ThemeCybersecurity: "🔒 Cybersecurity",
		joke.ThemeTech:          "💻 Tech (General Technology)",
		joke.ThemeLinux:         "🐧 Linux",
		joke.ThemeGeneral:       "🌐 General",
		joke.ThemeGaming:        "🎮 Gaming",
		joke.ThemeProgramming:   "👨‍💻 Programming",
		joke.ThemeNetworking:    "📡 Networking",
		joke.ThemeCloud:         "☁️ Cloud",
		joke.ThemeDevOps:        "🚀 DevOps",
		joke.ThemeDatabase:      "🗄️ Database",
		joke.ThemeRadio:         "📻 Amateur Radio (Ham Radio)",
		joke.ThemeTheGame:       "❓ Secret...",
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(labels))
	for _, t := range joke.Themes() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  labels[t],
			Value: string(t),
		})
	}
	return choices
}

func (b *Bot) commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        jokeCommand,
			Description: "Generate a Yo Mama joke",
			Type:        discordgo.ChatApplicationCommand,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        themeOption,
					Description: "Joke theme",
					Choices:     themeChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        meannessOption,
					Description: "How mean (1-11, default: 5) - These go to eleven! 🎸",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        nerdinessOption,
					Description: "How nerdy (1-10, default: 5)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        targetOption,
					Description: "Custom target name (default: yo mama)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        userOption,
					Description: "Mention a user to roast (optional)",
				},
			},
		},
		{
			Name:        randomCommand,
			Description: "Generate a random Yo Mama joke",
			Type:        discordgo.ChatApplicationCommand,
		},
		{
			Name:        batchCommand,
			Description: "Generate multiple Yo Mama jokes",
			Type:        discordgo.ChatApplicationCommand,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        countOption,
					Description: "Number of jokes (1-10)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        themeOption,
					Description: "Joke theme",
					Choices:     themeChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        meannessOption,
					Description: "How mean (1-11) - These go to eleven! 🎸",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        nerdinessOption,
					Description: "How nerdy (1-10)",
				},
			},
		},
		{
			Name:        themesCommand,
			Description: "List available joke themes",
			Type:        discordgo.ChatApplicationCommand,
		},
		{
			Name:        helpCommand,
			Description: "Show help for Yo Mama Bot",
			Type:        discordgo.ChatApplicationCommand,
		},
	}
}
