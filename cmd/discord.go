package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/config"
	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
	"github.com/ChiefGyk3D/yomama-as-a-service/internal/platform/discord"
	"github.com/rs/zerolog"
)

var discordCmd = &cobra.Command{
	Use:   "discord",
	Short: "Run the Discord bot",
	Long: `Run the Discord bot. Registers slash commands (/joke, /random, /batch,
/themes, /help) and also answers legacy prefixed text commands.

Requires DISCORD_BOT_TOKEN alongside the LLM credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd, newDiscordBot)
	},
}

func init() {
	rootCmd.AddCommand(discordCmd)
}

// runner is anything with a blocking Run, which is all the bot frontends.
type runner interface {
	Run(ctx context.Context) error
}

func newDiscordBot(ctx context.Context, cfg *config.Config, gen *joke.Generator, log zerolog.Logger) (runner, error) {
	return discord.New(discord.Settings{
		Token:            cfg.DiscordBotToken(ctx),
		Prefix:           cfg.DiscordPrefix(ctx),
		DefaultTheme:     cfg.DefaultTheme(ctx),
		DefaultMeanness:  cfg.DefaultMeanness(ctx),
		DefaultNerdiness: cfg.DefaultNerdiness(ctx),
	}, gen, log.With().Str("platform", "discord").Logger())
}

// runBot shares the bot lifecycle: setup, build, run until SIGINT/SIGTERM.
func runBot(cmd *cobra.Command, build func(context.Context, *config.Config, *joke.Generator, zerolog.Logger) (runner, error)) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, gen, log, err := setup(ctx)
	if err != nil {
		return err
	}

	bot, err := build(ctx, cfg, gen, log)
	if err != nil {
		return err
	}
	return bot.Run(ctx)
}
