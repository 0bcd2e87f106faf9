package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run all configured bots",
	Long: `Run every bot that has credentials configured. A Discord bot starts
when DISCORD_BOT_TOKEN is set, a Matrix bot when MATRIX_USER_ID is set.
The process exits when any bot fails or on SIGINT/SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, gen, log, err := setup(ctx)
	if err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)
	started := 0

	if cfg.DiscordBotToken(ctx) != "" {
		bot, err := newDiscordBot(ctx, cfg, gen, log)
		if err != nil {
			return err
		}
		group.Go(func() error { return bot.Run(ctx) })
		started++
	}

	if cfg.MatrixUserID(ctx) != "" {
		bot, err := newMatrixBot(ctx, cfg, gen, log)
		if err != nil {
			return err
		}
		group.Go(func() error { return bot.Run(ctx) })
		started++
	}

	if started == 0 {
		return fmt.Errorf("no bot credentials configured: set DISCORD_BOT_TOKEN and/or MATRIX_USER_ID")
	}

	log.Info().Int("bots", started).Msg("serving")
	return group.Wait()
}
