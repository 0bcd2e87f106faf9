package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/config"
	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
	"github.com/ChiefGyk3D/yomama-as-a-service/internal/platform/matrix"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Run the Matrix bot",
	Long: `Run the Matrix bot. Answers prefixed text commands (!joke, !random,
!batch, !themes, !help) in joined rooms and auto-joins on invite.

Requires MATRIX_USER_ID plus either MATRIX_ACCESS_TOKEN or MATRIX_PASSWORD
alongside the LLM credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd, newMatrixBot)
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}

func newMatrixBot(ctx context.Context, cfg *config.Config, gen *joke.Generator, log zerolog.Logger) (runner, error) {
	return matrix.New(matrix.Settings{
		Homeserver:       cfg.MatrixHomeserver(ctx),
		UserID:           cfg.MatrixUserID(ctx),
		AccessToken:      cfg.MatrixAccessToken(ctx),
		Password:         cfg.MatrixPassword(ctx),
		DeviceID:         cfg.MatrixDeviceID(ctx),
		Prefix:           cfg.MatrixPrefix(ctx),
		AutoJoin:         cfg.MatrixAutoJoin(ctx),
		DefaultTheme:     cfg.DefaultTheme(ctx),
		DefaultMeanness:  cfg.DefaultMeanness(ctx),
		DefaultNerdiness: cfg.DefaultNerdiness(ctx),
	}, gen, log.With().Str("platform", "matrix").Logger())
}
