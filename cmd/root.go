// Package cmd wires the command-line surface: one-shot generation flags,
// an interactive session, and the chat-platform bot runners.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/config"
	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
)

var (
	flagTheme       string
	flagMeanness    int
	flagNerdiness   int
	flagTarget      string
	flagBatch       int
	flagRandom      bool
	flagThemes      bool
	flagInteractive bool
	flagLogLevel    string
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F780FF")).Bold(true)
	jokeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E9E9F4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "yomama",
	Short: "Yo Mama joke generator powered by Gemini",
	Long: `Generate "Yo Mama" jokes with tunable themes, meanness, and nerdiness.

Without flags the tool starts an interactive session. The discord and
matrix subcommands run the chat-platform bots.

Examples:
  yomama -f cybersecurity -m 8 -n 9     # harsh, nerdy cybersec joke
  yomama -f linux -m 3 -n 7             # gentle, technical Linux joke
  yomama -b 5 -f gaming                 # five gaming jokes
  yomama -r                             # fully random joke
  yomama --themes                       # list available themes
  yomama discord                        # run the Discord bot
  yomama matrix                         # run the Matrix bot`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&flagTheme, "theme", "f", "", "joke theme (cybersecurity, tech, linux, ...)")
	rootCmd.Flags().IntVarP(&flagMeanness, "meanness", "m", 0, "meanness level 1-10 (1=gentle, 10=brutal)")
	rootCmd.Flags().IntVarP(&flagNerdiness, "nerdiness", "n", 0, "nerdiness level 1-10 (1=accessible, 10=very technical)")
	rootCmd.Flags().StringVarP(&flagTarget, "target", "t", "", `custom target name (default "yo mama")`)
	rootCmd.Flags().IntVarP(&flagBatch, "batch", "b", 0, "generate multiple jokes at once")
	rootCmd.Flags().BoolVarP(&flagRandom, "random", "r", false, "generate a completely random joke")
	rootCmd.Flags().BoolVar(&flagThemes, "themes", false, "list available themes and exit")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "run an interactive session (default with no flags)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:")+" "+err.Error())
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().Timestamp().Logger()
}

// setup loads configuration, checks required credentials, and builds the
// generator shared by every command.
func setup(ctx context.Context) (*config.Config, *joke.Generator, zerolog.Logger, error) {
	bootLog := newLogger(flagLogLevel)

	cfg, err := config.Load(bootLog)
	if err != nil {
		return nil, nil, bootLog, err
	}

	level := flagLogLevel
	if level == "" {
		level = cfg.LogLevel(ctx)
	}
	log := newLogger(level)

	if missing := cfg.Validate(ctx); len(missing) > 0 {
		return nil, nil, log, fmt.Errorf(
			"missing required configuration: %s (set it in your environment, .env file, or secrets manager)",
			strings.Join(missing, ", "))
	}

	gen, err := newGenerator(ctx, cfg, log)
	if err != nil {
		return nil, nil, log, err
	}
	return cfg, gen, log, nil
}

// newGenerator builds a generator for the configured LLM provider.
func newGenerator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*joke.Generator, error) {
	var (
		llm   joke.LLM
		model string
		err   error
	)

	switch cfg.LLMProvider(ctx) {
	case "openai":
		llm, err = joke.NewOpenAILLM(cfg.OpenAIAPIKey(ctx))
		model = cfg.OpenAIModel(ctx)
	default:
		llm, err = joke.NewGeminiLLM(ctx, cfg.GeminiAPIKey(ctx))
		model = cfg.GeminiModel(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing LLM client: %w", err)
	}

	log.Debug().Str("model", model).Msg("generator ready")
	return joke.NewGenerator(llm, joke.LLMConfig{Model: model}, log), nil
}

// paramsFromFlags merges explicit flags over the configured defaults.
func paramsFromFlags(ctx context.Context, cfg *config.Config) joke.Params {
	p := joke.Params{
		Theme:     joke.Theme(flagTheme),
		Meanness:  flagMeanness,
		Nerdiness: flagNerdiness,
		Target:    flagTarget,
	}
	if p.Theme == "" {
		p.Theme = joke.Theme(cfg.DefaultTheme(ctx))
	}
	if p.Meanness == 0 {
		p.Meanness = cfg.DefaultMeanness(ctx)
	}
	if p.Nerdiness == 0 {
		p.Nerdiness = cfg.DefaultNerdiness(ctx)
	}
	return p
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Theme listing needs no credentials at all.
	if flagThemes {
		printThemes()
		return nil
	}

	cfg, gen, _, err := setup(ctx)
	if err != nil {
		return err
	}

	params := paramsFromFlags(ctx, cfg)

	switch {
	case flagInteractive:
		return runInteractive(ctx, cfg, gen)

	case flagRandom:
		j, err := gen.RandomJoke(ctx)
		if err != nil {
			return err
		}
		printJoke(j, "🎲")

	case flagBatch > 0:
		fmt.Println(mutedStyle.Render(fmt.Sprintf("⏳ Generating %d jokes...", flagBatch)))
		printBatch(gen.GenerateBatch(ctx, flagBatch, params))

	case flagTheme != "" || flagMeanness != 0 || flagNerdiness != 0 || flagTarget != "":
		j, err := gen.Generate(ctx, params)
		if err != nil {
			return err
		}
		printJoke(j, "🔥")

	default:
		return runInteractive(ctx, cfg, gen)
	}

	return nil
}

func printThemes() {
	fmt.Println()
	fmt.Println(headerStyle.Render("📋 Available themes:"))
	for _, t := range joke.Themes() {
		fmt.Println("   • " + string(t))
	}
	fmt.Println()
}

func printJoke(j *joke.Joke, prefix string) {
	fmt.Println()
	fmt.Println(prefix + " " + jokeStyle.Render(j.Text))
	if j.Fallback {
		fmt.Println(mutedStyle.Render("   (canned joke, the model was unavailable)"))
	}
	fmt.Println()
}

func printBatch(jokes []*joke.Joke) {
	divider := mutedStyle.Render(strings.Repeat("─", 60))
	fmt.Println()
	fmt.Println(divider)
	for n, j := range jokes {
		fmt.Printf("\n%d. %s\n", n+1, jokeStyle.Render(j.Text))
	}
	fmt.Println()
	fmt.Println(divider)
	fmt.Println()
}
