package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/config"
	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
)

// runInteractive drives the REPL. Settings persist across jokes until the
// user changes them or quits.
func runInteractive(ctx context.Context, cfg *config.Config, gen *joke.Generator) error {
	params := paramsFromFlags(ctx, cfg)

	fmt.Println()
	fmt.Println(headerStyle.Render("🎤 Yo Mama Joke Generator"))
	fmt.Println(mutedStyle.Render("Press Enter for a joke, or type 'help' for commands."))
	printSettings(params)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("yomama> "))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		var command, arg string
		if len(fields) > 0 {
			command = strings.ToLower(fields[0])
		}
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch command {
		case "", "joke":
			j, err := gen.Generate(ctx, params)
			if err != nil {
				fmt.Println(errorStyle.Render("Error: " + err.Error()))
				continue
			}
			printJoke(j, "🔥")

		case "f", "theme":
			if arg == "" {
				fmt.Println(errorStyle.Render("Usage: f <theme>"))
				continue
			}
			if !joke.ValidTheme(joke.Theme(arg)) {
				fmt.Println(errorStyle.Render("Unknown theme: " + arg + " (try 'themes')"))
				continue
			}
			params.Theme = joke.Theme(arg)
			printSettings(params)

		case "m", "meanness":
			v, err := parseLevel(arg)
			if err != nil {
				fmt.Println(errorStyle.Render("Usage: m <1-10>"))
				continue
			}
			params.Meanness = v
			printSettings(params)

		case "n", "nerdiness":
			v, err := parseLevel(arg)
			if err != nil {
				fmt.Println(errorStyle.Render("Usage: n <1-10>"))
				continue
			}
			params.Nerdiness = v
			printSettings(params)

		case "t", "target":
			// Targets can contain spaces, take everything after the command.
			params.Target = strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
			printSettings(params)

		case "b", "batch":
			count := 3
			if arg != "" {
				v, err := strconv.Atoi(arg)
				if err != nil || v < 1 || v > 10 {
					fmt.Println(errorStyle.Render("Usage: b <1-10>"))
					continue
				}
				count = v
			}
			fmt.Println(mutedStyle.Render(fmt.Sprintf("⏳ Generating %d jokes...", count)))
			printBatch(gen.GenerateBatch(ctx, count, params))

		case "r", "random":
			j, err := gen.RandomJoke(ctx)
			if err != nil {
				fmt.Println(errorStyle.Render("Error: " + err.Error()))
				continue
			}
			printJoke(j, "🎲")

		case "themes":
			printThemes()

		case "settings":
			printSettings(params)

		case "help", "?":
			printREPLHelp()

		case "q", "quit", "exit":
			fmt.Println(mutedStyle.Render("Bye! 👋"))
			return nil

		default:
			fmt.Println(errorStyle.Render("Unknown command: " + command + " (try 'help')"))
		}
	}
}

func parseLevel(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > 10 {
		return 0, fmt.Errorf("level %d out of range", v)
	}
	return v, nil
}

func printSettings(p joke.Params) {
	target := p.Target
	if target == "" {
		target = joke.DefaultTarget
	}
	fmt.Println(mutedStyle.Render(fmt.Sprintf(
		"⚙️  theme=%s meanness=%d/10 nerdiness=%d/10 target=%q", p.Theme, p.Meanness, p.Nerdiness, target)))
}

func printREPLHelp() {
	fmt.Println()
	fmt.Println(headerStyle.Render("Commands:"))
	fmt.Println(`   <Enter>       generate a joke with current settings
   f <theme>     set the theme
   m <1-10>      set meanness
   n <1-10>      set nerdiness
   t <name>      set a custom target (empty resets)
   b [count]     generate a batch (default 3)
   r             random joke
   themes        list themes
   settings      show current settings
   q             quit`)
	fmt.Println()
}
