package joke

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultTarget is the subject used when no custom target is supplied.
const DefaultTarget = "yo mama"

// Params are the inputs to a single joke generation. The zero value is not
// useful on its own; callers normally start from DefaultParams.
type Params struct {
	// Theme selects the topical category. An empty or unrecognized theme
	// is replaced with a random catalog member at composition time.
	Theme Theme

	// Meanness controls tone harshness, 1 (gentle) to 10 (savage).
	Meanness int

	// Nerdiness controls technical specificity, 1 (accessible) to 10
	// (deeply obscure).
	Nerdiness int

	// Target replaces "yo mama" as the joke's subject when non-empty.
	Target string
}

// DefaultParams returns moderate settings with no theme preference.
func DefaultParams() Params {
	return Params{Meanness: 5, Nerdiness: 5}
}

func (p Params) subject() string {
	if strings.TrimSpace(p.Target) != "" {
		return strings.TrimSpace(p.Target)
	}
	return DefaultTarget
}

// ComposePrompt builds the model-ready instruction block for the given
// parameters. It is a deterministic pure function: the theme must already
// be resolved to a catalog member (Generator.normalize does that), and the
// intensity levels are clamped here so lookup can never fail.
func ComposePrompt(p Params) string {
	meanness := clampLevel(p.Meanness)
	nerdiness := clampLevel(p.Nerdiness)

	context, ok := themeContexts[p.Theme]
	if !ok {
		context = "general technology"
	}

	target := p.subject()

	var b strings.Builder

	b.WriteString(`Generate a single "Yo Mama" style joke with these specifications:` + "\n\n")

	b.WriteString(fmt.Sprintf("THEME: %s - Focus on %s\n\n", p.Theme, context))
	b.WriteString(fmt.Sprintf("MEANNESS LEVEL: %d/10 - %s\n\n", meanness, meannessGuide[meanness]))
	b.WriteString(fmt.Sprintf("NERDINESS LEVEL: %d/10 - %s\n\n", nerdiness, nerdinessGuide[nerdiness]))
	b.WriteString(fmt.Sprintf("TARGET: Use %q instead of \"yo mama\"\n\n", target))

	b.WriteString("REQUIREMENTS:\n")
	b.WriteString(fmt.Sprintf("- Start with \"%s so [adjective]...\"\n", capitalize(target)))
	b.WriteString(fmt.Sprintf("- The joke must be related to %s\n", p.Theme))
	b.WriteString("- Match the specified meanness and nerdiness levels precisely\n")
	b.WriteString("- Be creative and clever\n")
	b.WriteString("- Keep it concise (1-2 sentences max)\n")
	b.WriteString("- Make it funny and original\n\n")

	b.WriteString("EXAMPLES for reference (adjust based on parameters):\n\n")
	b.WriteString(fmt.Sprintf("%s examples:\n", p.Theme))
	b.WriteString("- Yo mama so insecure, even CrowdStrike put her in Reduced Functionality Mode.\n")
	b.WriteString("- Yo mama so exposed, Shodan sends her vulnerability reports.\n")
	b.WriteString("- Yo mama so slow, when she tried to catch up on her emails, Outlook timed her out.\n\n")

	b.WriteString("Generate ONE joke now, matching all specifications:")

	return b.String()
}

// capitalize upper-cases the first rune, leaving the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
