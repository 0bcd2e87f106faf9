package joke

// Theme identifies a topical category that contextualizes a joke.
type Theme string

const (
	ThemeClassic       Theme = "classic"
	ThemeCybersecurity Theme = "cybersecurity"
	ThemeTech          Theme = "tech"
	ThemeLinux         Theme = "linux"
	ThemeGeneral       Theme = "general"
	ThemeGaming        Theme = "gaming"
	ThemeProgramming   Theme = "programming"
	ThemeNetworking    Theme = "networking"
	ThemeCloud         Theme = "cloud"
	ThemeDevOps        Theme = "devops"
	ThemeDatabase      Theme = "database"
	ThemeRadio         Theme = "radio"

	// ThemeTheGame is a hidden easter egg. Thinking about The Game means
	// you just lost The Game.
	ThemeTheGame Theme = "thegame"
)

// themeCatalog is the closed set of themes in declared order. Order is
// part of the public contract: Themes() and the bot command choices both
// present themes in this sequence.
var themeCatalog = []Theme{
	ThemeClassic,
	ThemeCybersecurity,
	ThemeTech,
	ThemeLinux,
	ThemeGeneral,
	ThemeGaming,
	ThemeProgramming,
	ThemeNetworking,
	ThemeCloud,
	ThemeDevOps,
	ThemeDatabase,
	ThemeRadio,
	ThemeTheGame,
}

// themeContexts maps each theme to the descriptive context woven into the
// generation prompt. Every catalog member has a non-empty entry.
var themeContexts = map[Theme]string{
	ThemeClassic:       `CLASSIC traditional Yo Mama jokes - use timeless formats like "so fat", "so ugly", "so old", "so stupid", "so poor", "so hairy", "so short", "so tall". Examples: "Yo mama so fat when she sits around the house, she sits AROUND the house", "Yo mama so fat when she got on the scale it said 'I need your weight not your phone number'", "Yo mama so fat I took a picture of her last Christmas and it's still printing", "Yo mama like a race car she burns 4 rubbers a day". Keep it traditional, punchy, and non-technical.`,
	ThemeCybersecurity: "cybersecurity, hacking, vulnerabilities, security tools like CrowdStrike, Shodan, Suricata, Wazuh, firewalls, encryption, CVEs",
	ThemeTech:          "technology, computers, software, hardware, operating systems, IT support, tech companies",
	ThemeLinux:         "Linux, Unix, open source, command line, distros, kernel, bash, system administration, package managers",
	ThemeGeneral:       "everyday technology, smartphones, social media, internet, basic computing",
	ThemeGaming:        "video games, gaming hardware, esports, game development, streaming, lag, FPS",
	ThemeProgramming:   "coding, programming languages, APIs, debugging, git, IDEs, software development",
	ThemeNetworking:    "networks, routers, switches, protocols, TCP/IP, DNS, load balancing, bandwidth",
	ThemeCloud:         "cloud computing, AWS, Azure, GCP, containers, Kubernetes, serverless, microservices",
	ThemeDevOps:        "DevOps, CI/CD, Docker, Jenkins, automation, infrastructure as code, monitoring",
	ThemeDatabase:      "databases, SQL, NoSQL, queries, indexes, normalization, database administrators",
	ThemeRadio:         "amateur radio, ham radio, frequencies, bands (HF/VHF/UHF), antennas, SWR, propagation, callsigns, morse code, repeaters, QSO, QSL cards, ARRL, FCC licenses (Technician/General/Extra), rigs, transceivers, DX, contesting",
	ThemeTheGame:       "The Game - a mind game where thinking about The Game means you lose. Create creative, funny ways to tell them they just lost The Game. Be clever and unexpected. Reference memes, internet culture, or tech concepts if appropriate.",
}

// meannessGuide maps each clamped meanness level to its tone instruction.
var meannessGuide = [11]string{
	1:  "extremely gentle and wholesome, just playful teasing",
	2:  "mild and friendly, very light roasting",
	3:  "gentle but with a slight edge",
	4:  "moderately playful with some bite",
	5:  "balanced roasting, noticeable but not harsh",
	6:  "firm roasting with clear jabs",
	7:  "harsh and pointed, definitely stinging",
	8:  "brutal and savage, no holding back",
	9:  "devastatingly mean, almost cruel",
	10: "absolutely merciless and nuclear-level savage",
}

// nerdinessGuide maps each clamped nerdiness level to its jargon instruction.
var nerdinessGuide = [11]string{
	1:  "use only basic everyday terms anyone would understand",
	2:  "use simple tech terms most people know",
	3:  "use common tech concepts",
	4:  "use moderately technical terms",
	5:  "use technical jargon that tech-savvy people know",
	6:  "use specialized technical terms",
	7:  "use insider technical references and acronyms",
	8:  "use advanced technical concepts and tools",
	9:  "use highly specialized technical knowledge",
	10: "use extremely obscure technical references only experts would get",
}

// Themes returns the full theme catalog in declared order. The returned
// slice is a copy; callers may mutate it freely.
func Themes() []Theme {
	out := make([]Theme, len(themeCatalog))
	copy(out, themeCatalog)
	return out
}

// ValidTheme reports whether t is a member of the closed theme catalog.
func ValidTheme(t Theme) bool {
	_, ok := themeContexts[t]
	return ok
}

// clampLevel forces an intensity level into [1,10]. Out-of-range input is
// not an error anywhere in the core; the bots may reject before calling.
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 10 {
		return 10
	}
	return level
}
