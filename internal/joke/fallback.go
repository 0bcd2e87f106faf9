package joke

import (
	"errors"
	"strings"
)

// throttleJokes are served when the provider reports rate limiting or
// quota exhaustion. Even infrastructure failure stays in character.
var throttleJokes = []string{
	"Yo mama hitting this API so hard, even Google told her to slow down! 🚦 (Rate limit exceeded, try again in a minute)",
	"Yo mama's requests so thicc, the API said 'I need a break!' 💤 (Quota exceeded, please try again later)",
	"Yo mama making so many requests, the API filed a restraining order! 🚨 (Rate limit hit, chill for a sec)",
	"Yo mama so demanding, she exceeded her quota faster than a script kiddie with a new API key! ⚠️ (Try again in 60 seconds)",
	"Yo mama hit that rate limit so fast, even the API was like 'Damn girl, pace yourself!' 🔥 (Quota exceeded, wait a minute)",
	"Yo mama's API calls so excessive, Google Gemini ghosted her! 👻 (Rate limit reached, try again soon)",
}

// fallbackJokes are served per theme when generation fails for any other
// reason. Themes without an entry get genericFallback.
var fallbackJokes = map[Theme]string{
	ThemeCybersecurity: "Yo mama so insecure, even CrowdStrike flagged her as a vulnerability.",
	ThemeTech:          "Yo mama so slow, buffering gives up and goes home.",
	ThemeLinux:         "Yo mama so bloated, even apt-get couldn't remove her dependencies.",
	ThemeGeneral:       "Yo mama so old, her password is literally 'password'.",
	ThemeGaming:        "Yo mama so laggy, ping timeout became her nickname.",
	ThemeProgramming:   "Yo mama so buggy, Stack Overflow created a tag just for her.",
	ThemeRadio:         "Yo mama so noisy, she causes interference on all bands at once - 73!",
	ThemeTheGame:       "Congratulations! You just lost The Game. And so did everyone reading this. Sorry not sorry. 🎮💀",
}

const genericFallback = "Yo mama so outdated, even legacy systems moved on."

// isThrottleError classifies a generation failure as rate limiting.
// The structured sentinel is checked first; substring matching on the
// error text is kept as a last-resort adapter for clients that do not
// wrap their errors.
func isThrottleError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit")
}

// fallbackFor returns the static joke for a theme, or the generic one.
func fallbackFor(theme Theme) string {
	if j, ok := fallbackJokes[theme]; ok {
		return j
	}
	return genericFallback
}
