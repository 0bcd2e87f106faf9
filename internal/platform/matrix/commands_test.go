package matrix

import (
	"errors"
	"testing"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
)

func defaults() joke.Params {
	return joke.Params{Theme: joke.ThemeTech, Meanness: 5, Nerdiness: 5}
}

func TestParseJokeArgs_NoArgsUsesDefaults(t *testing.T) {
	p, err := parseJokeArgs(nil, defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != defaults() {
		t.Errorf("expected defaults, got %+v", p)
	}
}

func TestParseJokeArgs_FullArgs(t *testing.T) {
	p, err := parseJokeArgs([]string{"cybersecurity", "8", "9"}, defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Theme != joke.ThemeCybersecurity || p.Meanness != 8 || p.Nerdiness != 9 {
		t.Errorf("args not applied: %+v", p)
	}
}

func TestParseJokeArgs_MeannessGoesToEleven(t *testing.T) {
	p, err := parseJokeArgs([]string{"thegame", "11"}, defaults())
	if err != nil {
		t.Fatalf("11 should be accepted: %v", err)
	}
	if p.Meanness != 11 {
		t.Errorf("expected meanness 11, got %d", p.Meanness)
	}
}

func TestParseJokeArgs_RejectsOutOfRange(t *testing.T) {
	cases := [][]string{
		{"tech", "0"},
		{"tech", "12"},
		{"tech", "banana"},
		{"tech", "5", "0"},
		{"tech", "5", "11"},
		{"tech", "5", "many"},
	}
	for _, args := range cases {
		if _, err := parseJokeArgs(args, defaults()); err == nil {
			t.Errorf("args %v should be rejected", args)
		}
	}
}

func TestParseBatchArgs(t *testing.T) {
	count, p, err := parseBatchArgs([]string{"5", "gaming"}, defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 5 {
		t.Errorf("expected count 5, got %d", count)
	}
	if p.Theme != joke.ThemeGaming {
		t.Errorf("expected gaming theme, got %s", p.Theme)
	}
}

func TestParseBatchArgs_DefaultCount(t *testing.T) {
	count, _, err := parseBatchArgs(nil, defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected default count 3, got %d", count)
	}
}

func TestParseBatchArgs_Rejections(t *testing.T) {
	if _, _, err := parseBatchArgs([]string{"zero"}, defaults()); !errors.Is(err, errCountNumber) {
		t.Errorf("expected errCountNumber, got %v", err)
	}
	for _, bad := range []string{"0", "11", "-2"} {
		if _, _, err := parseBatchArgs([]string{bad}, defaults()); !errors.Is(err, errCountRange) {
			t.Errorf("count %s: expected errCountRange, got %v", bad, err)
		}
	}
}
