package discord

import (
	"testing"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
)

func TestMeannessInRange(t *testing.T) {
	cases := []struct {
		v    int
		want bool
	}{
		{0, false}, {1, true}, {5, true}, {10, true}, {11, true}, {12, false}, {-1, false},
	}
	for _, tc := range cases {
		if got := meannessInRange(tc.v); got != tc.want {
			t.Errorf("meannessInRange(%d) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestNerdinessInRange(t *testing.T) {
	cases := []struct {
		v    int
		want bool
	}{
		{0, false}, {1, true}, {10, true}, {11, false},
	}
	for _, tc := range cases {
		if got := nerdinessInRange(tc.v); got != tc.want {
			t.Errorf("nerdinessInRange(%d) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestThemeChoices_CoverFullCatalog(t *testing.T) {
	choices := themeChoices()
	catalog := joke.Themes()

	if len(choices) != len(catalog) {
		t.Fatalf("expected %d choices, got %d", len(catalog), len(choices))
	}
	for n, choice := range choices {
		if choice.Value != string(catalog[n]) {
			t.Errorf("choice %d = %v, want %s", n, choice.Value, catalog[n])
		}
		if choice.Name == "" {
			t.Errorf("choice %d has no label", n)
		}
	}
}
