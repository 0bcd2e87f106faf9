package joke

import "testing"

func TestThemes_OrderStableAndUnique(t *testing.T) {
	first := Themes()
	if len(first) == 0 {
		t.Fatal("theme catalog is empty")
	}

	seen := make(map[Theme]struct{}, len(first))
	for _, theme := range first {
		if _, dup := seen[theme]; dup {
			t.Errorf("duplicate theme %q in catalog", theme)
		}
		seen[theme] = struct{}{}
	}

	second := Themes()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("catalog order changed between calls at index %d", i)
		}
	}

	// Mutating the returned slice must not affect the catalog.
	first[0] = Theme("mutated")
	if Themes()[0] == Theme("mutated") {
		t.Error("Themes() returned the backing array")
	}
}

func TestThemes_EveryMemberValidWithContext(t *testing.T) {
	for _, theme := range Themes() {
		if !ValidTheme(theme) {
			t.Errorf("catalog member %q not recognized by ValidTheme", theme)
		}
		if themeContexts[theme] == "" {
			t.Errorf("theme %q has an empty context phrase", theme)
		}
	}
	if ValidTheme(Theme("jazz")) {
		t.Error("ValidTheme accepted a tag outside the catalog")
	}
}

func TestClampLevel(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {5, 5}, {10, 10}, {11, 10}, {100, 10},
	}
	for _, tc := range cases {
		if got := clampLevel(tc.in); got != tc.want {
			t.Errorf("clampLevel(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestIntensityGuides_Complete(t *testing.T) {
	for level := 1; level <= 10; level++ {
		if meannessGuide[level] == "" {
			t.Errorf("meanness guide missing entry for level %d", level)
		}
		if nerdinessGuide[level] == "" {
			t.Errorf("nerdiness guide missing entry for level %d", level)
		}
	}
}
