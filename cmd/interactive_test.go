package cmd

import "testing"

func TestParseLevel(t *testing.T) {
	cases := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"5", 5, false},
		{"10", 10, false},
		{"0", 0, true},
		{"11", 0, true},
		{"-3", 0, true},
		{"five", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := parseLevel(tc.arg)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseLevel(%q) expected error, got %d", tc.arg, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseLevel(%q) unexpected error: %v", tc.arg, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseLevel(%q) = %d, want %d", tc.arg, got, tc.want)
		}
	}
}
