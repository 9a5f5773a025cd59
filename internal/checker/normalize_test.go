package checker_test

import (
	"testing"

	"phishguard/internal/checker"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "lowercases and keeps plain ascii",
			in:   "Alice",
			out:  "alice",
		},
		{
			name: "digit look-alikes fold to letters",
			in:   "D1scord Mod",
			out:  "discordmod",
		},
		{
			name: "whitespace removed including tabs",
			in:   "h y p e\tsquad",
			out:  "hypesquad",
		},
		{
			name: "cyrillic look-alikes fold to ascii",
			in:   "Discоrd", // Cyrillic о
			out:  "discord",
		},
		{
			name: "greek look-alikes fold to ascii",
			in:   "mοderatοr", // Greek ο
			out:  "moderator",
		},
		{
			name: "fullwidth compatibility forms decompose",
			in:   "Ｄｉｓｃｏｒｄ",
			out:  "discord",
		},
		{
			name: "diacritics stripped",
			in:   "Dïscörd Stàff",
			out:  "discordstaff",
		},
		{
			name: "symbols used as letters",
			in:   "$t@ff",
			out:  "staff",
		},
		{
			name: "unmapped characters pass through",
			in:   "regular_user_42",
			out:  "regular_user_a2",
		},
		{
			name: "empty input",
			in:   "",
			out:  "",
		},
	}

	for _, tc := range cases {
		got := checker.Normalize(tc.in)
		if got != tc.out {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tc.name, tc.in, got, tc.out)
		}
		// equal inputs always produce equal outputs
		if again := checker.Normalize(tc.in); again != got {
			t.Errorf("%s: Normalize not deterministic: %q then %q", tc.name, got, again)
		}
	}
}

func TestMatchesKeyword(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		match bool
	}{
		{name: "keyword as substring", in: "discordstaff", match: true},
		{name: "keyword mid-string", in: "xx_staffhelper_xx", match: true},
		{name: "hype matches before hypesquad", in: "hypesquad", match: true},
		{name: "short keyword embedded", in: "webdeveloper", match: true},
		{name: "no keyword", in: "regular_user_a2", match: false},
		{name: "empty string", in: "", match: false},
	}

	for _, tc := range cases {
		if got := checker.MatchesKeyword(tc.in); got != tc.match {
			t.Errorf("%s: MatchesKeyword(%q) = %v, want %v", tc.name, tc.in, got, tc.match)
		}
	}
}

func TestNormalizeThenMatch(t *testing.T) {
	// end-to-end pairs through both stages
	cases := []struct {
		in    string
		match bool
	}{
		{in: "D1scord Mod", match: true},
		{in: "xX_StaffHelper_Xx", match: true},
		{in: "НypeSquad Events", match: true}, // Cyrillic Н
		{in: "regular_user_42", match: false},
		{in: "alice", match: false},
	}

	for _, tc := range cases {
		if got := checker.MatchesKeyword(checker.Normalize(tc.in)); got != tc.match {
			t.Errorf("MatchesKeyword(Normalize(%q)) = %v, want %v", tc.in, got, tc.match)
		}
	}
}
