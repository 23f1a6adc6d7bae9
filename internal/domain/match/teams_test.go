package match

import "testing"

func TestShortCode_KnownNations(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"India":        "IND",
		"india":        "IND",
		"  New Zealand ": "NZ",
		"SOUTH AFRICA": "SA",
		"West Indies":  "WI",
		"Netherlands":  "NED",
	}

	for input, want := range cases {
		if got := ShortCode(input); got != want {
			t.Fatalf("ShortCode(%q): got=%s want=%s", input, got, want)
		}
	}
}

func TestShortCode_FallbackPrefix(t *testing.T) {
	t.Parallel()

	if got := ShortCode("Hong Kong"); got != "HON" {
		t.Fatalf("unexpected fallback code: got=%s want=HON", got)
	}
	if got := ShortCode("NZ"); got != "NZ" {
		t.Fatalf("short input should uppercase as-is: got=%s", got)
	}
	if got := ShortCode(""); got != "" {
		t.Fatalf("empty input should resolve to empty code, got=%s", got)
	}
}
