package player

import (
	"math"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Virat Kohli":     "virat kohli",
		"  V. Kohli  ":    "v kohli",
		"O'Brien":         "obrien",
		"DU PLESSIS":      "du plessis",
		"Washington  Sundar": "washington sundar",
	}

	for input, want := range cases {
		if got := NormalizeName(input); got != want {
			t.Fatalf("NormalizeName(%q): got=%q want=%q", input, got, want)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"kohli", "kohli", 0},
		{"kohli", "kohl", 1},
		{"sharma", "sharna", 1},
		{"rahul", "", 5},
	}

	for _, tc := range cases {
		if got := LevenshteinDistance(tc.a, tc.b); got != tc.want {
			t.Fatalf("LevenshteinDistance(%q, %q): got=%d want=%d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLevenshteinDistance_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"bumrah", "bumra"},
		{"southee", "boult"},
		{"jadeja", "jadej a"},
	}
	for _, pair := range pairs {
		ab := LevenshteinDistance(pair[0], pair[1])
		ba := LevenshteinDistance(pair[1], pair[0])
		if ab != ba {
			t.Fatalf("distance not symmetric for %q/%q: %d vs %d", pair[0], pair[1], ab, ba)
		}
	}
}

func TestCalculateSimilarity_Identity(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Virat Kohli", "V Kohli", "Rachin Ravindra"} {
		if got := CalculateSimilarity(name, name); got != 1 {
			t.Fatalf("identity similarity for %q: got=%v want=1", name, got)
		}
	}
}

func TestCalculateSimilarity_SubstringBoost(t *testing.T) {
	t.Parallel()

	// "kohli" is contained in "virat kohli": 5/11 + 0.4.
	got := CalculateSimilarity("Kohli", "Virat Kohli")
	want := 5.0/11.0 + 0.4
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("substring similarity: got=%v want=%v", got, want)
	}
}

func TestCalculateSimilarity_WordOverlap(t *testing.T) {
	t.Parallel()

	// One of two words matches exactly: ratio 0.5 clears the cutoff and
	// gets the 0.3 boost.
	got := CalculateSimilarity("Rohit Sharma", "Mohit Sharma")
	if math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("word-overlap similarity: got=%v want=0.8", got)
	}
}

func TestCalculateSimilarity_DistanceFallback(t *testing.T) {
	t.Parallel()

	// No containment, no word overlap: falls back to 1 - d/len.
	got := CalculateSimilarity("zy", "ab")
	if got != 0 {
		t.Fatalf("distance fallback similarity: got=%v want=0", got)
	}
}

func TestLastName(t *testing.T) {
	t.Parallel()

	if got := LastName("Kane Williamson"); got != "Williamson" {
		t.Fatalf("unexpected last name: got=%q", got)
	}
	if got := LastName("Bumrah"); got != "Bumrah" {
		t.Fatalf("single token should return itself: got=%q", got)
	}
	if got := LastName("   "); got != "" {
		t.Fatalf("blank name should return empty, got=%q", got)
	}
}
