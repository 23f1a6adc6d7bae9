package player

import "strings"

// Scorecard exports mix full names, surnames-only and initials, so no
// single comparison is reliable. The scoring here combines substring,
// word-overlap and edit-distance signals; the constants were tuned against
// real noisy exports and are load-bearing.

// NormalizeName lowercases a name, strips everything but letters and
// spaces, and collapses whitespace.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// LevenshteinDistance computes the edit distance between two strings.
func LevenshteinDistance(s1, s2 string) int {
	m := len(s1)
	n := len(s2)

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			if s1[i-1] == s2[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min(prev[j], min(curr[j-1], prev[j-1]))
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// CalculateSimilarity scores two names in [0,1]. Equal normalized strings
// score 1; containment and word overlap get fixed boosts before falling
// back to edit-distance similarity.
func CalculateSimilarity(str1, str2 string) float64 {
	s1 := NormalizeName(str1)
	s2 := NormalizeName(str2)

	if s1 == s2 {
		return 1
	}
	if s1 == "" || s2 == "" {
		return 0
	}

	longer, shorter := s1, s2
	if len(s2) > len(s1) {
		longer, shorter = s2, s1
	}

	if strings.Contains(longer, shorter) {
		return min(1, float64(len(shorter))/float64(len(longer))+0.4)
	}

	words1 := strings.Split(s1, " ")
	words2 := strings.Split(s2, " ")

	matchedWords := 0
	for _, w1 := range words1 {
		for _, w2 := range words2 {
			if w1 == w2 || (len(w1) > 2 && len(w2) > 2 && (strings.Contains(w1, w2) || strings.Contains(w2, w1))) {
				matchedWords++
				break
			}
		}
	}

	if matchedWords > 0 {
		wordMatchScore := float64(matchedWords) / float64(max(len(words1), len(words2)))
		if wordMatchScore >= 0.5 {
			return min(1, wordMatchScore+0.3)
		}
	}

	distance := LevenshteinDistance(s1, s2)
	return 1 - float64(distance)/float64(len(longer))
}

// LastName returns the final whitespace-delimited token of a name.
func LastName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
