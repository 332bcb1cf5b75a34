package content

import (
	"strings"
	"unicode"
)

// FleschReadingEase scores text on the standard 0-100 scale (higher is
// easier). Grade 3-5 content should land roughly in the 70-90 band.
// Syllables are estimated by vowel-group counting, which is what the
// common readability tools do as well.
func FleschReadingEase(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	score := 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)

	// Clamp to the conventional scale.
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// WordCount counts whitespace-separated words, matching how the word
// target in the generation prompt is expressed.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func countSentences(text string) int {
	n := 0
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			n++
		}
	}
	return n
}

// countSyllables estimates syllables as the number of vowel groups,
// discounting a trailing silent 'e'. Always at least 1 for a word with
// any letters.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 0
	}

	groups := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}

	// Silent final e: "whale" is one syllable group short of the naive count.
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && groups > 1 {
		groups--
	}

	if groups < 1 {
		groups = 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
