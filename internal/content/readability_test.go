package content

import "testing"

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"Dragons", 1},
		{"Dragons breathe fire.", 3},
		{"  spaced   out   words  ", 3},
	}
	for _, tt := range tests {
		if got := WordCount(tt.text); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"dragon", 2},
		{"amazing", 3},
		{"whale", 1},  // silent e
		{"little", 2}, // -le keeps its syllable
		{"sky", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := countSyllables(tt.word); got != tt.want {
			t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestFleschReadingEase(t *testing.T) {
	easy := "The cat sat on the mat. The dog ran to the park. We like to play."
	hard := "Notwithstanding considerable institutional heterogeneity, comprehensive organizational restructuring necessitates multidimensional evaluation."

	easyScore := FleschReadingEase(easy)
	hardScore := FleschReadingEase(hard)

	if easyScore <= hardScore {
		t.Errorf("easy text scored %.1f, hard text %.1f; easy should score higher", easyScore, hardScore)
	}
	if easyScore < 80 {
		t.Errorf("easy text scored %.1f, expected at least 80", easyScore)
	}
	if hardScore > 30 {
		t.Errorf("hard text scored %.1f, expected at most 30", hardScore)
	}
}

func TestFleschReadingEase_Empty(t *testing.T) {
	if got := FleschReadingEase(""); got != 0 {
		t.Errorf("empty text scored %.1f, want 0", got)
	}
}

func TestFleschReadingEase_Clamped(t *testing.T) {
	score := FleschReadingEase("Go. Do. So. No.")
	if score < 0 || score > 100 {
		t.Errorf("score %.1f outside 0-100", score)
	}
}
