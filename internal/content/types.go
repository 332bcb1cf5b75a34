package content

// Article is a generated magazine-style piece for one topic/dimension.
type Article struct {
	Topic            string  `json:"topic"`
	Dimension        string  `json:"dimension"`
	GradeLevel       int     `json:"grade_level"`
	Content          string  `json:"content"`
	ReadabilityScore float64 `json:"readability_score"`
	WordCount        int     `json:"word_count"`
	Images           []Image `json:"images"`
}

// Image is a curated illustration attached to an article.
type Image struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Thumbnail    string `json:"thumbnail"`
	Alt          string `json:"alt"`
	Photographer string `json:"photographer"`
	Position     int    `json:"position"`
}

// Metadata extracts the fields the progress tracker consumes.
func (a *Article) Metadata() (wordCount int, readabilityScore float64) {
	return a.WordCount, a.ReadabilityScore
}
