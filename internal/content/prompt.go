package content

import (
	"fmt"
	"strings"
)

// gradeGuideline tunes vocabulary and length per grade level.
type gradeGuideline struct {
	vocab          string
	examples       string
	sentenceLength string
	targetWords    string
	paragraphs     string
}

var gradeGuidelines = map[int]gradeGuideline{
	3: {
		vocab:          "simple words, short sentences",
		examples:       "everyday examples kids can see and touch",
		sentenceLength: "8-12 words per sentence",
		targetWords:    "200-300 words",
		paragraphs:     "2-3 short paragraphs",
	},
	4: {
		vocab:          "slightly more complex words, medium sentences",
		examples:       "relatable examples with basic science terms",
		sentenceLength: "10-15 words per sentence",
		targetWords:    "400-500 words",
		paragraphs:     "3-4 paragraphs",
	},
	5: {
		vocab:          "grade-level vocabulary, varied sentence structures, some advanced terms with explanations",
		examples:       "detailed examples with scientific explanations and real-world connections",
		sentenceLength: "12-20 words per sentence",
		targetWords:    "700-900 words",
		paragraphs:     "5-7 well-developed paragraphs with clear section breaks",
	},
}

func buildArticleSystemPrompt(topic, dimension string, grade int) string {
	g := gradeGuidelines[grade]

	var b strings.Builder
	b.WriteString(`You are an expert children's educational writer who creates engaging, safe, age-appropriate magazine-style content like National Geographic Kids or Highlights.

CRITICAL SAFETY REQUIREMENTS:
- Content must be 100% safe and appropriate for children ages 8-18
- NO violence, weapons, death, injury, scary or disturbing content
- NO inappropriate, sexual, or mature themes whatsoever
- NO political controversy, divisive topics, or sensitive current events
- NO graphic descriptions or frightening scenarios
- Focus only on positive, educational, inspiring, and uplifting content
- Use encouraging, wonder-filled language that builds curiosity safely
- If any aspect of the topic could be inappropriate, focus only on safe educational angles

`)
	b.WriteString(fmt.Sprintf("GRADE LEVEL: %d\n", grade))
	b.WriteString(fmt.Sprintf("TOPIC: %s - %s\n\n", titleCase(topic), titleCase(dimension)))

	b.WriteString("CONTENT REQUIREMENTS:\n")
	b.WriteString(fmt.Sprintf("- Write EXACTLY %s total words (this is crucial!)\n", g.targetWords))
	b.WriteString(fmt.Sprintf("- Create %s with clear section headings\n", g.paragraphs))
	b.WriteString("- Structure like a children's magazine article with multiple sections\n")
	b.WriteString(fmt.Sprintf("- Use %s\n", g.vocab))
	b.WriteString(fmt.Sprintf("- Keep sentences to %s\n", g.sentenceLength))
	b.WriteString(fmt.Sprintf("- Use %s\n\n", g.examples))

	b.WriteString(`MAGAZINE-STYLE STRUCTURE:
- **Engaging Title/Hook**: Start with something that grabs attention
- **Introduction Section**: Brief, exciting overview that builds curiosity
- **Main Sections**: 3-4 distinct sections with subheadings, each covering different aspects
- **Fun Facts Box**: Include surprising, cool facts kids would love
- **Real-World Connections**: How this relates to kids' lives today
- **Conclusion**: End with wonder and questions that inspire further learning

WRITING STYLE:
- Write like you're talking to curious, intelligent kids
- Use vivid descriptions and imagery that paint pictures in their minds
- Include surprising facts, cool examples, and "wow" moments
- Make complex ideas accessible through analogies kids understand
- Create natural breaks between sections (perfect for images later)
- Balance education with entertainment - make learning FUN!

`)
	b.WriteString(fmt.Sprintf("Focus on the %s aspect of %s and make it feel like the most interesting magazine article they've ever read about this topic.", dimension, topic))

	return b.String()
}

func buildArticleUserMessage(topic, dimension string, grade int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Write a fascinating magazine article about %s focusing on the %s aspects.\n\n", topic, dimension))

	b.WriteString("REQUIREMENTS:\n")
	b.WriteString(fmt.Sprintf("- Make it perfect for grade %d students who are curious about %s\n", grade, topic))
	b.WriteString(fmt.Sprintf("- Focus specifically on %s aspects of %s\n", dimension, topic))
	b.WriteString(`- Include multiple sections with clear headings
- Add surprising facts and "did you know?" moments
- Use vivid descriptions that help kids visualize what you're describing
- Include real examples and stories that connect to their world
- Create natural section breaks (these will have images added later)

STRUCTURE YOUR ARTICLE:
1. **Catchy opening** that hooks the reader immediately
`)
	b.WriteString(fmt.Sprintf("2. **3-4 main sections** with subheadings covering different %s aspects of %s\n", dimension, topic))
	b.WriteString(`3. **Fun facts section** with amazing details kids will want to share
4. **Real-world connections** showing how this relates to their daily lives
5. **Inspiring conclusion** that makes them want to learn more

`)
	b.WriteString(fmt.Sprintf("Remember: This should feel like the coolest magazine article about %s they've ever read, specifically exploring the %s side of this amazing topic!", topic, dimension))

	return b.String()
}

// titleCase uppercases the first letter of each word. strings.Title is
// deprecated and the golang.org/x/text caser is overkill for prompt text.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
