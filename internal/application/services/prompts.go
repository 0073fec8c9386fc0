package services

import (
	"fmt"
	"strings"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

// Prompt construction for each generation kind. The wording matters: the
// provider is instructed to return bare content so the responses can be
// persisted without post-processing.

func buildArticlePrompt(req ArticleRequest, sitemap *entities.Sitemap) string {
	var b strings.Builder

	fmt.Fprintf(&b, `As an expert SEO content writer, please generate a comprehensive, engaging, and plagiarism-free article based on the following parameters.
Your response should be in markdown format.

**Primary Keyword:** %q

**Article Structure:**
- Response should only include the article content, without any preamble or explanations.
- The article should be well-structured with a clear introduction, body, and conclusion.
- It must contain exactly %d sections, each with a relevant heading and aim for at least %d words per section.
- The tone of the article should be %s.
- Refrain from use of em dashes; use commas or parentheses instead.
- Avoid buzzwords and jargon; write in a clear and accessible manner.
- The language of the article must be %s.

**Content Requirements:**
- The primary keyword, %q, should be naturally integrated throughout the article, including in headings where appropriate.
- The content must be informative, accurate, and provide real value to the reader.
- Ensure the article is easy to read and flows logically from one section to the next.
- The article must feature a conclusion or summary that encapsulates the main points discussed.
`, req.Keyword, req.SectionCount, req.MinWordsPerSection, req.Tone, req.Language, req.Keyword)

	if sitemap != nil && len(sitemap.Links) > 0 {
		b.WriteString(`
**Internal Linking:**
- Where relevant, please include internal links to the following pages from our sitemap.
- Do not force links; they should only be included if they provide value to the reader and are contextually appropriate.
- Here are the available pages for internal linking:
`)
		for _, link := range sitemap.Links {
			fmt.Fprintf(&b, "  - [%s](%s)\n", link.Text, link.URL)
		}
	}

	b.WriteString(`
**External Linking:**
- Include links to authoritative external sources to back up any claims or data presented in the article.
- Ensure that external links use appropriate anchor text.
`)

	if req.IncludeFaq {
		b.WriteString("\n**FAQ Section:** Please include a FAQ section at the end of the article that answers common questions related to the keyword.\n")
	}

	b.WriteString("\nPlease begin the article now.\n")
	return b.String()
}

func buildRefinePrompt(req RefineRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Refine the following text based on this instruction: %q.
CRITICAL STYLE RULES:
1. Make it sound 100%% human.
2. ABSOLUTELY NO em-dashes.
3. NO buzzwords.
Return only text.`, req.Prompt)

	if req.Context != "" {
		fmt.Fprintf(&b, "\n\nSTORY CONTEXT (Use this to inform the style/content):\n%s", req.Context)
	}
	if req.PreviousContext != "" {
		fmt.Fprintf(&b, "\n\nPREVIOUS PARAGRAPH (Context): %q", req.PreviousContext)
	}
	if req.NextContext != "" {
		fmt.Fprintf(&b, "\n\nNEXT PARAGRAPH (Context): %q", req.NextContext)
	}
	if req.CharacterContext != "" {
		fmt.Fprintf(&b, "\n\nCHARACTERS PRESENT: %s", req.CharacterContext)
	}

	fmt.Fprintf(&b, "\n\nText to refine: %q", req.Content)
	return b.String()
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}

func buildChapterContext(book *entities.Book, chapter *entities.Chapter, characters []entities.Character, items []entities.WorldItem, prev, next *entities.Chapter) string {
	var b strings.Builder

	target := chapter.TargetWordCount
	if target == 0 {
		target = 1000
	}

	fmt.Fprintf(&b, `Book: %s (%s)
Story Arc: %s
Tone: %s
Setting: %s

Current Chapter: %s
Chapter Arc: %s
Target Word Count: %d
`,
		book.Title, book.Genre,
		orNotSpecified(book.StoryArc), orNotSpecified(book.Tone), orNotSpecified(book.Setting),
		chapter.Title, orNotSpecified(chapter.Summary), target)

	if len(characters) > 0 {
		b.WriteString("\nCharacters:\n")
		for _, c := range characters {
			fmt.Fprintf(&b, "- %s (%s): %s\n", c.Name, c.Role, c.Description)
		}
	}
	if len(items) > 0 {
		b.WriteString("\nWorld Elements:\n")
		for _, item := range items {
			fmt.Fprintf(&b, "- %s (%s): %s\n", item.Name, item.Category, item.Description)
		}
	}
	if prev != nil {
		fmt.Fprintf(&b, "\n\nPrevious Chapter: %s\nPrevious Chapter Summary: %s", prev.Title, orNotSpecified(prev.Summary))
	}
	if next != nil {
		fmt.Fprintf(&b, "\n\nNext Chapter: %s\nNext Chapter Summary: %s", next.Title, orNotSpecified(next.Summary))
	}

	return b.String()
}

func buildChapterPrompt(context string, chapter *entities.Chapter) string {
	target := chapter.TargetWordCount
	if target == 0 {
		target = 1000
	}
	return fmt.Sprintf(`%s

Write the full chapter content for %q based on the chapter arc and context provided above.

Requirements:
- Target approximately %d words
- Match the tone and setting of the book
- Follow the chapter arc closely
- Incorporate the characters and world elements naturally
- Create engaging, well-paced prose
- Use proper paragraph breaks for readability

Write ONLY the chapter content. Do not include the chapter title, chapter number, or any metadata. Just the story text.`,
		context, chapter.Title, target)
}

func buildPolishPrompt(content string) string {
	return fmt.Sprintf(`You are a professional book editor. Your task is to "polish" the following chapter content.

GOAL:
- Improve flow and coherence between paragraphs.
- Fix any disjointed transitions caused by individual paragraph editing.
- Maintain the original plot, characters, and tone.
- Enhance the prose quality (show, don't tell).
- Do NOT change the core story events.

INPUT CONTENT:
%q

OUTPUT:
Return ONLY the polished content. Do not include any conversational filler or markdown code blocks.`, content)
}

func buildOutlinePrompt(book *entities.Book, chapterCount int) string {
	return fmt.Sprintf(`Generate %d chapter outlines for a %s book titled %q.

Story Arc: %s
Book Summary: %s

For each chapter, provide:
1. A compelling chapter title
2. A chapter arc (2-3 sentence summary of what happens in this chapter)

Return ONLY a JSON array in this exact format:
[{ "title": "Chapter Title", "summary": "Chapter arc description" }]

Do not include any markdown formatting, code blocks, or additional text. Just the raw JSON array.`,
		chapterCount, book.Genre, book.Title, orNotSpecified(book.StoryArc), book.Summary)
}
