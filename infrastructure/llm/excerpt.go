package llm

import (
	"context"
	"strings"
)

const DefaultExcerptWords = 60

// ExcerptSummarizer stands in when no model is configured: the summary is the
// first words of the content.
type ExcerptSummarizer struct {
	Words int
}

func NewExcerptSummarizer(words int) ExcerptSummarizer {
	if words <= 0 {
		words = DefaultExcerptWords
	}
	return ExcerptSummarizer{Words: words}
}

func (s ExcerptSummarizer) Summarize(ctx context.Context, _ string, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	words := strings.Fields(content)
	if len(words) <= s.Words {
		return strings.Join(words, " "), nil
	}
	return strings.Join(words[:s.Words], " ") + "...", nil
}
