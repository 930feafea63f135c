package service

import (
	"fmt"

	"doc-summarizer/internal/domain"
)

const summaryPromptTemplate = `Generate a %s summary of the following document. Focus on key points and main ideas. Document content: "%s"`

// BuildSummaryPrompt embeds the length hint and the full document text into the summary instruction.
//
// The text is inserted verbatim: no escaping, no truncation. A document can therefore
// carry instructions of its own into the prompt, and very large documents are sent whole.
func BuildSummaryPrompt(text string, length domain.SummaryLength) string {
	return fmt.Sprintf(summaryPromptTemplate, length, text)
}
