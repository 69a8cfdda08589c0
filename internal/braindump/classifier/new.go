package classifier

import (
	"braindump/internal/braindump"
	"braindump/pkg/log"
	"braindump/pkg/openai"
)

// OpenAIClassifier maps raw text to a structured intent using an LLM.
type OpenAIClassifier struct {
	llm openai.IOpenAI
	l   log.Logger
}

// Ensure OpenAIClassifier implements the domain interface
var _ braindump.Classifier = (*OpenAIClassifier)(nil)

// New creates a new OpenAIClassifier
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm openai.IOpenAI, l log.Logger) *OpenAIClassifier {
	return &OpenAIClassifier{
		llm: llm,
		l:   l,
	}
}
