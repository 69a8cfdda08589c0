package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"braindump/internal/braindump"
	"braindump/pkg/openai"
)

// Classify determines user intent from a transcribed message. It never
// returns an error: any failure on the provider path degrades to an
// unknown-intent result so the pipeline always continues.
// Convention: Method accepts context.Context as first parameter
func (c *OpenAIClassifier) Classify(ctx context.Context, text string, now time.Time) braindump.IntentResult {
	timeContext := FallbackTimeContext
	if !now.IsZero() {
		timeContext = now.Format("2006-01-02T15:04:05")
	}

	prompt := fmt.Sprintf(PromptClassify, text, timeContext)

	c.l.Infof(ctx, "%s: classifying %q", LogPrefixClassify, text)

	resp, err := c.llm.ChatCompletion(ctx, openai.ChatRequest{
		Messages: []openai.Message{
			{Role: "system", Content: PromptSystem},
			{Role: "user", Content: prompt},
		},
		Temperature: ClassifyTemperature,
		MaxTokens:   ClassifyMaxTokens,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: provider call failed, falling back to unknown: %v", LogPrefixClassify, err)
		return fallbackIntent(text)
	}

	if len(resp.Choices) == 0 {
		c.l.Warnf(ctx, "%s: empty provider response, falling back to unknown", LogPrefixClassify)
		return fallbackIntent(text)
	}

	result := parseReply(strings.TrimSpace(resp.Choices[0].Message.Content), text)

	c.l.Infof(ctx, "%s: classified as %s (confidence: %.2f)", LogPrefixClassify, result.Intent, result.Confidence)

	return result
}

// fallbackIntent is the safe result used whenever classification fails.
func fallbackIntent(text string) braindump.IntentResult {
	return braindump.IntentResult{
		Intent:       braindump.IntentUnknown,
		Confidence:   0.0,
		Entities:     map[string]string{},
		OriginalText: text,
	}
}
