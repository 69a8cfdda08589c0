package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"braindump/internal/braindump"
)

// validIntents is the closed set of labels the provider may return.
// Anything else coerces to unknown.
var validIntents = map[braindump.Intent]bool{
	braindump.IntentTask:     true,
	braindump.IntentEvent:    true,
	braindump.IntentReminder: true,
	braindump.IntentAlarm:    true,
	braindump.IntentNote:     true,
	braindump.IntentQuestion: true,
	braindump.IntentUnknown:  true,
}

var entityPairRe = regexp.MustCompile(`(\w+)="([^"]*)"`)

// parseReply parses the fixed three-line reply format:
//
//	Intent: <label>
//	Confidence: <0.0-1.0>
//	Entities: key="value", key="value"
//
// Parsing is forgiving: an unknown label coerces to unknown, an unparsable
// confidence coerces to the default, and a malformed entities line degrades
// to a single "raw" entity instead of failing the result.
func parseReply(reply, originalText string) braindump.IntentResult {
	intent := braindump.IntentUnknown
	confidence := DefaultConfidence
	entities := map[string]string{}

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "Intent:"):
			label := braindump.Intent(strings.ToLower(strings.TrimSpace(valueAfterColon(line))))
			if validIntents[label] {
				intent = label
			} else {
				intent = braindump.IntentUnknown
			}

		case strings.HasPrefix(line, "Confidence:"):
			parsed, err := strconv.ParseFloat(strings.TrimSpace(valueAfterColon(line)), 64)
			if err != nil {
				confidence = DefaultConfidence
			} else {
				confidence = clamp01(parsed)
			}

		case strings.HasPrefix(line, "Entities:"):
			entityStr := strings.TrimSpace(valueAfterColon(line))
			if strings.EqualFold(entityStr, "none") || entityStr == "" {
				continue
			}
			matches := entityPairRe.FindAllStringSubmatch(entityStr, -1)
			if len(matches) > 0 {
				for _, m := range matches {
					entities[m[1]] = m[2]
				}
			} else {
				entities = map[string]string{"raw": entityStr}
			}
		}
	}

	return braindump.IntentResult{
		Intent:       intent,
		Confidence:   confidence,
		Entities:     entities,
		OriginalText: originalText,
	}
}

func valueAfterColon(line string) string {
	_, after, _ := strings.Cut(line, ":")
	return after
}

func clamp01(f float64) float64 {
	if f < 0.0 {
		return 0.0
	}
	if f > 1.0 {
		return 1.0
	}
	return f
}
