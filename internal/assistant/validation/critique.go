package validation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseVerdict parses the critic's output as structured data. The payload is
// untrusted and possibly malformed: parse-or-error, the caller falls back to
// the heuristic critique.
func parseVerdict(raw string, acceptScore int) (Verdict, error) {
	text := stripCodeFences(raw)

	var parsed struct {
		Score  int      `json:"score"`
		Issues []string `json:"issues"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return Verdict{}, fmt.Errorf("failed to parse critique JSON: %w", err)
	}

	if parsed.Score < 1 || parsed.Score > 10 {
		return Verdict{}, fmt.Errorf("critique score %d out of range", parsed.Score)
	}

	return Verdict{
		Score:          parsed.Score,
		IsSatisfactory: parsed.Score >= acceptScore,
		Issues:         parsed.Issues,
	}, nil
}

// stripCodeFences removes a surrounding markdown code block if present
// (```json ... ```).
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}

// Telltale signs of a bad candidate, checked lowercase.
var badSignPhrases = []struct {
	pattern string
	issue   string
}{
	{"i'm sorry", "apologetic error phrasing instead of an answer"},
	{"i apologize", "apologetic error phrasing instead of an answer"},
	{"an error occurred", "reports an error instead of answering"},
	{"i can help you with", "generic capability listing instead of an answer"},
	{"as an ai", "self-referential filler"},
}

const (
	heuristicBaseScore    = 8
	heuristicPenalty      = 2
	maxMarkupHeadings     = 3
	maxHeuristicSentences = 12
)

// heuristicCritique scores a candidate locally by pattern-matching telltale
// bad signs. Deterministic, so the loop stays testable when every critic
// call fails.
func (lp *Loop) heuristicCritique(candidate string) Verdict {
	lower := strings.ToLower(candidate)
	var issues []string

	seen := make(map[string]bool)
	for _, sign := range badSignPhrases {
		if strings.Contains(lower, sign.pattern) && !seen[sign.issue] {
			issues = append(issues, sign.issue)
			seen[sign.issue] = true
		}
	}

	if strings.Count(candidate, "#") >= maxMarkupHeadings || strings.Count(candidate, "**") >= maxMarkupHeadings*2 {
		issues = append(issues, "heavy heading/markup formatting for a chat answer")
	}

	if sentenceCount(candidate) > maxHeuristicSentences {
		issues = append(issues, "answer is too long")
	}

	score := heuristicBaseScore - heuristicPenalty*len(issues)
	if score < 1 {
		score = 1
	}

	return Verdict{
		Score:          score,
		IsSatisfactory: score >= lp.cfg.AcceptScore,
		Issues:         issues,
	}
}

func sentenceCount(text string) int {
	count := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
		}
	}
	return count
}
