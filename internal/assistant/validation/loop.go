package validation

import (
	"context"
	"fmt"
	"strings"

	"marketing-insights-assistant/pkg/completion"
)

// Run drives the Draft → Critique → {Accept, Revise} state machine for the
// given query. dataContext is the topic data the handler gathered. Run always
// terminates with non-empty content: transport failures fall back to a
// deterministic answer immediately (they are never retried as quality
// rounds), and the round bound forces acceptance of a best-effort answer.
func (lp *Loop) Run(ctx context.Context, query, dataContext string) Result {
	ctx, cancel := context.WithTimeout(ctx, lp.cfg.Timeout)
	defer cancel()

	var (
		candidate string
		issues    []string
		allIssues []string
		lastScore int
	)

	for round := 1; round <= lp.cfg.MaxRounds; round++ {
		if ctx.Err() != nil {
			return lp.bestSoFar(candidate, round-1, lastScore)
		}

		draft, err := lp.draft(ctx, query, dataContext, candidate, issues, round)
		if err != nil {
			lp.l.Warnf(ctx, "%s: draft failed at round %d: %v", LogPrefixRun, round, err)
			return lp.bestSoFar(candidate, round, lastScore)
		}
		candidate = draft

		verdict := lp.critique(ctx, query, candidate)
		lastScore = verdict.Score
		lp.l.Infof(ctx, "%s: round %d scored %d/10 (issues: %d)", LogPrefixRun, round, verdict.Score, len(verdict.Issues))

		if verdict.IsSatisfactory {
			return Result{Content: candidate, Rounds: round, FinalScore: verdict.Score}
		}

		issues = verdict.Issues
		allIssues = append(allIssues, verdict.Issues...)
	}

	// Round bound exhausted: one last regeneration carrying every accumulated
	// issue, accepted unconditionally.
	final, err := lp.finalRegen(ctx, query, dataContext, allIssues)
	if err != nil {
		lp.l.Warnf(ctx, "%s: forced regeneration failed: %v", LogPrefixRun, err)
		return lp.bestSoFar(candidate, lp.cfg.MaxRounds, lastScore)
	}

	return Result{Content: final, Rounds: lp.cfg.MaxRounds + 1, FinalScore: lastScore, ForcedStop: true}
}

// draft generates a candidate. Round 1 runs the plan-then-answer two-step;
// later rounds rewrite the previous candidate against the critic's issues.
func (lp *Loop) draft(ctx context.Context, query, dataContext, previous string, issues []string, round int) (string, error) {
	if round == 1 {
		plan, err := lp.complete(ctx, fmt.Sprintf(PromptPlan, query), DraftTemperature)
		if err != nil {
			return "", err
		}
		return lp.complete(ctx, fmt.Sprintf(PromptAnswer, plan, dataContext, query), DraftTemperature)
	}

	return lp.complete(ctx, fmt.Sprintf(PromptRevise, query, previous, formatIssues(issues)), DraftTemperature)
}

// critique asks the completion service to score the candidate against the
// original query. Any failure, transport or malformed output, falls back to
// the local heuristic critique.
func (lp *Loop) critique(ctx context.Context, query, candidate string) Verdict {
	raw, err := lp.complete(ctx, fmt.Sprintf(PromptCritique, query, candidate), CritiqueTemperature)
	if err != nil {
		lp.l.Warnf(ctx, "%s: critique call failed, using heuristic: %v", LogPrefixRun, err)
		return lp.heuristicCritique(candidate)
	}

	verdict, err := parseVerdict(raw, lp.cfg.AcceptScore)
	if err != nil {
		lp.l.Warnf(ctx, "%s: critique parse failed, using heuristic: %v", LogPrefixRun, err)
		return lp.heuristicCritique(candidate)
	}

	return verdict
}

func (lp *Loop) finalRegen(ctx context.Context, query, dataContext string, allIssues []string) (string, error) {
	return lp.complete(ctx, fmt.Sprintf(PromptFinalRegen, query, dataContext, formatIssues(allIssues)), DraftTemperature)
}

func (lp *Loop) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	text, err := lp.client.Complete(ctx, &completion.Request{
		Messages:    []completion.Message{{Role: completion.RoleUser, Content: prompt}},
		MaxTokens:   lp.cfg.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", completion.ErrEmptyCompletion
	}
	return text, nil
}

// bestSoFar closes the loop with whatever exists: the last candidate, or the
// deterministic fallback when no draft ever succeeded.
func (lp *Loop) bestSoFar(candidate string, rounds, lastScore int) Result {
	if candidate == "" {
		candidate = FallbackAnswer
	}
	return Result{Content: candidate, Rounds: rounds, FinalScore: lastScore, ForcedStop: true}
}

func formatIssues(issues []string) string {
	if len(issues) == 0 {
		return "- (none listed)"
	}
	var b strings.Builder
	for _, issue := range issues {
		b.WriteString("- ")
		b.WriteString(issue)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
