package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/port"
)

const (
	summarizerSystemPrompt = "You are a professional resume writer who creates impactful, concise bullet points that highlight technical achievements and skills."

	summarizerMaxAttempts = 3
)

// Summarizer rewrites an item's bullet points through a chat model,
// retrying transient failures with exponential backoff.
type Summarizer struct {
	chat        port.ChatCompleter
	backoffUnit time.Duration
}

// NewSummarizer creates a summarizer over the given chat completer.
func NewSummarizer(chat port.ChatCompleter, backoffUnit time.Duration) *Summarizer {
	if backoffUnit <= 0 {
		backoffUnit = time.Second
	}
	return &Summarizer{chat: chat, backoffUnit: backoffUnit}
}

// Summarize rewrites the bullets of one item. Failures never propagate as
// errors: after the final attempt the result reports Success=false and the
// caller keeps the original bullets. An item with no bullets succeeds
// immediately without calling the model.
func (s *Summarizer) Summarize(ctx context.Context, category domain.ItemCategory, title string, bullets []string) domain.SummaryResult {
	if len(bullets) == 0 {
		return domain.SummaryResult{Bullets: []string{}, Success: true}
	}

	userPrompt := buildSummaryPrompt(category, title, bullets)

	var lastErr error
	for attempt := 0; attempt < summarizerMaxAttempts; attempt++ {
		resp, err := s.chat.Complete(ctx, summarizerSystemPrompt, userPrompt)
		if err == nil {
			rewritten := parseBullets(resp.Content)
			if len(rewritten) > 0 {
				return domain.SummaryResult{
					Bullets:          rewritten,
					Success:          true,
					PromptTokens:     resp.PromptTokens,
					CompletionTokens: resp.CompletionTokens,
				}
			}
			err = fmt.Errorf("model returned no usable bullet points")
		}

		lastErr = err
		slog.Warn("summarization attempt failed",
			"attempt", attempt+1,
			"title", title,
			"error", err,
		)

		// No wait after the final attempt; the failure is surfaced as-is.
		if attempt == summarizerMaxAttempts-1 {
			break
		}
		wait := time.Duration(1<<attempt) * s.backoffUnit
		select {
		case <-ctx.Done():
			return domain.SummaryResult{Success: false, ErrorDetail: ctx.Err().Error()}
		case <-time.After(wait):
		}
	}

	return domain.SummaryResult{Success: false, ErrorDetail: lastErr.Error()}
}

// buildSummaryPrompt assembles the rewrite instruction for one item.
func buildSummaryPrompt(category domain.ItemCategory, title string, bullets []string) string {
	kind := "work experience"
	if category == domain.CategoryProject {
		kind = "project"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Summarize the following resume bullet points for the %s titled %q into 2-3 concise, impactful bullet points.\n\n", kind, title)
	b.WriteString("Original bullet points:\n")
	for _, bullet := range bullets {
		fmt.Fprintf(&b, "- %s\n", bullet)
	}
	b.WriteString("\nRequirements:\n")
	b.WriteString("- Return 2-3 bullet points, one per line, with no extra commentary.\n")
	b.WriteString("- Keep every point to a single concise sentence starting with a strong action verb.\n")
	b.WriteString("- Preserve all concrete technologies, metrics, and outcomes.\n")
	b.WriteString("- Do not include dashes or any other formatting, just the text of each point.\n")
	return b.String()
}

// parseBullets splits model output into clean bullet strings, stripping
// any leading list markers the model may have added.
func parseBullets(content string) []string {
	var bullets []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "•*-–— \t")
		line = strings.TrimSpace(line)
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}
