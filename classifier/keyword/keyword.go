// SPDX-License-Identifier: GPL-3.0-or-later
package keyword

import (
	"strings"

	"github.com/CrawX/go-comment-assassin/domain"
)

const (
	FlaggedScore = 0.8
	CleanScore   = 0.2
)

var (
	DefaultSpamKeywords  = []string{"buy now", "click here", "limited offer", "viagra", "casino"}
	DefaultToxicKeywords = []string{"hate", "kill", "stupid"}
)

// Heuristic is a deliberately crude substring matcher used when no real
// classifier is reachable. It never fails.
type Heuristic struct {
	spam  []string
	toxic []string
}

// NewHeuristic uses the default keyword sets for every nil argument. An empty,
// non-nil slice disables the category.
func NewHeuristic(spamKeywords, toxicKeywords []string) *Heuristic {
	if spamKeywords == nil {
		spamKeywords = DefaultSpamKeywords
	}
	if toxicKeywords == nil {
		toxicKeywords = DefaultToxicKeywords
	}

	return &Heuristic{
		spam:  normalize(spamKeywords),
		toxic: normalize(toxicKeywords),
	}
}

func (h *Heuristic) Classify(text string) *domain.Verdict {
	lower := strings.ToLower(text)
	isSpam := containsAny(lower, h.spam)
	isToxic := containsAny(lower, h.toxic)

	verdict := &domain.Verdict{
		IsSpam:  isSpam,
		IsToxic: isToxic,
		Score:   CleanScore,
	}
	if isSpam || isToxic {
		verdict.Score = FlaggedScore
	}

	// spam wins over toxic when both match
	switch {
	case isSpam:
		verdict.Reason = reason(domain.ReasonSpamKeywords)
	case isToxic:
		verdict.Reason = reason(domain.ReasonToxicKeywords)
	}

	return verdict
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func normalize(keywords []string) []string {
	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if len(k) == 0 {
			continue
		}
		normalized = append(normalized, k)
	}
	return normalized
}

func reason(r string) *string {
	return &r
}
