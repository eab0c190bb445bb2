// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"context"

	"github.com/CrawX/go-comment-assassin/domain"
)

// GoRoutineGate evaluates many comments at once. There is no retry, the gate
// already answers failed classifier calls with its fallback.
type GoRoutineGate struct {
	domain.ModerationGate
}

// EvaluateAll returns one result per request, in request order.
func (grg *GoRoutineGate) EvaluateAll(ctx context.Context, requests []*domain.ModerationRequest, concurrency int) []*domain.ModerationResult {
	if concurrency < 1 {
		concurrency = 1
	}

	semaphore := make(chan bool, concurrency)
	results := make([]*domain.ModerationResult, len(requests))
	for i := 0; i < len(requests); i++ {
		semaphore <- true
		go func(index int) {
			results[index] = grg.Evaluate(ctx, requests[index].Text, requests[index].Metadata)
			<-semaphore
		}(i)
	}

	for i := 0; i < concurrency; i++ {
		semaphore <- true
	}

	return results
}
