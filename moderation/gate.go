// SPDX-License-Identifier: GPL-3.0-or-later
package moderation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/CrawX/go-comment-assassin/domain"
	"github.com/CrawX/go-comment-assassin/log"
	"github.com/CrawX/go-comment-assassin/mail"

	"github.com/sirupsen/logrus"
)

// Gate decides whether a comment has to be hidden pending review. It asks the
// classifier once and answers with the fallback heuristic whenever that call
// fails, so Evaluate always produces a verdict.
//
// Empty text is not rejected, it is classified like any other text.
type Gate struct {
	classifier domain.Classifier
	fallback   domain.FallbackClassifier
	timeout    time.Duration

	l *logrus.Logger
}

func NewGate(classifier domain.Classifier, fallback domain.FallbackClassifier, configFunc ...ConfigFunc) (*Gate, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier cannot be nil")
	}
	if fallback == nil {
		return nil, fmt.Errorf("fallback classifier cannot be nil")
	}

	config := &configuration{Timeout: DefaultTimeout}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}
	if config.Logger == nil {
		config.Logger = log.Logger(log.LOG_GATE)
	}

	return &Gate{
		classifier: classifier,
		fallback:   fallback,
		timeout:    config.Timeout,
		l:          config.Logger,
	}, nil
}

func (g *Gate) Evaluate(ctx context.Context, text string, metadata map[string]string) *domain.ModerationResult {
	if metadata == nil {
		metadata = map[string]string{}
	}

	result := g.evaluate(ctx, text, metadata)
	verdictCount.WithLabelValues(string(result.Source), strconv.FormatBool(result.Verdict.ShouldHide())).Inc()

	return result
}

func (g *Gate) evaluate(ctx context.Context, text string, metadata map[string]string) *domain.ModerationResult {
	verdict, err := g.classify(ctx, text, metadata)
	if err == nil {
		return &domain.ModerationResult{Verdict: verdict, Source: domain.SourceRemote}
	}

	classifierErrorCount.Inc()
	g.l.WithFields(logrus.Fields{"error": err, "text": mail.ShortText(text)}).Warn("Classifier unavailable, using fallback heuristic")

	return &domain.ModerationResult{
		Verdict:     g.fallback.Classify(text),
		Source:      domain.SourceFallback,
		RemoteError: err,
	}
}

type classification struct {
	verdict *domain.Verdict
	err     error
}

// classify returns once the classifier answered or the timeout expired,
// whichever comes first, even if the classifier ignores its context.
func (g *Gate) classify(ctx context.Context, text string, metadata map[string]string) (*domain.Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		classifierDuration.Observe(time.Since(start).Seconds())
	}()

	done := make(chan classification, 1)
	go func() {
		done <- g.call(ctx, &domain.ModerationRequest{Text: text, Metadata: metadata})
	}()

	var c classification
	select {
	case c = <-done:
	case <-ctx.Done():
		return nil, fmt.Errorf("classifier did not answer within %s: %w", g.timeout, ctx.Err())
	}
	if c.err != nil {
		return nil, c.err
	}
	if c.verdict == nil {
		return nil, fmt.Errorf("classifier returned no verdict")
	}

	g.l.WithFields(logrus.Fields{"text": mail.ShortText(text), "isSpam": c.verdict.IsSpam, "isToxic": c.verdict.IsToxic, "score": c.verdict.Score, "duration": time.Since(start)}).Debug("Classified comment")
	return c.verdict, nil
}

// call converts classifier panics into errors.
func (g *Gate) call(ctx context.Context, req *domain.ModerationRequest) (c classification) {
	defer func() {
		if r := recover(); r != nil {
			c = classification{err: fmt.Errorf("classifier panicked: %v", r)}
		}
	}()

	verdict, err := g.classifier.Classify(ctx, req)
	return classification{verdict: verdict, err: err}
}
