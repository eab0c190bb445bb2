// SPDX-License-Identifier: GPL-3.0-or-later
package spamassassin

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/CrawX/go-comment-assassin/domain"
	"github.com/CrawX/go-comment-assassin/mail"

	"github.com/teamwork/spamc"
)

const (
	SpamAssassinTimeout = 5 * time.Second
	DefaultThreshold    = 5.0
)

// SpamAssassin classifies comments with spamd. It only knows about spam, so
// verdicts are never toxic.
type SpamAssassin struct {
	client    *spamc.Client
	threshold float64
	now       func() time.Time
}

func NewSpamassassin(host string, threshold float64) *SpamAssassin {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	client := spamc.New(host, &net.Dialer{
		Timeout: SpamAssassinTimeout,
	})

	return &SpamAssassin{client: client, threshold: threshold, now: time.Now}
}

func (sa *SpamAssassin) Ping(ctx context.Context) error {
	err := sa.client.Ping(ctx)
	if err != nil {
		return fmt.Errorf("could not ping SpamAssassin: %w", err)
	}
	return nil
}

func (sa *SpamAssassin) Classify(ctx context.Context, req *domain.ModerationRequest) (*domain.Verdict, error) {
	rawMail, err := mail.CommentMail(req, sa.now())
	if err != nil {
		return nil, fmt.Errorf("could not wrap comment: %w", err)
	}

	out, err := sa.client.Process(ctx, bytes.NewReader(rawMail), nil)
	if err != nil {
		return nil, fmt.Errorf("could not check SpamAssassin: %w", err)
	}

	err = out.Message.Close()
	if err != nil {
		return nil, fmt.Errorf("could not close response: %w", err)
	}

	return verdict(out.IsSpam, out.Score, sa.threshold), nil
}

func verdict(isSpam bool, score, threshold float64) *domain.Verdict {
	v := &domain.Verdict{
		IsSpam: isSpam,
		Score:  normalizeScore(score, threshold),
	}
	if isSpam {
		reason := domain.ReasonSpamAssassin
		v.Reason = &reason
	}
	return v
}

// normalizeScore maps SpamAssassin's open ended score onto [0,1), the
// threshold ends up at 0.5.
func normalizeScore(score, threshold float64) float64 {
	if score <= 0 {
		return 0
	}
	return score / (score + threshold)
}
