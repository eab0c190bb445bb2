// SPDX-License-Identifier: GPL-3.0-or-later
package submission

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/CrawX/go-comment-assassin/classifier"
	"github.com/CrawX/go-comment-assassin/domain"
	"github.com/CrawX/go-comment-assassin/log"
	"github.com/CrawX/go-comment-assassin/mail"

	"github.com/sirupsen/logrus"
)

const (
	BatchSize           = 50
	EvaluateConcurrency = 16
)

// Submitter is the caller side of the moderation gate: it evaluates incoming
// comments, stores them with their verdict and tells the author whether the
// comment went live.
type Submitter struct {
	persistence domain.Persistence
	gate        *classifier.GoRoutineGate

	configuration *configuration

	l *logrus.Logger
}

func NewSubmitter(persistence domain.Persistence, gate domain.ModerationGate, configFunc ...ConfigFunc) (*Submitter, error) {
	config := &configuration{
		DefaultAuthor: DefaultAuthor,
		Concurrency:   EvaluateConcurrency,
	}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Submitter{
		persistence:   persistence,
		gate:          &classifier.GoRoutineGate{ModerationGate: gate},
		configuration: config,
		l:             log.Logger(log.LOG_SUBMISSION),
	}, nil
}

func (s *Submitter) Submit(ctx context.Context, comment *domain.NewComment) (*domain.SubmitOutcome, error) {
	outcomes, err := s.submitBatch(ctx, []*domain.NewComment{comment})
	if err != nil {
		return nil, err
	}

	return outcomes[0], nil
}

// SubmitAll handles comments in batches, every batch is evaluated
// concurrently and persisted in a single transaction. Outcomes are returned in
// input order.
func (s *Submitter) SubmitAll(ctx context.Context, comments []*domain.NewComment) ([]*domain.SubmitOutcome, error) {
	batches := partitionComments(comments, BatchSize)
	s.l.WithFields(logrus.Fields{"comments": len(comments), "batches": len(batches), "dryrun": s.configuration.DryRun}).Info("Submitting comments")

	outcomes := make([]*domain.SubmitOutcome, 0, len(comments))
	totalPublished, totalPending := 0, 0
	for _, batch := range batches {
		start := time.Now()
		batchOutcomes, err := s.submitBatch(ctx, batch)
		if err != nil {
			return nil, err
		}

		published, pending := countStatus(batchOutcomes)
		totalPublished += published
		totalPending += pending
		s.l.WithFields(logrus.Fields{"duration": time.Since(start), "batchsize": len(batch), "published": published, "pending": pending}).Info("Submitted batch")

		outcomes = append(outcomes, batchOutcomes...)
	}

	s.l.WithFields(logrus.Fields{"published": totalPublished, "pending": totalPending}).Info("Submitted comments")
	return outcomes, nil
}

func (s *Submitter) submitBatch(ctx context.Context, batch []*domain.NewComment) ([]*domain.SubmitOutcome, error) {
	if len(batch) == 0 {
		return []*domain.SubmitOutcome{}, nil
	}

	requests := make([]*domain.ModerationRequest, len(batch))
	saveComments := make([]domain.SaveComment, len(batch))
	for i, c := range batch {
		author := strings.TrimSpace(c.AuthorName)
		if len(author) == 0 {
			author = s.configuration.DefaultAuthor
		}
		ipHash := HashOrigin(s.configuration.IpHashSalt, c.RemoteAddr)

		requests[i] = &domain.ModerationRequest{
			Text: c.Content,
			Metadata: map[string]string{
				domain.MetadataAuthorName: author,
				domain.MetadataIpHash:     ipHash,
			},
		}
		saveComments[i] = domain.SaveComment{
			ArticleId:  c.ArticleId,
			AuthorName: author,
			Content:    c.Content,
			IpHash:     ipHash,
		}
	}

	results := s.gate.EvaluateAll(ctx, requests, s.configuration.Concurrency)

	for i, result := range results {
		verdict := result.Verdict
		saveComments[i].IsHidden = verdict.ShouldHide()
		saveComments[i].IsFlagged = verdict.IsSpam || verdict.IsToxic
		saveComments[i].ModerationScore = verdict.Score
		saveComments[i].ModerationReason = verdict.Reason
		saveComments[i].ModerationSource = result.Source

		s.l.WithFields(logrus.Fields{"article": batch[i].ArticleId, "text": mail.ShortText(batch[i].Content), "source": result.Source, "isSpam": verdict.IsSpam, "isToxic": verdict.IsToxic, "score": verdict.Score}).Debug("Evaluated comment")
	}

	ids := make([]int64, len(batch))
	if !s.configuration.DryRun {
		saved, err := s.persistence.SaveComments(saveComments)
		if err != nil {
			return nil, fmt.Errorf("could not save comments: %w", err)
		}
		if len(saved) != len(batch) {
			return nil, fmt.Errorf("unexpected number of saved comments, expected %d got %d", len(batch), len(saved))
		}
		ids = saved
	} else {
		s.l.WithFields(logrus.Fields{"batchsize": len(batch)}).Info("Not persisting comments due to dry-run")
	}

	outcomes := make([]*domain.SubmitOutcome, len(batch))
	for i, result := range results {
		outcomes[i] = outcome(ids[i], result)
	}

	return outcomes, nil
}

func outcome(id int64, result *domain.ModerationResult) *domain.SubmitOutcome {
	if result.Verdict.ShouldHide() {
		return &domain.SubmitOutcome{
			Status:    domain.StatusPending,
			Message:   domain.PendingMessage,
			CommentId: id,
			Result:    result,
		}
	}

	return &domain.SubmitOutcome{
		Status:    domain.StatusPublished,
		CommentId: id,
		Result:    result,
	}
}

// HashOrigin hashes the network origin of a submitter so that the raw address
// is never stored or sent to a classifier.
func HashOrigin(salt, remoteAddr string) string {
	sha := sha256.New()
	sha.Write([]byte(salt))
	sha.Write([]byte(remoteAddr))

	return fmt.Sprintf("%x", sha.Sum(nil))
}

func countStatus(outcomes []*domain.SubmitOutcome) (int, int) {
	published, pending := 0, 0
	for _, o := range outcomes {
		if o.Status == domain.StatusPending {
			pending++
		} else {
			published++
		}
	}
	return published, pending
}

// taken from https://github.com/golang/go/wiki/SliceTricks
func partitionComments(comments []*domain.NewComment, partitionSize int) [][]*domain.NewComment {
	batches := make([][]*domain.NewComment, 0, (len(comments)+partitionSize-1)/partitionSize)

	for partitionSize < len(comments) {
		comments, batches = comments[partitionSize:], append(batches, comments[0:partitionSize:partitionSize])
	}
	if len(comments) > 0 {
		batches = append(batches, comments)
	}

	return batches
}
