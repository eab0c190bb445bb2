// SPDX-License-Identifier: GPL-3.0-or-later
package submission

import (
	"fmt"

	"github.com/CrawX/go-comment-assassin/domain"

	"github.com/sirupsen/logrus"
)

func (s *Submitter) VisibleComments(articleId int64) ([]*domain.SavedComment, error) {
	comments, err := s.persistence.VisibleComments(articleId)
	if err != nil {
		return nil, fmt.Errorf("could not list comments of article %d: %w", articleId, err)
	}
	return comments, nil
}

// ReviewQueue lists stored comments for an administrator, newest first.
func (s *Submitter) ReviewQueue(flaggedOnly bool) ([]*domain.SavedComment, error) {
	comments, err := s.persistence.Comments(flaggedOnly)
	if err != nil {
		return nil, fmt.Errorf("could not list comments: %w", err)
	}
	return comments, nil
}

// Approve publishes a comment. Its flag stays, so it can still be found in the
// review queue.
func (s *Submitter) Approve(id int64) error {
	return s.setHidden(id, false)
}

func (s *Submitter) Hide(id int64) error {
	return s.setHidden(id, true)
}

func (s *Submitter) Delete(id int64) error {
	if s.configuration.DryRun {
		s.l.WithField("id", id).Info("Not deleting comment due to dry-run")
		return nil
	}

	err := s.persistence.DeleteComment(id)
	if err != nil {
		return fmt.Errorf("could not delete comment %d: %w", id, err)
	}
	return nil
}

func (s *Submitter) setHidden(id int64, hidden bool) error {
	if s.configuration.DryRun {
		s.l.WithFields(logrus.Fields{"id": id, "hidden": hidden}).Info("Not changing comment visibility due to dry-run")
		return nil
	}

	err := s.persistence.SetHidden(id, hidden)
	if err != nil {
		return fmt.Errorf("could not change visibility of comment %d: %w", id, err)
	}
	return nil
}
