// SPDX-License-Identifier: GPL-3.0-or-later
package submission

import (
	"errors"
	"testing"

	"github.com/CrawX/go-comment-assassin/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSubmitter_Approve(t *testing.T) {
	ctrl, submitter, persistence, _ := setupSubmitter(t, &configuration{})
	defer ctrl.Finish()

	persistence.EXPECT().SetHidden(gomock.Eq(int64(3)), gomock.Eq(false)).Return(nil)
	assert.NoError(t, submitter.Approve(3))
}

func TestSubmitter_HideError(t *testing.T) {
	ctrl, submitter, persistence, _ := setupSubmitter(t, &configuration{})
	defer ctrl.Finish()

	notFound := errors.New("comment not found")
	persistence.EXPECT().SetHidden(gomock.Eq(int64(9)), gomock.Eq(true)).Return(notFound)

	err := submitter.Hide(9)
	assert.ErrorIs(t, err, notFound)
	assert.EqualError(t, err, "could not change visibility of comment 9: comment not found")
}

func TestSubmitter_Delete(t *testing.T) {
	ctrl, submitter, persistence, _ := setupSubmitter(t, &configuration{})
	defer ctrl.Finish()

	persistence.EXPECT().DeleteComment(gomock.Eq(int64(5))).Return(nil)
	assert.NoError(t, submitter.Delete(5))
}

func TestSubmitter_DryRunModifiesNothing(t *testing.T) {
	// the mock fails the test on any unexpected call
	ctrl, submitter, _, _ := setupSubmitter(t, &configuration{DryRun: true})
	defer ctrl.Finish()

	assert.NoError(t, submitter.Approve(1))
	assert.NoError(t, submitter.Hide(1))
	assert.NoError(t, submitter.Delete(1))
}

func TestSubmitter_ReviewQueue(t *testing.T) {
	ctrl, submitter, persistence, _ := setupSubmitter(t, &configuration{})
	defer ctrl.Finish()

	flagged := []*domain.SavedComment{{Id: 1, IsFlagged: true, IsHidden: true}}
	persistence.EXPECT().Comments(gomock.Eq(true)).Return(flagged, nil)
	persistence.EXPECT().VisibleComments(gomock.Eq(int64(2))).Return(nil, errors.New("locked"))

	comments, err := submitter.ReviewQueue(true)
	assert.NoError(t, err)
	assert.Equal(t, flagged, comments)

	_, err = submitter.VisibleComments(2)
	assert.EqualError(t, err, "could not list comments of article 2: locked")
}
