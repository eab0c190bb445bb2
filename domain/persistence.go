// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Persistence

type SavedComment struct {
	Id               int64         `json:"id"`
	ArticleId        int64         `json:"article_id"`
	AuthorName       string        `json:"author_name"`
	Content          string        `json:"content"`
	IpHash           string        `json:"ip_hash"`
	IsHidden         bool          `json:"is_hidden"`
	IsFlagged        bool          `json:"is_flagged"`
	ModerationScore  float64       `json:"moderation_score"`
	ModerationReason *string       `json:"moderation_reason"`
	ModerationSource VerdictSource `json:"moderation_source"`
	CreatedAt        time.Time     `json:"created_at"`
}

type SaveComment struct {
	ArticleId        int64
	AuthorName       string
	Content          string
	IpHash           string
	IsHidden         bool
	IsFlagged        bool
	ModerationScore  float64
	ModerationReason *string
	ModerationSource VerdictSource
}

type Persistence interface {
	Close() error
	SaveComments(comments []SaveComment) ([]int64, error)
	VisibleComments(articleId int64) ([]*SavedComment, error)
	Comments(flaggedOnly bool) ([]*SavedComment, error)
	SetHidden(id int64, hidden bool) error
	DeleteComment(id int64) error
}
