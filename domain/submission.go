// SPDX-License-Identifier: GPL-3.0-or-later
package domain

type SubmitStatus string

const (
	StatusPublished = SubmitStatus("published")
	StatusPending   = SubmitStatus("pending")
)

const PendingMessage = "Your comment has been submitted for review"

type NewComment struct {
	ArticleId  int64  `json:"article_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	RemoteAddr string `json:"remote_addr"`
}

type SubmitOutcome struct {
	Status    SubmitStatus
	Message   string
	CommentId int64
	Result    *ModerationResult
}
