// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-comment-assassin/domain"
	"github.com/CrawX/go-comment-assassin/log"
	"github.com/CrawX/go-comment-assassin/persistence/migrations"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

var ErrCommentNotFound = errors.New("comment not found")

const commentColumns = `id, article_id, author_name, content, ip_hash, is_hidden, is_flagged, moderation_score, moderation_reason, moderation_source, created_at`

type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

type dbComment struct {
	Id               int64          `db:"id"`
	ArticleId        int64          `db:"article_id"`
	AuthorName       string         `db:"author_name"`
	Content          string         `db:"content"`
	IpHash           string         `db:"ip_hash"`
	IsHidden         bool           `db:"is_hidden"`
	IsFlagged        bool           `db:"is_flagged"`
	ModerationScore  float64        `db:"moderation_score"`
	ModerationReason sql.NullString `db:"moderation_reason"`
	ModerationSource string         `db:"moderation_source"`
	CreatedAt        time.Time      `db:"created_at"`
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	migrationSource := &migrate.HttpFileSystemMigrationSource{
		FileSystem: migrations.Dir(),
	}

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

// SaveComments stores all comments in one transaction and returns their ids
// in input order.
func (p *Persistence) SaveComments(comments []domain.SaveComment) ([]int64, error) {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not start transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO comments(article_id, author_name, content, ip_hash, is_hidden, is_flagged, moderation_score, moderation_reason, moderation_source) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return nil, txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		result, err := stmt.Exec(
			c.ArticleId, c.AuthorName, c.Content, c.IpHash, c.IsHidden, c.IsFlagged, c.ModerationScore, nullString(c.ModerationReason), string(c.ModerationSource),
		)
		if err != nil {
			return nil, txEnd(tx, fmt.Errorf("could not save comment: %w", err))
		}

		id, err := result.LastInsertId()
		if err != nil {
			return nil, txEnd(tx, fmt.Errorf("could not get id of saved comment: %w", err))
		}
		ids = append(ids, id)
	}

	err = txEnd(tx, nil)
	if err != nil {
		return nil, err
	}

	p.l.WithField("count", len(ids)).Debug("Persisted comments")
	return ids, nil
}

func (p *Persistence) VisibleComments(articleId int64) ([]*domain.SavedComment, error) {
	return p.selectComments(
		`SELECT `+commentColumns+` FROM comments WHERE article_id = ? AND is_hidden = 0 ORDER BY created_at DESC, id DESC`,
		articleId,
	)
}

func (p *Persistence) Comments(flaggedOnly bool) ([]*domain.SavedComment, error) {
	qry := `SELECT ` + commentColumns + ` FROM comments`
	if flaggedOnly {
		qry += ` WHERE is_flagged = 1`
	}
	qry += ` ORDER BY created_at DESC, id DESC`

	return p.selectComments(qry)
}

func (p *Persistence) SetHidden(id int64, hidden bool) error {
	result, err := p.db.Exec(
		"UPDATE comments SET is_hidden = ? WHERE id = ?",
		hidden, id,
	)
	if err != nil {
		return fmt.Errorf("could not update visibility: %w", err)
	}

	err = expectOneRow(result, id)
	if err != nil {
		return err
	}

	p.l.WithFields(logrus.Fields{"id": id, "hidden": hidden}).Info("Changed comment visibility")
	return nil
}

func (p *Persistence) DeleteComment(id int64) error {
	result, err := p.db.Exec("DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("could not delete comment: %w", err)
	}

	err = expectOneRow(result, id)
	if err != nil {
		return err
	}

	p.l.WithField("id", id).Info("Deleted comment")
	return nil
}

func (p *Persistence) selectComments(qry string, args ...interface{}) ([]*domain.SavedComment, error) {
	dbComments := []dbComment{}
	err := p.db.Select(&dbComments, qry, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	comments := []*domain.SavedComment{}
	for _, c := range dbComments {
		comment := &domain.SavedComment{
			Id:               c.Id,
			ArticleId:        c.ArticleId,
			AuthorName:       c.AuthorName,
			Content:          c.Content,
			IpHash:           c.IpHash,
			IsHidden:         c.IsHidden,
			IsFlagged:        c.IsFlagged,
			ModerationScore:  c.ModerationScore,
			ModerationSource: domain.VerdictSource(c.ModerationSource),
			CreatedAt:        c.CreatedAt,
		}
		if c.ModerationReason.Valid {
			reason := c.ModerationReason.String
			comment.ModerationReason = &reason
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

func expectOneRow(result sql.Result, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get num of affected rows: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("comment %d: %w", id, ErrCommentNotFound)
	}
	if affected != 1 {
		return fmt.Errorf("unexpected number of affected rows, expected 1 got %d", affected)
	}

	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
