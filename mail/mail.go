// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/CrawX/go-comment-assassin/domain"

	"github.com/emersion/go-message/mail"
)

const (
	OriginHashHeader = "X-Origin-Hash"
	anonymous        = "Anonymous"
	localAddress     = "comments@localhost"
)

// CommentMail wraps a comment into a plain text RFC 822 message so that mail
// oriented classifiers like SpamAssassin can look at it.
func CommentMail(req *domain.ModerationRequest, date time.Time) ([]byte, error) {
	author := req.Metadata[domain.MetadataAuthorName]
	if len(author) == 0 {
		author = anonymous
	}

	header := mail.Header{}
	header.SetDate(date)
	header.SetAddressList("From", []*mail.Address{{Name: author, Address: localAddress}})
	header.SetAddressList("To", []*mail.Address{{Name: "go-comment-assassin", Address: localAddress}})
	header.SetSubject("Comment by " + author)
	header.Set("Content-Type", "text/plain; charset=utf-8")
	if ipHash, ok := req.Metadata[domain.MetadataIpHash]; ok {
		header.Set(OriginHashHeader, ipHash)
	}

	buffer := &bytes.Buffer{}
	w, err := mail.CreateSingleInlineWriter(buffer, header)
	if err != nil {
		return nil, fmt.Errorf("could not create mail writer: %w", err)
	}
	_, err = io.WriteString(w, req.Text)
	if err != nil {
		return nil, fmt.Errorf("could not write comment text: %w", err)
	}
	err = w.Close()
	if err != nil {
		return nil, fmt.Errorf("could not close mail writer: %w", err)
	}

	return buffer.Bytes(), nil
}

func ShortText(text string) string {
	runes := []rune(text)
	if len(runes) > 30 {
		text = string(runes[:30]) + "..."
	}
	return text
}
