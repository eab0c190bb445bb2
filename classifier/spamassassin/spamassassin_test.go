// SPDX-License-Identifier: GPL-3.0-or-later
package spamassassin

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/CrawX/go-comment-assassin/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected float64
	}{
		{"negative", -2.1, 0},
		{"zero", 0, 0},
		{"threshold", 5, 0.5},
		{"high", 15, 0.75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, normalizeScore(tc.score, 5), 0.0001)
		})
	}
}

func TestVerdict(t *testing.T) {
	reason := domain.ReasonSpamAssassin

	spam := verdict(true, 5, 5)
	assert.Equal(t, &domain.Verdict{IsSpam: true, Score: 0.5, Reason: &reason}, spam)
	assert.True(t, spam.ShouldHide())

	ham := verdict(false, -1, 5)
	assert.Equal(t, &domain.Verdict{}, ham)
	assert.False(t, ham.ShouldHide())
}

func TestSpamAssassin_ClassifyUnreachable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	addr := listener.Addr().String()
	assert.NoError(t, listener.Close())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	v, err := NewSpamassassin(addr, 0).Classify(ctx, &domain.ModerationRequest{Text: "hello"})
	assert.Error(t, err)
	assert.Nil(t, v)
}

// fakeSpamd answers a single spamc request with the given Spam header and
// hands the raw request to the returned channel.
func fakeSpamd(t *testing.T, spamHeader string) (string, <-chan string) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	requests := make(chan string, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			close(requests)
			return
		}
		defer conn.Close()
		_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

		reader := bufio.NewReader(conn)
		request := &strings.Builder{}
		contentLength := -1
		for {
			line, err := reader.ReadString('\n')
			request.WriteString(line)
			if err != nil || line == "\r\n" || line == "\n" {
				break
			}
			name, value, found := strings.Cut(line, ":")
			if found && strings.EqualFold(strings.TrimSpace(name), "Content-length") {
				contentLength, _ = strconv.Atoi(strings.TrimSpace(value))
			}
		}

		var body []byte
		if contentLength >= 0 {
			body = make([]byte, contentLength)
			_, _ = io.ReadFull(reader, body)
		} else {
			body, _ = io.ReadAll(reader)
		}
		request.Write(body)
		requests <- request.String()

		_, _ = fmt.Fprintf(conn, "SPAMD/1.1 0 EX_OK\r\nSpam: %s\r\nContent-length: %d\r\n\r\n%s", spamHeader, len(body), body)
	}()

	return listener.Addr().String(), requests
}

func TestSpamAssassin_Classify(t *testing.T) {
	tests := []struct {
		name       string
		spamHeader string
		expected   *domain.Verdict
	}{
		{"spam", "True ; 7.0 / 5.0", &domain.Verdict{IsSpam: true, Score: 7.0 / 12.0, Reason: s(domain.ReasonSpamAssassin)}},
		{"ham", "False ; 1.5 / 5.0", &domain.Verdict{Score: 1.5 / 6.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			addr, requests := fakeSpamd(t, tc.spamHeader)

			sa := NewSpamassassin(addr, 5)
			sa.now = func() time.Time { return time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC) }

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			v, err := sa.Classify(ctx, &domain.ModerationRequest{
				Text:     "Great article, thanks!",
				Metadata: map[string]string{domain.MetadataAuthorName: "Alice", domain.MetadataIpHash: "abc123"},
			})
			assert.NoError(t, err)
			if assert.NotNil(t, v) {
				assert.Equal(t, tc.expected.IsSpam, v.IsSpam)
				assert.False(t, v.IsToxic)
				assert.InDelta(t, tc.expected.Score, v.Score, 0.0001)
				assert.Equal(t, tc.expected.Reason, v.Reason)
			}

			request := <-requests
			assert.True(t, strings.HasPrefix(request, "PROCESS SPAMC/"))
			assert.Contains(t, request, "Great article, thanks!")
			assert.Contains(t, request, "X-Origin-Hash: abc123")
		})
	}
}

func s(val string) *string {
	return &val
}
