// SPDX-License-Identifier: GPL-3.0-or-later
package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CrawX/go-comment-assassin/domain"
	"github.com/stretchr/testify/assert"
)

func TestRemote_ClassifyWireFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/moderate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"text":"hello","metadata":{"author_name":"bob","ip_hash":"abc"}}`, string(body))

		_, _ = w.Write([]byte(`{"is_spam":true,"is_toxic":false,"score":0.9,"reason":"x"}`))
	}))
	defer server.Close()

	r := NewRemote(server.URL+"/", time.Second)
	verdict, err := r.Classify(context.Background(), &domain.ModerationRequest{
		Text:     "hello",
		Metadata: map[string]string{"author_name": "bob", "ip_hash": "abc"},
	})

	assert.NoError(t, err)
	assert.Equal(t, &domain.Verdict{IsSpam: true, Score: 0.9, Reason: s("x")}, verdict)
	assert.True(t, verdict.ShouldHide())
}

func TestRemote_ClassifyEmptyMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := map[string]interface{}{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, map[string]interface{}{}, request["metadata"])

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	verdict, err := NewRemote(server.URL, time.Second).Classify(context.Background(), &domain.ModerationRequest{Text: "hello"})

	assert.NoError(t, err)
	assert.Equal(t, &domain.Verdict{}, verdict)
	assert.False(t, verdict.ShouldHide())
}

func TestRemote_ClassifyResponses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected *domain.Verdict
		err      bool
	}{
		{"defaults", http.StatusOK, `{"is_toxic":true}`, &domain.Verdict{IsToxic: true}, false},
		{"nullreason", http.StatusOK, `{"score":0.1,"reason":null}`, &domain.Verdict{Score: 0.1}, false},
		{"emptyreason", http.StatusOK, `{"reason":""}`, &domain.Verdict{}, false},
		{"clamped", http.StatusOK, `{"is_spam":true,"score":7}`, &domain.Verdict{IsSpam: true, Score: 1}, false},
		{"created", http.StatusCreated, `{"is_spam":true}`, &domain.Verdict{IsSpam: true}, false},
		{"servererror", http.StatusInternalServerError, `{"is_spam":false}`, nil, true},
		{"notfound", http.StatusNotFound, ``, nil, true},
		{"malformed", http.StatusOK, `{"is_spam":`, nil, true},
		{"wrongtype", http.StatusOK, `{"is_spam":"yes"}`, nil, true},
		{"nullbody", http.StatusOK, "null", nil, true},
		{"array", http.StatusOK, "[]", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			verdict, err := NewRemote(server.URL, time.Second).Classify(context.Background(), &domain.ModerationRequest{Text: "t"})
			if tc.err {
				assert.Error(t, err)
				assert.Nil(t, verdict)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, verdict)
			}
		})
	}
}

func TestRemote_ClassifyTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	start := time.Now()
	verdict, err := NewRemote(server.URL, 50*time.Millisecond).Classify(context.Background(), &domain.ModerationRequest{Text: "t"})

	assert.Error(t, err)
	assert.Nil(t, verdict)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRemote_ClassifyUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	verdict, err := NewRemote(url, time.Second).Classify(context.Background(), &domain.ModerationRequest{Text: "t"})
	assert.Error(t, err)
	assert.Nil(t, verdict)
}

func s(val string) *string {
	return &val
}
