// SPDX-License-Identifier: GPL-3.0-or-later
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CrawX/go-comment-assassin/domain"

	"github.com/hashicorp/go-cleanhttp"
)

const DefaultTimeout = 5 * time.Second

// responses larger than this are not a moderation verdict
const maxResponseSize = 1 << 20

// Remote talks to an external moderation service over HTTP/JSON.
type Remote struct {
	client *http.Client
	host   string
}

func NewRemote(host string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout

	return &Remote{
		client: client,
		host:   strings.TrimSuffix(host, "/"),
	}
}

type moderateRequest struct {
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata"`
}

type moderateResponse struct {
	IsSpam  bool     `json:"is_spam"`
	IsToxic bool     `json:"is_toxic"`
	Score   *float64 `json:"score"`
	Reason  *string  `json:"reason"`
}

func (r *Remote) Classify(ctx context.Context, req *domain.ModerationRequest) (*domain.Verdict, error) {
	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	body, err := json.Marshal(&moderateRequest{Text: req.Text, Metadata: metadata})
	if err != nil {
		return nil, fmt.Errorf("could not serialize moderation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.host+"/moderate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create moderation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("could not send request to moderation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from moderation service, expected 2xx", resp.StatusCode)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("could not read moderation response: %w", err)
	}

	var response *moderateResponse
	err = json.Unmarshal(respBody, &response)
	if err != nil {
		return nil, fmt.Errorf("could not deserialize moderation response: %w", err)
	}
	if response == nil {
		return nil, fmt.Errorf("moderation response is not a json object")
	}

	return response.verdict(), nil
}

func (mr *moderateResponse) verdict() *domain.Verdict {
	verdict := &domain.Verdict{
		IsSpam:  mr.IsSpam,
		IsToxic: mr.IsToxic,
	}
	if mr.Score != nil {
		verdict.Score = clamp(*mr.Score)
	}
	if mr.Reason != nil && len(*mr.Reason) > 0 {
		reason := *mr.Reason
		verdict.Reason = &reason
	}
	return verdict
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
