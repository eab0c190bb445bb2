// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/moderation.go -package=mocks . Classifier,FallbackClassifier,ModerationGate
package domain

import "context"

const (
	ReasonSpamKeywords  = "spam_keywords"
	ReasonToxicKeywords = "toxic_keywords"
	ReasonSpamAssassin  = "spamassassin"
)

const (
	MetadataAuthorName = "author_name"
	MetadataIpHash     = "ip_hash"
)

type ModerationRequest struct {
	Text     string
	Metadata map[string]string
}

// Verdict is the outcome of moderating a single comment. Whether the comment
// must be hidden is derived from the flags and cannot be set on its own.
type Verdict struct {
	IsSpam  bool
	IsToxic bool
	Score   float64
	Reason  *string
}

func (v *Verdict) ShouldHide() bool {
	return v.IsSpam || v.IsToxic
}

type VerdictSource string

const (
	SourceRemote   = VerdictSource("remote")
	SourceFallback = VerdictSource("fallback")
)

// ModerationResult always carries a verdict. RemoteError holds the classifier
// failure that caused the fallback path to be taken and is nil otherwise.
type ModerationResult struct {
	Verdict     *Verdict
	Source      VerdictSource
	RemoteError error
}

// Classifier is a primary classifier that may fail, e.g. because it lives on
// the other side of a network.
type Classifier interface {
	Classify(ctx context.Context, req *ModerationRequest) (*Verdict, error)
}

// FallbackClassifier must always produce a verdict.
type FallbackClassifier interface {
	Classify(text string) *Verdict
}

type ModerationGate interface {
	Evaluate(ctx context.Context, text string, metadata map[string]string) *ModerationResult
}
