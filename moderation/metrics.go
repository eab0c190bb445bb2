// SPDX-License-Identifier: GPL-3.0-or-later
package moderation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var verdictCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "comment_moderation_verdicts",
	Help: "Number of moderation verdicts, by source and whether the comment gets hidden",
}, []string{"source", "hidden"})

var classifierErrorCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "comment_moderation_classifier_errors",
	Help: "Number of failed classifier calls that were answered by the fallback heuristic",
})

var classifierDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "comment_moderation_classifier_duration_seconds",
	Help:    "Duration of classifier calls, including failed ones",
	Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
})
