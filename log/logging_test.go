// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"trace", logrus.TraceLevel},
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"unknown", logrus.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLevel(tc.input))
		})
	}
}

func TestComponentFormatter_Format(t *testing.T) {
	formatter := newComponentFormatter(LOG_GATE)
	first, err := formatter.Format(logrus.WithField("source", "fallback"))
	assert.NoError(t, err)
	second, err := formatter.Format(logrus.WithField("source", "remote"))
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(first), "MG:\t"))
	assert.Contains(t, string(first), "source=fallback")
	assert.NotContains(t, string(first), "source=remote")
	assert.True(t, strings.HasPrefix(string(second), "MG:\t"))
	assert.Contains(t, string(second), "source=remote")
}

func TestLogger(t *testing.T) {
	InitLogging("error")
	for _, component := range components {
		assert.Equal(t, logrus.ErrorLevel, Logger(component).Level)
	}

	SetLogLevel("debug")
	assert.Equal(t, logrus.DebugLevel, Logger(LOG_PERSISTENCE).Level)

	buffer := &bytes.Buffer{}
	l := Logger(LOG_SUBMISSION)
	l.SetOutput(buffer)
	l.Debug("Comment submitted")
	assert.True(t, strings.HasPrefix(buffer.String(), "SU:\t"))

	assert.Panics(t, func() { Logger("XX") })
}
