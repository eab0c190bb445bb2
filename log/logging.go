// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	LOG_MAIN        = "MA"
	LOG_GATE        = "MG"
	LOG_CLASSIFIER  = "CL"
	LOG_PERSISTENCE = "PI"
	LOG_SUBMISSION  = "SU"
)

var components = []string{LOG_MAIN, LOG_GATE, LOG_CLASSIFIER, LOG_PERSISTENCE, LOG_SUBMISSION}

var (
	mu      sync.RWMutex
	loggers map[string]*logrus.Logger
)

// componentFormatter renders entries with logrus' text formatter and tags
// every line with the component it came from.
type componentFormatter struct {
	text   *logrus.TextFormatter
	prefix []byte
}

func newComponentFormatter(component string) *componentFormatter {
	return &componentFormatter{
		text: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			DisableColors:   runtime.GOOS == "windows",
		},
		prefix: []byte(fmt.Sprintf("%s:\t", component)),
	}
}

func (f *componentFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	line, err := f.text.Format(entry)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, f.prefix...), line...), nil
}

// parseLevel falls back to info for anything logrus does not know.
func parseLevel(loglevel string) logrus.Level {
	level, err := logrus.ParseLevel(loglevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// InitLogging (re)creates one logger per component, all at the given level.
func InitLogging(loglevel string) {
	level := parseLevel(loglevel)

	mu.Lock()
	defer mu.Unlock()
	loggers = make(map[string]*logrus.Logger, len(components))
	for _, component := range components {
		l := logrus.New()
		l.SetLevel(level)
		l.SetFormatter(newComponentFormatter(component))
		loggers[component] = l
	}
}

// SetLogLevel changes the level of all component loggers at once.
func SetLogLevel(loglevel string) {
	level := parseLevel(loglevel)

	mu.RLock()
	defer mu.RUnlock()
	for _, l := range loggers {
		l.SetLevel(level)
	}
}

// Logger returns the logger of a component, initializing logging at info
// level if nobody did so yet. Unknown components are a programming error.
func Logger(component string) *logrus.Logger {
	mu.RLock()
	initialized := loggers != nil
	mu.RUnlock()
	if !initialized {
		InitLogging("info")
	}

	mu.RLock()
	l, ok := loggers[component]
	mu.RUnlock()
	if !ok {
		panic("Logger " + component + " unknown")
	}
	return l
}
