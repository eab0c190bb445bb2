// SPDX-License-Identifier: GPL-3.0-or-later
package moderation

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultTimeout = 5 * time.Second

type ConfigFunc func(c *configuration) error

// Timeout bounds the single classifier call made per evaluation.
func Timeout(timeout time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if timeout <= 0 {
			return fmt.Errorf("Timeout must be positive")
		}

		c.Timeout = timeout
		return nil
	}
}

func Logger(logger *logrus.Logger) ConfigFunc {
	return func(c *configuration) error {
		if logger == nil {
			return fmt.Errorf("Logger cannot be nil")
		}

		c.Logger = logger
		return nil
	}
}

type configuration struct {
	Timeout time.Duration
	Logger  *logrus.Logger
}
