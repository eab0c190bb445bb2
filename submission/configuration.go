// SPDX-License-Identifier: GPL-3.0-or-later
package submission

import (
	"fmt"
	"strings"
)

const DefaultAuthor = "Anonymous"

type ConfigFunc func(c *configuration) error

// DryRun evaluates comments without persisting them.
func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

func IpHashSalt(salt string) ConfigFunc {
	return func(c *configuration) error {
		c.IpHashSalt = salt
		return nil
	}
}

func DefaultAuthorName(name string) ConfigFunc {
	return func(c *configuration) error {
		if len(strings.TrimSpace(name)) == 0 {
			return fmt.Errorf("DefaultAuthorName cannot be empty")
		}

		c.DefaultAuthor = name
		return nil
	}
}

func Concurrency(concurrency int) ConfigFunc {
	return func(c *configuration) error {
		if concurrency < 1 {
			return fmt.Errorf("Concurrency must be at least 1")
		}

		c.Concurrency = concurrency
		return nil
	}
}

type configuration struct {
	DryRun bool

	IpHashSalt    string
	DefaultAuthor string

	Concurrency int
}
