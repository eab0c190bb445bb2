// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Config struct {
	Database string

	ModerationServiceUrl string
	ModerationTimeout    Duration

	SpamassassinHost      string
	SpamassassinThreshold float64

	// nil keeps the built-in keyword sets
	SpamKeywords  []string
	ToxicKeywords []string

	IpHashSalt    string
	DefaultAuthor string

	DryRun bool

	MetricsListen string

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:              "comments.db",
		ModerationTimeout:     Duration{5 * time.Second},
		SpamassassinThreshold: 5.0,
		DefaultAuthor:         "Anonymous",
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.DefaultAuthor, "DefaultAuthor must not be empty, set to the name shown for anonymous comments"); err != nil {
		return err
	}

	moderationServiceSet := len(strings.TrimSpace(c.ModerationServiceUrl)) > 0
	spamassassinSet := len(strings.TrimSpace(c.SpamassassinHost)) > 0
	if moderationServiceSet && spamassassinSet {
		return fmt.Errorf("ModerationServiceUrl and SpamassassinHost cannot be set at the same time")
	}
	if !moderationServiceSet && !spamassassinSet {
		return fmt.Errorf("set either ModerationServiceUrl or SpamassassinHost to use either classifier")
	}

	if moderationServiceSet {
		u, err := url.Parse(c.ModerationServiceUrl)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || len(u.Host) == 0 {
			return fmt.Errorf("ModerationServiceUrl must be an absolute http(s) url")
		}
	}

	if c.ModerationTimeout.Duration <= 0 {
		return fmt.Errorf("ModerationTimeout must be positive")
	}

	if c.SpamassassinThreshold <= 0 {
		return fmt.Errorf("SpamassassinThreshold must be positive")
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
