// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"

	"github.com/bborbe/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file looked up in the current directory.
const DefaultConfigPath = ".git-publish.yaml"

// Loader loads configuration from a file.
//
//counterfeiter:generate -o ../../mocks/config-loader.go --fake-name ConfigLoader . Loader
type Loader interface {
	Load(ctx context.Context, path string) (Config, error)
}

// fileLoader implements Loader by reading from a file.
type fileLoader struct{}

// NewLoader creates a Loader that reads YAML config files.
func NewLoader() Loader {
	return &fileLoader{}
}

// partialConfig is used for YAML unmarshaling to distinguish between
// explicitly set zero values and missing fields.
type partialConfig struct {
	Remote              *string                     `yaml:"remote"`
	Branches            *map[string]string          `yaml:"branches"`
	ConventionalCommits *partialConventionalCommits `yaml:"conventionalCommits"`
	PreRelease          *partialPreRelease          `yaml:"prerelease"`
	Hooks               *Hooks                      `yaml:"hooks"`
}

type partialConventionalCommits struct {
	FeatureTypes    *[]string `yaml:"featureTypes"`
	FixTypes        *[]string `yaml:"fixTypes"`
	MajorKeywords   *[]string `yaml:"majorKeywords"`
	MinorKeywords   *[]string `yaml:"minorKeywords"`
	BreakingMarkers *[]string `yaml:"breakingMarkers"`
}

type partialPreRelease struct {
	Enabled           *bool   `yaml:"enabled"`
	DefaultIdentifier *string `yaml:"defaultIdentifier"`
	AutoIncrement     *bool   `yaml:"autoIncrement"`
}

// Load reads the config file, merges with defaults, validates, and
// returns the config. A missing file at the default path yields the
// defaults; an explicitly given path must exist.
func (l *fileLoader) Load(ctx context.Context, path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	// #nosec G304 -- path is the config file the user asked for
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, errors.Wrap(ctx, err, "read config file")
	}

	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return Config{}, errors.Wrap(ctx, err, "parse config file")
	}

	mergePartial(&cfg, partial)

	if err := cfg.Validate(ctx); err != nil {
		return Config{}, errors.Wrap(ctx, err, "validate config")
	}

	return cfg, nil
}

// mergePartial merges non-nil values onto the defaults.
func mergePartial(cfg *Config, partial partialConfig) {
	if partial.Remote != nil {
		cfg.Remote = *partial.Remote
	}
	if partial.Branches != nil {
		cfg.Branches = *partial.Branches
	}
	if partial.ConventionalCommits != nil {
		cc := partial.ConventionalCommits
		if cc.FeatureTypes != nil {
			cfg.ConventionalCommits.FeatureTypes = *cc.FeatureTypes
		}
		if cc.FixTypes != nil {
			cfg.ConventionalCommits.FixTypes = *cc.FixTypes
		}
		if cc.MajorKeywords != nil {
			cfg.ConventionalCommits.MajorKeywords = *cc.MajorKeywords
		}
		if cc.MinorKeywords != nil {
			cfg.ConventionalCommits.MinorKeywords = *cc.MinorKeywords
		}
		if cc.BreakingMarkers != nil {
			cfg.ConventionalCommits.BreakingMarkers = *cc.BreakingMarkers
		}
	}
	if partial.PreRelease != nil {
		pr := partial.PreRelease
		if pr.Enabled != nil {
			cfg.PreRelease.Enabled = *pr.Enabled
		}
		if pr.DefaultIdentifier != nil {
			cfg.PreRelease.DefaultIdentifier = *pr.DefaultIdentifier
		}
		if pr.AutoIncrement != nil {
			cfg.PreRelease.AutoIncrement = *pr.AutoIncrement
		}
	}
	if partial.Hooks != nil {
		cfg.Hooks = *partial.Hooks
	}
}
