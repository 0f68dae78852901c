// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"

	"github.com/bborbe/git-publish/pkg/conventional"
	"github.com/bborbe/git-publish/pkg/pattern"
	"github.com/bborbe/git-publish/pkg/semver"
)

// Config holds the git-publish configuration.
type Config struct {
	Remote              string              `yaml:"remote"`
	Branches            map[string]string   `yaml:"branches"`
	ConventionalCommits ConventionalCommits `yaml:"conventionalCommits"`
	PreRelease          PreRelease          `yaml:"prerelease"`
	Hooks               Hooks               `yaml:"hooks"`
}

// ConventionalCommits configures the commit classification vocabulary.
type ConventionalCommits struct {
	FeatureTypes    []string `yaml:"featureTypes"`
	FixTypes        []string `yaml:"fixTypes"`
	MajorKeywords   []string `yaml:"majorKeywords"`
	MinorKeywords   []string `yaml:"minorKeywords"`
	BreakingMarkers []string `yaml:"breakingMarkers"`
}

// ClassificationConfig converts to the analyzer's vocabulary.
func (c ConventionalCommits) ClassificationConfig() conventional.ClassificationConfig {
	return conventional.ClassificationConfig{
		FeatureTypes:    c.FeatureTypes,
		FixTypes:        c.FixTypes,
		MajorKeywords:   c.MajorKeywords,
		MinorKeywords:   c.MinorKeywords,
		BreakingMarkers: c.BreakingMarkers,
	}
}

// PreRelease configures the pre-release progression.
type PreRelease struct {
	Enabled           bool   `yaml:"enabled"`
	DefaultIdentifier string `yaml:"defaultIdentifier"`
	AutoIncrement     bool   `yaml:"autoIncrement"`
}

// Policy converts to the version model's pre-release policy.
func (p PreRelease) Policy() semver.PreReleasePolicy {
	return semver.PreReleasePolicy{
		Enabled:           p.Enabled,
		DefaultIdentifier: p.DefaultIdentifier,
		AutoIncrement:     p.AutoIncrement,
	}
}

// Hooks configures lifecycle hook scripts, executed in list order.
type Hooks struct {
	PreTagCreate  []string `yaml:"preTagCreate"`
	PostTagCreate []string `yaml:"postTagCreate"`
	PostPush      []string `yaml:"postPush"`
}

// Defaults returns a Config with all default values.
func Defaults() Config {
	classification := conventional.DefaultClassificationConfig()
	return Config{
		Remote: "origin",
		Branches: map[string]string{
			"main":    "v{version}",
			"develop": "d{version}",
		},
		ConventionalCommits: ConventionalCommits{
			FeatureTypes:    classification.FeatureTypes,
			FixTypes:        classification.FixTypes,
			MajorKeywords:   classification.MajorKeywords,
			MinorKeywords:   classification.MinorKeywords,
			BreakingMarkers: classification.BreakingMarkers,
		},
		PreRelease: PreRelease{
			Enabled:           false,
			DefaultIdentifier: "alpha",
			AutoIncrement:     true,
		},
	}
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("remote", validation.NotEmptyString(c.Remote)),
		validation.Name("branches", validation.HasValidationFunc(func(ctx context.Context) error {
			for branch, template := range c.Branches {
				if _, err := pattern.NewTagPattern(ctx, template); err != nil {
					return errors.Wrapf(ctx, err, "branch '%s'", branch)
				}
			}
			return nil
		})),
		validation.Name("prerelease", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.PreRelease.Enabled && c.PreRelease.DefaultIdentifier == "" {
				return errors.Errorf(ctx, "defaultIdentifier must be set when prerelease is enabled")
			}
			return nil
		})),
	}.Validate(ctx)
}

// TagPattern returns the tag pattern configured for the given branch.
func (c Config) TagPattern(ctx context.Context, branch string) (pattern.TagPattern, error) {
	template, ok := c.Branches[branch]
	if !ok {
		return pattern.TagPattern{}, errors.Errorf(
			ctx,
			"branch '%s' is not configured for tagging",
			branch,
		)
	}
	return pattern.NewTagPattern(ctx, template)
}

// BranchNames returns the configured branch names.
func (c Config) BranchNames() []string {
	names := make([]string, 0, len(c.Branches))
	for name := range c.Branches {
		names = append(names, name)
	}
	return names
}
