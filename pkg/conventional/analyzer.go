// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conventional

import (
	"strings"

	"github.com/bborbe/collection"

	"github.com/bborbe/git-publish/pkg/semver"
)

// ClassificationConfig is the commit vocabulary used by the Analyzer.
// It is passed in explicitly so the analyzer stays a pure function over
// its inputs.
type ClassificationConfig struct {
	FeatureTypes    []string
	FixTypes        []string
	MajorKeywords   []string
	MinorKeywords   []string
	BreakingMarkers []string
}

// DefaultClassificationConfig returns the default commit vocabulary.
func DefaultClassificationConfig() ClassificationConfig {
	return ClassificationConfig{
		FeatureTypes:    []string{"feat", "feature"},
		FixTypes:        []string{"fix", "perf", "refactor"},
		MajorKeywords:   []string{},
		MinorKeywords:   []string{},
		BreakingMarkers: defaultBreakingMarkers,
	}
}

// Analyzer decides the version bump for a batch of commit messages.
type Analyzer struct {
	config ClassificationConfig
}

// NewAnalyzer creates an Analyzer with the given vocabulary.
func NewAnalyzer(config ClassificationConfig) *Analyzer {
	return &Analyzer{
		config: config,
	}
}

// Analyze parses every message and returns the bump decision:
// breaking change -> major, feature type -> minor, fix type -> patch,
// otherwise patch. It raises no errors; an empty message list is valid
// input and yields a patch bump.
func (a *Analyzer) Analyze(messages []string) semver.VersionBump {
	var hasBreaking bool
	var hasFeature bool
	var hasFix bool

	for _, message := range messages {
		parsed := ParseCommit(message)

		if parsed.IsBreakingChange || a.containsConfiguredMarker(message) {
			hasBreaking = true
		}
		if a.containsKeyword(message, a.config.MajorKeywords) {
			hasBreaking = true
		}
		if collection.Contains(a.config.FeatureTypes, parsed.Type) {
			hasFeature = true
		}
		if a.containsKeyword(message, a.config.MinorKeywords) {
			hasFeature = true
		}
		if collection.Contains(a.config.FixTypes, parsed.Type) {
			hasFix = true
		}
	}

	switch {
	case hasBreaking:
		return semver.MajorBump
	case hasFeature:
		return semver.MinorBump
	case hasFix:
		return semver.PatchBump
	default:
		// no conventional commits detected, still at least a patch release
		return semver.PatchBump
	}
}

func (a *Analyzer) containsConfiguredMarker(message string) bool {
	for _, marker := range a.config.BreakingMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}

// containsKeyword reports whether the lowercased message contains one of
// the configured keywords.
func (a *Analyzer) containsKeyword(message string, keywords []string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
