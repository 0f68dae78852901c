// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"github.com/bborbe/git-publish/pkg/conventional"
	"github.com/bborbe/git-publish/pkg/semver"
)

// BaselineVersion is the version used when no prior release exists.
// It is final: the computed bump is not applied on top of it.
var BaselineVersion = semver.New(0, 1, 0)

// Resolver computes the next version from the current version and the
// commit messages since the last release.
type Resolver struct {
	analyzer *conventional.Analyzer
	policy   semver.PreReleasePolicy
}

// NewResolver creates a Resolver.
func NewResolver(analyzer *conventional.Analyzer, policy semver.PreReleasePolicy) *Resolver {
	return &Resolver{
		analyzer: analyzer,
		policy:   policy,
	}
}

// Resolve returns the next version together with the bump decision.
// A nil current version yields the baseline; the caller is responsible
// for telling the user that no prior tag was found.
func (r *Resolver) Resolve(current *semver.Version, messages []string) (semver.Version, semver.VersionBump) {
	bump := r.analyzer.Analyze(messages)
	if current == nil {
		return BaselineVersion, bump
	}
	return current.Bump(bump, r.policy), bump
}

// ResolveNextVersion returns only the next version.
func (r *Resolver) ResolveNextVersion(current *semver.Version, messages []string) semver.Version {
	next, _ := r.Resolve(current, messages)
	return next
}
