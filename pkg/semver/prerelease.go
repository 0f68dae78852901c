// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	"strconv"
	"strings"

	"github.com/bborbe/errors"
)

// PreReleaseKind is the pre-release identifier. Alpha, beta and rc are
// recognized case-insensitively and canonicalized; any other
// alphanumeric-hyphen token is a custom identifier kept as written.
type PreReleaseKind string

const (
	PreReleaseAlpha            PreReleaseKind = "alpha"
	PreReleaseBeta             PreReleaseKind = "beta"
	PreReleaseReleaseCandidate PreReleaseKind = "rc"
)

func (p PreReleaseKind) String() string {
	return string(p)
}

// ParsePreReleaseKind parses a pre-release identifier token.
// Accepts "alpha"/"a", "beta"/"b", "rc" in any case, or a custom token
// containing only letters, digits and hyphens.
func ParsePreReleaseKind(ctx context.Context, value string) (PreReleaseKind, error) {
	switch strings.ToLower(value) {
	case "alpha", "a":
		return PreReleaseAlpha, nil
	case "beta", "b":
		return PreReleaseBeta, nil
	case "rc":
		return PreReleaseReleaseCandidate, nil
	}
	for _, c := range value {
		if !isAlphaNumeric(c) && c != '-' {
			return "", errors.Wrapf(ctx, ErrInvalidVersion, "invalid pre-release identifier: '%s'", value)
		}
	}
	return PreReleaseKind(value), nil
}

func isAlphaNumeric(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// PreRelease is a pre-release identifier with an optional iteration counter.
type PreRelease struct {
	Kind      PreReleaseKind
	Iteration *int
}

// ParsePreRelease parses "alpha", "beta.1", "rc.2" or "staging.5".
// The suffix is split on the first dot into identifier and iteration.
func ParsePreRelease(ctx context.Context, value string) (PreRelease, error) {
	if value == "" {
		return PreRelease{}, errors.Wrapf(ctx, ErrInvalidVersion, "empty pre-release identifier")
	}

	token := value
	var iteration *int
	if pos := strings.Index(value, "."); pos != -1 {
		token = value[:pos]
		number, err := strconv.Atoi(value[pos+1:])
		if err != nil || number < 0 {
			return PreRelease{}, errors.Wrapf(
				ctx,
				ErrInvalidVersion,
				"invalid iteration number: '%s'",
				value[pos+1:],
			)
		}
		iteration = &number
	}

	kind, err := ParsePreReleaseKind(ctx, token)
	if err != nil {
		return PreRelease{}, err
	}
	return PreRelease{
		Kind:      kind,
		Iteration: iteration,
	}, nil
}

// IncrementIteration returns a new PreRelease with the iteration advanced.
// A missing iteration becomes 1.
func (p PreRelease) IncrementIteration() PreRelease {
	next := 1
	if p.Iteration != nil {
		next = *p.Iteration + 1
	}
	return PreRelease{
		Kind:      p.Kind,
		Iteration: &next,
	}
}

func (p PreRelease) String() string {
	result := p.Kind.String()
	if p.Iteration != nil {
		result += "." + strconv.Itoa(*p.Iteration)
	}
	return result
}

// PreReleasePolicy controls how Bump handles pre-release progression.
type PreReleasePolicy struct {
	Enabled           bool
	DefaultIdentifier string
	AutoIncrement     bool
}

func (p PreReleasePolicy) defaultPreRelease() PreRelease {
	kind, err := ParsePreReleaseKind(context.Background(), p.DefaultIdentifier)
	if err != nil || p.DefaultIdentifier == "" {
		kind = PreReleaseAlpha
	}
	return PreRelease{Kind: kind}
}
