// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bborbe/errors"
)

// ErrInvalidVersion is returned when a version string cannot be parsed.
var ErrInvalidVersion = stderrors.New("invalid version")

// VersionBump is the bump classification for a batch of commits.
type VersionBump string

const (
	MajorBump VersionBump = "major"
	MinorBump VersionBump = "minor"
	PatchBump VersionBump = "patch"
)

func (v VersionBump) String() string {
	return string(v)
}

// Version represents a semantic version with an optional pre-release.
// Values are immutable, Bump always returns a new Version.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease *PreRelease
}

// New creates a Version without a pre-release.
func New(major int, minor int, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// ParseVersion parses "1.2.3", "v1.2.3" or "v1.2.3-beta.1" into a Version.
// Exactly one leading 'v' or 'V' is stripped. The numeric core must have
// exactly three non-negative integer components.
func ParseVersion(ctx context.Context, tag string) (Version, error) {
	clean := tag
	if strings.HasPrefix(clean, "v") || strings.HasPrefix(clean, "V") {
		clean = clean[1:]
	}

	core := clean
	var suffix string
	hasSuffix := false
	if pos := strings.Index(clean, "-"); pos != -1 {
		core = clean[:pos]
		suffix = clean[pos+1:]
		hasSuffix = true
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, errors.Wrapf(
			ctx,
			ErrInvalidVersion,
			"'%s' - expected X.Y.Z or X.Y.Z-PRERELEASE",
			tag,
		)
	}

	major, err := parseComponent(ctx, "major", parts[0])
	if err != nil {
		return Version{}, err
	}
	minor, err := parseComponent(ctx, "minor", parts[1])
	if err != nil {
		return Version{}, err
	}
	patch, err := parseComponent(ctx, "patch", parts[2])
	if err != nil {
		return Version{}, err
	}

	version := Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
	if hasSuffix {
		prerelease, err := ParsePreRelease(ctx, suffix)
		if err != nil {
			return Version{}, err
		}
		version.PreRelease = &prerelease
	}
	return version, nil
}

func parseComponent(ctx context.Context, name string, value string) (int, error) {
	number, err := strconv.Atoi(value)
	if err != nil || number < 0 {
		return 0, errors.Wrapf(ctx, ErrInvalidVersion, "invalid %s version: %s", name, value)
	}
	return number, nil
}

// Bump returns the next version for the given bump type under the given
// pre-release policy.
//
// When the policy is active and the version already carries a pre-release,
// a patch bump does not advance the release line: the pre-release
// iteration is incremented instead (if auto increment is enabled).
// Any release-line bump restarts the pre-release progression at the
// policy's default identifier.
func (v Version) Bump(bump VersionBump, policy PreReleasePolicy) Version {
	if policy.Enabled && v.PreRelease != nil && bump == PatchBump {
		if !policy.AutoIncrement {
			return v
		}
		next := v.PreRelease.IncrementIteration()
		return Version{
			Major:      v.Major,
			Minor:      v.Minor,
			Patch:      v.Patch,
			PreRelease: &next,
		}
	}

	var next Version
	switch bump {
	case MajorBump:
		next = New(v.Major+1, 0, 0)
	case MinorBump:
		next = New(v.Major, v.Minor+1, 0)
	default:
		next = New(v.Major, v.Minor, v.Patch+1)
	}
	if policy.Enabled {
		prerelease := policy.defaultPreRelease()
		next.PreRelease = &prerelease
	}
	return next
}

// String returns "MAJOR.MINOR.PATCH" optionally followed by
// "-IDENTIFIER" or "-IDENTIFIER.ITERATION".
func (v Version) String() string {
	result := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != nil {
		result += "-" + v.PreRelease.String()
	}
	return result
}

// SameReleaseLine returns true if both versions share (major, minor, patch).
// Pre-release differences do not separate release lines.
func (v Version) SameReleaseLine(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor && v.Patch == other.Patch
}

// Less returns true if v is lower than other, comparing the release line only.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}
