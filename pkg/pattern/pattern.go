// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"context"
	stderrors "errors"
	"regexp"
	"strings"

	"github.com/bborbe/errors"
)

// ErrMissingPlaceholder is returned when a template lacks the {version}
// placeholder. This is a configuration error, rejected at construction.
var ErrMissingPlaceholder = stderrors.New("tag pattern must contain {version} placeholder")

// ErrInvalidPattern is returned when the generated matching regexp is
// invalid. This indicates a logic defect, not bad user input.
var ErrInvalidPattern = stderrors.New("invalid tag pattern")

const versionPlaceholder = "{version}"

// versionRegexp matches a semver-shaped version with an optional
// pre-release suffix inside a tag string.
const versionRegexp = `\d+\.\d+\.\d+(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?`

// TagPattern maps a template like "v{version}" to and from literal tag
// strings.
type TagPattern struct {
	template string
}

// NewTagPattern validates the template and creates a TagPattern.
func NewTagPattern(ctx context.Context, template string) (TagPattern, error) {
	if !strings.Contains(template, versionPlaceholder) {
		return TagPattern{}, errors.Wrapf(ctx, ErrMissingPlaceholder, "template '%s'", template)
	}
	return TagPattern{
		template: template,
	}, nil
}

// Template returns the raw template string.
func (t TagPattern) Template() string {
	return t.template
}

// Format substitutes the version string into the template.
// The version string's shape is not validated.
func (t TagPattern) Format(version string) string {
	return strings.Replace(t.template, versionPlaceholder, version, 1)
}

// Matches reports whether the tag fully matches the template with a
// semver-shaped version in place of the placeholder.
func (t TagPattern) Matches(ctx context.Context, tag string) (bool, error) {
	re, err := t.compile(ctx, versionRegexp)
	if err != nil {
		return false, err
	}
	return re.MatchString(tag), nil
}

// Extract returns the version substring of a tag that matches the
// template. Returns ErrInvalidPattern wrapped errors on non-matching tags.
func (t TagPattern) Extract(ctx context.Context, tag string) (string, error) {
	re, err := t.compile(ctx, "("+versionRegexp+")")
	if err != nil {
		return "", err
	}
	matches := re.FindStringSubmatch(tag)
	if matches == nil {
		return "", errors.Wrapf(
			ctx,
			ErrInvalidPattern,
			"tag '%s' does not match pattern '%s'",
			tag,
			t.template,
		)
	}
	return matches[1], nil
}

func (t TagPattern) compile(ctx context.Context, placeholder string) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(t.template)
	expr := strings.Replace(escaped, regexp.QuoteMeta(versionPlaceholder), placeholder, 1)
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, errors.Wrapf(ctx, ErrInvalidPattern, "compile '%s': %v", expr, err)
	}
	return re, nil
}
