// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conventional

import (
	"regexp"
	"strings"
)

var (
	commitWithScopeRegexp = regexp.MustCompile(`^([a-z]+)\(([^)]+)\)(!)?:\s*(.*)`)
	commitRegexp          = regexp.MustCompile(`^([a-z]+)(!)?:\s*(.*)`)
)

// defaultBreakingMarkers are the footer markers that flag a breaking
// change regardless of the subject line. Matching is case-sensitive.
var defaultBreakingMarkers = []string{
	"BREAKING CHANGE:",
	"BREAKING-CHANGE:",
}

// ParsedCommit is the structured form of one commit message.
// Scope is empty when the message carries no scope.
type ParsedCommit struct {
	Type             string
	Scope            string
	Description      string
	IsBreakingChange bool
}

// ParseCommit parses a commit message according to the conventional
// commits grammar. It never fails: messages that match no known format
// degrade to type "chore" with the whole message as description.
//
// Supported formats, tried in order:
//   - type(scope)!: description
//   - type(scope): description
//   - type!: description
//   - type: description
func ParseCommit(message string) ParsedCommit {
	if matches := commitWithScopeRegexp.FindStringSubmatch(message); matches != nil {
		return ParsedCommit{
			Type:             matches[1],
			Scope:            matches[2],
			Description:      matches[4],
			IsBreakingChange: matches[3] == "!" || containsBreakingMarker(message),
		}
	}

	if matches := commitRegexp.FindStringSubmatch(message); matches != nil {
		return ParsedCommit{
			Type:             matches[1],
			Description:      matches[3],
			IsBreakingChange: matches[2] == "!" || containsBreakingMarker(message),
		}
	}

	return ParsedCommit{
		Type:             "chore",
		Description:      message,
		IsBreakingChange: containsBreakingMarker(message),
	}
}

func containsBreakingMarker(message string) bool {
	for _, marker := range defaultBreakingMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
