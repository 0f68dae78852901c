// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

const (
	maxDisplayedCommits = 10
	maxSubjectLength    = 60
)

// Formatter writes user-facing release output.
type Formatter struct {
	out    io.Writer
	errOut io.Writer

	success *color.Color
	warning *color.Color
	failure *color.Color
	accent  *color.Color
}

// NewFormatter creates a Formatter writing to the given streams.
func NewFormatter(out io.Writer, errOut io.Writer) *Formatter {
	return &Formatter{
		out:     out,
		errOut:  errOut,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		accent:  color.New(color.FgCyan, color.Bold),
	}
}

// Status prints a neutral progress line.
func (f *Formatter) Status(format string, args ...interface{}) {
	fmt.Fprintf(f.out, format+"\n", args...)
}

// Success prints a green confirmation line.
func (f *Formatter) Success(format string, args ...interface{}) {
	f.success.Fprintf(f.out, format+"\n", args...)
}

// Warning prints a yellow warning line to stderr.
func (f *Formatter) Warning(format string, args ...interface{}) {
	f.warning.Fprintf(f.errOut, format+"\n", args...)
}

// Error prints a red error line to stderr.
func (f *Formatter) Error(format string, args ...interface{}) {
	f.failure.Fprintf(f.errOut, format+"\n", args...)
}

// CommitAnalysis prints the commits considered for the bump decision,
// capped to keep the output readable.
func (f *Formatter) CommitAnalysis(messages []string, bump string) {
	fmt.Fprintf(f.out, "Analyzing %d commit(s):\n", len(messages))
	for i, message := range messages {
		if i == maxDisplayedCommits {
			fmt.Fprintf(f.out, "  ... and %d more\n", len(messages)-maxDisplayedCommits)
			break
		}
		fmt.Fprintf(f.out, "  %s\n", subject(message))
	}
	fmt.Fprintf(f.out, "Version bump: %s\n", f.accent.Sprint(bump))
}

// ProposedTag prints the tag about to be created.
func (f *Formatter) ProposedTag(currentTag string, nextTag string) {
	if currentTag == "" {
		fmt.Fprintf(f.out, "No previous release found\n")
	} else {
		fmt.Fprintf(f.out, "Current release: %s\n", currentTag)
	}
	fmt.Fprintf(f.out, "Next release:    %s\n", f.accent.Sprint(nextTag))
}

// AvailableBranches prints the branches configured for tagging, sorted.
func (f *Formatter) AvailableBranches(branches map[string]string) {
	names := make([]string, 0, len(branches))
	for name := range branches {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(f.out, "Configured branches:\n")
	for _, name := range names {
		fmt.Fprintf(f.out, "  %s -> %s\n", name, branches[name])
	}
}

// ManualPushInstruction tells the user how to push a tag that could not
// be pushed automatically.
func (f *Formatter) ManualPushInstruction(remote string, tag string) {
	f.warning.Fprintf(f.errOut, "Tag '%s' was created locally but could not be pushed.\n", tag)
	fmt.Fprintf(f.errOut, "Push it manually with: git push %s %s\n", remote, tag)
}

// subject extracts the first line of a commit message, truncated.
func subject(message string) string {
	line := message
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if len(line) > maxSubjectLength {
		return line[:maxSubjectLength-3] + "..."
	}
	return line
}
