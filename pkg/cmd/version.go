// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bborbe/git-publish/pkg/version"
)

//counterfeiter:generate -o ../../mocks/version-command.go --fake-name VersionCommand . VersionCommand

// VersionCommand prints the build version.
type VersionCommand interface {
	Run(ctx context.Context, args []string) error
}

// versionCommand implements VersionCommand.
type versionCommand struct {
	getter version.Getter
	out    io.Writer
}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand(getter version.Getter, out io.Writer) VersionCommand {
	return &versionCommand{
		getter: getter,
		out:    out,
	}
}

// Run prints the version.
func (v *versionCommand) Run(ctx context.Context, args []string) error {
	fmt.Fprintf(v.out, "git-publish %s\n", v.getter.Get())
	return nil
}
