// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"context"
	"os"

	"github.com/bborbe/errors"

	"github.com/bborbe/git-publish/pkg/cmd"
	"github.com/bborbe/git-publish/pkg/config"
	"github.com/bborbe/git-publish/pkg/git"
	"github.com/bborbe/git-publish/pkg/hooks"
	"github.com/bborbe/git-publish/pkg/publisher"
	"github.com/bborbe/git-publish/pkg/ui"
	"github.com/bborbe/git-publish/pkg/version"
)

// Factory wires the application together.
type Factory struct {
	workingDirectory string
}

// New creates a new Factory rooted at the current working directory.
func New() *Factory {
	workingDirectory, err := os.Getwd()
	if err != nil {
		workingDirectory = "."
	}
	return &Factory{
		workingDirectory: workingDirectory,
	}
}

// SetWorkingDirectory overrides the working directory (useful for testing).
func (f *Factory) SetWorkingDirectory(dir string) {
	f.workingDirectory = dir
}

// Run dispatches the command line arguments to a subcommand. Without a
// subcommand the publish workflow runs.
func (f *Factory) Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			return f.CreateVersionCommand().Run(ctx, args[1:])
		case "list", "--list", "-l":
			return f.CreateListCommand().Run(ctx, args[1:])
		case "publish":
			args = args[1:]
		}
	}
	return f.CreatePublishCommand().Run(ctx, args)
}

// CreatePublishCommand creates the publish subcommand.
func (f *Factory) CreatePublishCommand() cmd.PublishCommand {
	return cmd.NewPublishCommand(
		config.NewLoader(),
		f.createPublisher,
	)
}

// CreateListCommand creates the list subcommand.
func (f *Factory) CreateListCommand() cmd.ListCommand {
	return cmd.NewListCommand(
		config.NewLoader(),
		f.CreateFormatter(),
	)
}

// CreateVersionCommand creates the version subcommand.
func (f *Factory) CreateVersionCommand() cmd.VersionCommand {
	return cmd.NewVersionCommand(
		version.NewGetter(version.Version),
		os.Stdout,
	)
}

// CreateFormatter creates the output formatter.
func (f *Factory) CreateFormatter() *ui.Formatter {
	return ui.NewFormatter(os.Stdout, os.Stderr)
}

// createPublisher creates a Publisher bound to the repository at the
// working directory.
func (f *Factory) createPublisher(
	ctx context.Context,
	cfg config.Config,
) (publisher.Publisher, error) {
	repo, err := git.Open(ctx, f.workingDirectory)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "open repository")
	}
	return publisher.NewPublisher(
		cfg,
		repo,
		hooks.NewExecutor(f.workingDirectory),
		f.CreateFormatter(),
		ui.NewConfirmer(os.Stdin, os.Stdout),
	), nil
}
