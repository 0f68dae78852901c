// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"

	"github.com/bborbe/errors"

	"github.com/bborbe/git-publish/pkg/config"
	"github.com/bborbe/git-publish/pkg/publisher"
)

//counterfeiter:generate -o ../../mocks/publish-command.go --fake-name PublishCommand . PublishCommand

// PublishCommand executes the publish subcommand.
type PublishCommand interface {
	Run(ctx context.Context, args []string) error
}

// PublisherBuilder creates a Publisher for a loaded configuration.
type PublisherBuilder func(ctx context.Context, cfg config.Config) (publisher.Publisher, error)

// publishCommand implements PublishCommand.
type publishCommand struct {
	loader  config.Loader
	builder PublisherBuilder
}

// NewPublishCommand creates a new PublishCommand.
func NewPublishCommand(loader config.Loader, builder PublisherBuilder) PublishCommand {
	return &publishCommand{
		loader:  loader,
		builder: builder,
	}
}

// Run parses flags, loads the configuration and executes the publish
// workflow.
func (p *publishCommand) Run(ctx context.Context, args []string) error {
	var req publisher.Request
	var configPath string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				return errors.Errorf(ctx, "%s requires a value", args[i])
			}
			i++
			configPath = args[i]
		case "--branch", "-b":
			if i+1 >= len(args) {
				return errors.Errorf(ctx, "%s requires a value", args[i])
			}
			i++
			req.Branch = args[i]
		case "--force", "-f":
			req.Force = true
		case "--dry-run", "-n":
			req.DryRun = true
		default:
			return errors.Errorf(ctx, "unknown argument '%s'", args[i])
		}
	}

	cfg, err := p.loader.Load(ctx, configPath)
	if err != nil {
		return errors.Wrap(ctx, err, "load config")
	}

	pub, err := p.builder(ctx, cfg)
	if err != nil {
		return errors.Wrap(ctx, err, "create publisher")
	}

	if _, err := pub.Publish(ctx, req); err != nil {
		return errors.Wrap(ctx, err, "publish")
	}
	return nil
}
