// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"

	"github.com/bborbe/errors"

	"github.com/bborbe/git-publish/pkg/config"
	"github.com/bborbe/git-publish/pkg/ui"
)

//counterfeiter:generate -o ../../mocks/list-command.go --fake-name ListCommand . ListCommand

// ListCommand prints the branches configured for tagging.
type ListCommand interface {
	Run(ctx context.Context, args []string) error
}

// listCommand implements ListCommand.
type listCommand struct {
	loader    config.Loader
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand.
func NewListCommand(loader config.Loader, formatter *ui.Formatter) ListCommand {
	return &listCommand{
		loader:    loader,
		formatter: formatter,
	}
}

// Run loads the configuration and prints the branch to pattern mapping.
func (l *listCommand) Run(ctx context.Context, args []string) error {
	var configPath string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				return errors.Errorf(ctx, "%s requires a value", args[i])
			}
			i++
			configPath = args[i]
		default:
			return errors.Errorf(ctx, "unknown argument '%s'", args[i])
		}
	}

	cfg, err := l.loader.Load(ctx, configPath)
	if err != nil {
		return errors.Wrap(ctx, err, "load config")
	}

	l.formatter.AvailableBranches(cfg.Branches)
	return nil
}
