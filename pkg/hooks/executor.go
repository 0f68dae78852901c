// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hooks

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/bborbe/errors"
	"github.com/bborbe/run"
	"github.com/sirupsen/logrus"
)

// scriptExecutor implements Executor by running scripts as child
// processes with the hook environment appended.
type scriptExecutor struct {
	workingDirectory string
}

// NewExecutor creates an Executor that runs hook scripts relative to the
// given working directory.
func NewExecutor(workingDirectory string) Executor {
	return &scriptExecutor{
		workingDirectory: workingDirectory,
	}
}

// ExecuteAll runs the scripts sequentially in list order and stops at
// the first failure.
func (s *scriptExecutor) ExecuteAll(
	ctx context.Context,
	hookType HookType,
	scripts []string,
	hookCtx HookContext,
) error {
	funcs := make([]run.Func, 0, len(scripts))
	for _, script := range scripts {
		script := script
		funcs = append(funcs, func(ctx context.Context) error {
			return s.execute(ctx, hookType, script, hookCtx)
		})
	}
	return run.Sequential(ctx, funcs...)
}

func (s *scriptExecutor) execute(
	ctx context.Context,
	hookType HookType,
	script string,
	hookCtx HookContext,
) error {
	logrus.WithFields(logrus.Fields{
		"hook":   hookType,
		"script": script,
	}).Debug("running hook script")

	if _, err := os.Stat(script); err != nil {
		return errors.Wrapf(ctx, err, "%s hook script '%s' not found", hookType, script)
	}

	var output bytes.Buffer
	// #nosec G204 -- the script path comes from the user's own config
	cmd := exec.CommandContext(ctx, script)
	cmd.Dir = s.workingDirectory
	cmd.Env = append(os.Environ(), hookCtx.Env()...)
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(
			ctx,
			err,
			"%s hook script '%s' failed: %s",
			hookType,
			script,
			output.String(),
		)
	}
	return nil
}
