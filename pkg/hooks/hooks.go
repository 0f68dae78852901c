// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hooks

import (
	"context"
	"fmt"
)

// HookType identifies a lifecycle hook point.
type HookType string

const (
	HookPreTagCreate  HookType = "pre-tag-create"
	HookPostTagCreate HookType = "post-tag-create"
	HookPostPush      HookType = "post-push"
)

// HookContext carries the release information passed to hook scripts
// through environment variables.
type HookContext struct {
	Branch      string
	Tag         string
	Remote      string
	VersionBump string
	CommitCount int
}

// Env returns the environment variables exposed to hook scripts.
func (h HookContext) Env() []string {
	return []string{
		fmt.Sprintf("GITPUBLISH_BRANCH=%s", h.Branch),
		fmt.Sprintf("GITPUBLISH_TAG_NAME=%s", h.Tag),
		fmt.Sprintf("GITPUBLISH_REMOTE=%s", h.Remote),
		fmt.Sprintf("GITPUBLISH_VERSION_BUMP=%s", h.VersionBump),
		fmt.Sprintf("GITPUBLISH_COMMIT_COUNT=%d", h.CommitCount),
	}
}

// Executor runs lifecycle hook scripts.
//
//counterfeiter:generate -o ../../mocks/hook-executor.go --fake-name HookExecutor . Executor
type Executor interface {
	ExecuteAll(ctx context.Context, hookType HookType, scripts []string, hookCtx HookContext) error
}
