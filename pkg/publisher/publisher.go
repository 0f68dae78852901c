// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package publisher

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/sirupsen/logrus"

	"github.com/bborbe/git-publish/pkg/config"
	"github.com/bborbe/git-publish/pkg/git"
	"github.com/bborbe/git-publish/pkg/conventional"
	"github.com/bborbe/git-publish/pkg/hooks"
	"github.com/bborbe/git-publish/pkg/pattern"
	"github.com/bborbe/git-publish/pkg/resolver"
	"github.com/bborbe/git-publish/pkg/semver"
	"github.com/bborbe/git-publish/pkg/ui"
)

// Request describes one publish invocation.
type Request struct {
	Branch string
	Force  bool
	DryRun bool
}

// Result describes the outcome of a publish invocation.
type Result struct {
	Branch string
	Tag    string
	Pushed bool
}

// Publisher runs the release workflow: analyze commits, compute the next
// version, create and push the tag.
//
//counterfeiter:generate -o ../../mocks/publisher.go --fake-name Publisher . Publisher
type Publisher interface {
	Publish(ctx context.Context, req Request) (*Result, error)
}

type publisher struct {
	cfg       config.Config
	repo      git.Repository
	executor  hooks.Executor
	formatter *ui.Formatter
	confirmer ui.Confirmer
}

// NewPublisher creates a Publisher.
func NewPublisher(
	cfg config.Config,
	repo git.Repository,
	executor hooks.Executor,
	formatter *ui.Formatter,
	confirmer ui.Confirmer,
) Publisher {
	return &publisher{
		cfg:       cfg,
		repo:      repo,
		executor:  executor,
		formatter: formatter,
		confirmer: confirmer,
	}
}

func (p *publisher) Publish(ctx context.Context, req Request) (*Result, error) {
	branch := req.Branch
	if branch == "" {
		currentBranch, err := p.repo.CurrentBranch(ctx)
		if err != nil {
			return nil, errors.Wrap(ctx, err, "determine current branch")
		}
		branch = currentBranch
	}

	tagPattern, err := p.cfg.TagPattern(ctx, branch)
	if err != nil {
		p.formatter.AvailableBranches(p.cfg.Branches)
		return nil, err
	}

	// a failed fetch is not fatal, local state may still be good enough
	if err := p.repo.Fetch(ctx, p.cfg.Remote); err != nil {
		p.formatter.Warning("Fetch from '%s' failed, continuing with local state", p.cfg.Remote)
		logrus.WithError(err).Debug("fetch failed")
	}

	currentTag, err := p.repo.LatestTagOnBranch(ctx, branch)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "find latest tag on branch '%s'", branch)
	}

	currentVersion := p.parseCurrentVersion(ctx, tagPattern, currentTag)

	messages, err := p.repo.CommitMessagesSinceTag(ctx, branch, currentTag)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "collect commits since last release")
	}

	if len(messages) == 0 && !req.Force && !req.DryRun {
		confirmed, err := p.confirmer.Confirm(
			ctx,
			"No new commits since the last release. Create a release anyway?",
		)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			p.formatter.Status("Aborted")
			return nil, nil
		}
	}

	analyzer := conventional.NewAnalyzer(p.cfg.ConventionalCommits.ClassificationConfig())
	releaseResolver := resolver.NewResolver(analyzer, p.cfg.PreRelease.Policy())
	nextVersion, bump := releaseResolver.Resolve(currentVersion, messages)
	nextTag := tagPattern.Format(nextVersion.String())

	p.formatter.CommitAnalysis(messages, string(bump))
	p.formatter.ProposedTag(currentTag, nextTag)

	if req.DryRun {
		p.formatter.Status("Dry run, no tag created")
		return &Result{
			Branch: branch,
			Tag:    nextTag,
			Pushed: false,
		}, nil
	}

	if !req.Force {
		confirmed, err := p.confirmer.Confirm(ctx, "Create and push this tag?")
		if err != nil {
			return nil, err
		}
		if !confirmed {
			p.formatter.Status("Aborted")
			return nil, nil
		}
	}

	hookCtx := hooks.HookContext{
		Branch:      branch,
		Tag:         nextTag,
		Remote:      p.cfg.Remote,
		VersionBump: string(bump),
		CommitCount: len(messages),
	}

	if err := p.executor.ExecuteAll(ctx, hooks.HookPreTagCreate, p.cfg.Hooks.PreTagCreate, hookCtx); err != nil {
		return nil, errors.Wrap(ctx, err, "pre-tag-create hook failed, no tag created")
	}

	// tag creation and push run to completion even if the caller cancels
	tailCtx := context.WithoutCancel(ctx)

	if err := p.repo.CreateTag(tailCtx, nextTag, branch); err != nil {
		return nil, errors.Wrapf(ctx, err, "create tag '%s'", nextTag)
	}
	p.formatter.Success("Created tag %s", nextTag)

	if err := p.executor.ExecuteAll(tailCtx, hooks.HookPostTagCreate, p.cfg.Hooks.PostTagCreate, hookCtx); err != nil {
		p.formatter.ManualPushInstruction(p.cfg.Remote, nextTag)
		return nil, errors.Wrap(ctx, err, "post-tag-create hook failed, tag not pushed")
	}

	if err := p.repo.PushTag(tailCtx, p.cfg.Remote, nextTag); err != nil {
		p.formatter.ManualPushInstruction(p.cfg.Remote, nextTag)
		return nil, errors.Wrapf(ctx, err, "push tag '%s'", nextTag)
	}
	p.formatter.Success("Pushed tag %s to %s", nextTag, p.cfg.Remote)

	// a failed post-push hook never fails the release, the tag is out
	if err := p.executor.ExecuteAll(tailCtx, hooks.HookPostPush, p.cfg.Hooks.PostPush, hookCtx); err != nil {
		p.formatter.Warning("post-push hook failed: %v", err)
	}

	return &Result{
		Branch: branch,
		Tag:    nextTag,
		Pushed: true,
	}, nil
}

// parseCurrentVersion turns the latest tag into a version, or nil when
// there is no tag or the tag does not carry a parsable version. The
// baseline applies in that case.
func (p *publisher) parseCurrentVersion(
	ctx context.Context,
	tagPattern pattern.TagPattern,
	currentTag string,
) *semver.Version {
	if currentTag == "" {
		return nil
	}
	raw, err := tagPattern.Extract(ctx, currentTag)
	if err != nil {
		p.formatter.Warning(
			"Latest tag '%s' does not match the configured pattern, starting from the baseline",
			currentTag,
		)
		return nil
	}
	version, err := semver.ParseVersion(ctx, raw)
	if err != nil {
		p.formatter.Warning(
			"Latest tag '%s' does not carry a parsable version, starting from the baseline",
			currentTag,
		)
		return nil
	}
	return &version
}
