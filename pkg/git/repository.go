// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"
	"sort"
	"strings"

	"github.com/bborbe/errors"
	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	modsemver "golang.org/x/mod/semver"
)

// Repository provides the git operations needed for release tagging.
//
//counterfeiter:generate -o ../../mocks/repository.go --fake-name Repository . Repository
type Repository interface {
	CurrentBranch(ctx context.Context) (string, error)
	Fetch(ctx context.Context, remote string) error
	LatestTagOnBranch(ctx context.Context, branch string) (string, error)
	CommitMessagesSinceTag(ctx context.Context, branch string, tag string) ([]string, error)
	CreateTag(ctx context.Context, name string, branch string) error
	PushTag(ctx context.Context, remote string, name string) error
}

// gogitRepository implements Repository using go-git.
type gogitRepository struct {
	repo *gogit.Repository
}

// Open discovers the git repository at the given path or above it.
func Open(ctx context.Context, path string) (Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "not a git repository: %s", path)
	}
	return &gogitRepository{
		repo: repo,
	}, nil
}

// CurrentBranch returns the short name of the branch HEAD points at.
func (g *gogitRepository) CurrentBranch(ctx context.Context) (string, error) {
	head, err := g.repo.Head()
	if err != nil {
		return "", errors.Wrap(ctx, err, "get HEAD")
	}
	if !head.Name().IsBranch() {
		return "", errors.Errorf(ctx, "HEAD is detached")
	}
	return head.Name().Short(), nil
}

// Fetch updates branches and tags from the remote.
func (g *gogitRepository) Fetch(ctx context.Context, remote string) error {
	err := g.repo.FetchContext(ctx, &gogit.FetchOptions{
		RemoteName: remote,
		RefSpecs: []gogitconfig.RefSpec{
			gogitconfig.RefSpec("+refs/heads/*:refs/remotes/" + remote + "/*"),
			gogitconfig.RefSpec("+refs/tags/*:refs/tags/*"),
		},
		Tags: gogit.AllTags,
	})
	if err != nil && err != gogit.NoErrAlreadyUpToDate {
		return errors.Wrapf(ctx, err, "fetch from remote '%s'", remote)
	}
	return nil
}

// LatestTagOnBranch walks the branch history from its head backwards and
// returns the first tag found. Multiple tags on the same commit are
// ordered by semantic version, highest first. Returns "" when the branch
// carries no tag.
func (g *gogitRepository) LatestTagOnBranch(ctx context.Context, branch string) (string, error) {
	head, err := g.branchHead(ctx, branch)
	if err != nil {
		return "", err
	}

	tagsByCommit, err := g.tagsByCommit(ctx)
	if err != nil {
		return "", err
	}

	iter, err := g.repo.Log(&gogit.LogOptions{From: head})
	if err != nil {
		return "", errors.Wrapf(ctx, err, "walk history of branch '%s'", branch)
	}
	defer iter.Close()

	var latest string
	err = iter.ForEach(func(commit *object.Commit) error {
		names, ok := tagsByCommit[commit.Hash]
		if !ok {
			return nil
		}
		if len(names) > 1 {
			sort.Slice(names, func(i, j int) bool {
				return modsemver.Compare(semverKey(names[i]), semverKey(names[j])) > 0
			})
		}
		latest = names[0]
		return storer.ErrStop
	})
	if err != nil {
		return "", errors.Wrap(ctx, err, "walk history")
	}
	return latest, nil
}

// CommitMessagesSinceTag returns the messages of all commits on the
// branch after the given tag, oldest first. An empty tag returns the
// whole branch history.
func (g *gogitRepository) CommitMessagesSinceTag(
	ctx context.Context,
	branch string,
	tag string,
) ([]string, error) {
	head, err := g.branchHead(ctx, branch)
	if err != nil {
		return nil, err
	}

	var stopAt *plumbing.Hash
	if tag != "" {
		hash, err := g.resolveTagCommit(ctx, tag)
		if err != nil {
			return nil, err
		}
		stopAt = &hash
	}

	iter, err := g.repo.Log(&gogit.LogOptions{From: head})
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "walk history of branch '%s'", branch)
	}
	defer iter.Close()

	var messages []string
	err = iter.ForEach(func(commit *object.Commit) error {
		if stopAt != nil && commit.Hash == *stopAt {
			return storer.ErrStop
		}
		messages = append(messages, commit.Message)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(ctx, err, "walk history")
	}

	// reverse to chronological order, oldest first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// CreateTag creates a lightweight tag at the branch head.
func (g *gogitRepository) CreateTag(ctx context.Context, name string, branch string) error {
	head, err := g.branchHead(ctx, branch)
	if err != nil {
		return err
	}
	if _, err := g.repo.CreateTag(name, head, nil); err != nil {
		return errors.Wrapf(ctx, err, "create tag '%s'", name)
	}
	return nil
}

// PushTag pushes a single tag to the remote.
func (g *gogitRepository) PushTag(ctx context.Context, remote string, name string) error {
	refSpec := gogitconfig.RefSpec("refs/tags/" + name + ":refs/tags/" + name)
	err := g.repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: remote,
		RefSpecs:   []gogitconfig.RefSpec{refSpec},
	})
	if err != nil && err != gogit.NoErrAlreadyUpToDate {
		return errors.Wrapf(ctx, err, "push tag '%s' to remote '%s'", name, remote)
	}
	return nil
}

// branchHead resolves the commit hash of a local branch head.
func (g *gogitRepository) branchHead(ctx context.Context, branch string) (plumbing.Hash, error) {
	ref, err := g.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(ctx, err, "cannot find branch '%s'", branch)
	}
	return ref.Hash(), nil
}

// tagsByCommit maps commit hashes to the names of tags pointing at them,
// peeling annotated tags to their target commit.
func (g *gogitRepository) tagsByCommit(ctx context.Context) (map[plumbing.Hash][]string, error) {
	tags, err := g.repo.Tags()
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list tags")
	}
	defer tags.Close()

	result := make(map[plumbing.Hash][]string)
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		hash, err := g.tagCommit(ref)
		if err != nil {
			// skip unresolvable tags
			return nil
		}
		name := ref.Name().Short()
		result[hash] = append(result[hash], name)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(ctx, err, "iterate tags")
	}
	return result, nil
}

// tagCommit resolves a tag reference to the commit it points at.
func (g *gogitRepository) tagCommit(ref *plumbing.Reference) (plumbing.Hash, error) {
	// lightweight tags point directly at the commit
	if _, err := g.repo.CommitObject(ref.Hash()); err == nil {
		return ref.Hash(), nil
	}
	// annotated tags need peeling to their target
	tagObject, err := object.GetTag(g.repo.Storer, ref.Hash())
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return tagObject.Target, nil
}

// resolveTagCommit resolves a tag name to the commit it points at.
func (g *gogitRepository) resolveTagCommit(ctx context.Context, tag string) (plumbing.Hash, error) {
	ref, err := g.repo.Reference(plumbing.NewTagReferenceName(tag), true)
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(ctx, err, "cannot find tag '%s'", tag)
	}
	hash, err := g.tagCommit(ref)
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(ctx, err, "cannot resolve tag '%s'", tag)
	}
	return hash, nil
}

// semverKey normalizes a tag name for golang.org/x/mod/semver comparison
// by trimming any non-numeric prefix and prepending "v".
func semverKey(tag string) string {
	i := strings.IndexFunc(tag, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if i == -1 {
		return ""
	}
	return "v" + tag[i:]
}
