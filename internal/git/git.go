// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git locates the repository that holds the catalog and reports
// uncommitted changes to generated files.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNoGit is returned when the working directory is not inside a git
// repository.
var ErrNoGit = errors.New("not a git repository")

// Config configures repository discovery.
type Config struct {
	WorkDir string // Any directory inside the repository
}

// Repo wraps a go-git repository for the operations we need.
type Repo struct {
	repo *gogit.Repository
	root string
}

// Open finds the repository containing cfg.WorkDir, searching parent
// directories. Returns ErrNoGit if there is none.
func Open(cfg Config) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(cfg.WorkDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
	return &Repo{repo: r, root: wt.Filesystem.Root()}, nil
}

// Root returns the absolute path of the repository's working tree.
func (r *Repo) Root() string {
	return r.root
}

// IsModified reports whether path has uncommitted changes, staged or not.
// Untracked files count as modified. path may be absolute or relative to
// the repository root.
func (r *Repo) IsModified(path string) (bool, error) {
	rel := path
	if filepath.IsAbs(path) {
		var err error
		rel, err = filepath.Rel(r.root, path)
		if err != nil {
			return false, fmt.Errorf("resolving %s: %w", path, err)
		}
	}
	rel = filepath.ToSlash(rel)

	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}

	fs, ok := status[rel]
	if !ok {
		return false, nil
	}
	return fs.Staging != gogit.Unmodified || fs.Worktree != gogit.Unmodified, nil
}
