package git

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RepositoryHistory answers history queries in-process using go-git.
// Patterns are Go regular expressions rather than git's --grep dialect.
type RepositoryHistory struct {
	repo *git.Repository
	opts ReadOptions
}

// NewRepositoryHistory opens the repository at opts.RepoPath or one of its parents.
func NewRepositoryHistory(opts ReadOptions) (*RepositoryHistory, error) {
	repo, err := git.PlainOpenWithOptions(opts.RepoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	for _, p := range opts.Paths {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid path pattern %q", p)
		}
	}
	return &RepositoryHistory{repo: repo, opts: opts}, nil
}

// LastCommit returns the commit HEAD points at.
func (r *RepositoryHistory) LastCommit(ctx context.Context) (*RevisionSet, error) {
	set := NewRevisionSet()

	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return set, nil
		}
		return nil, err
	}

	c, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, err
	}
	set.set(c.Hash.String(), subject(c.Message))
	return set, nil
}

// LastCommitHash returns the hash HEAD points at, or "" for an empty repository.
func (r *RepositoryHistory) LastCommitHash(ctx context.Context) (string, error) {
	return lastHash(ctx, r)
}

// CommitsAfterMatching returns commits reachable from until and not from from
// whose message matches pattern, oldest first. Range bounds are checked like
// History.CommitsAfterMatching: an empty from is ErrInvalidRevision.
func (r *RepositoryHistory) CommitsAfterMatching(ctx context.Context, pattern, from, until string) (*RevisionSet, error) {
	from, until, err := normalizeRange(from, until)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	fromHash, err := r.resolve(from)
	if err != nil {
		return nil, err
	}
	untilHash, err := r.resolve(until)
	if err != nil {
		return nil, err
	}

	excluded, err := r.reachable(ctx, fromHash)
	if err != nil {
		return nil, err
	}

	logOpts := &git.LogOptions{From: untilHash, Order: git.LogOrderCommitterTime}
	if len(r.opts.Paths) > 0 {
		logOpts.PathFilter = r.matchesPaths
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, err
	}
	defer cIter.Close()

	// Log walks newest first.
	var matched []Commit
	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, skip := excluded[c.Hash]; skip {
			return nil
		}
		if !re.MatchString(c.Message) {
			return nil
		}
		matched = append(matched, Commit{SHA: c.Hash.String(), Message: subject(c.Message)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	set := NewRevisionSet()
	for i := len(matched) - 1; i >= 0; i-- {
		set.set(matched[i].SHA, matched[i].Message)
	}
	return set, nil
}

func (r *RepositoryHistory) resolve(rev string) (plumbing.Hash, error) {
	h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	return *h, nil
}

// reachable collects every commit hash reachable from start.
func (r *RepositoryHistory) reachable(ctx context.Context, start plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	cIter, err := r.repo.Log(&git.LogOptions{From: start})
	if err != nil {
		return nil, err
	}
	defer cIter.Close()

	seen := make(map[plumbing.Hash]struct{})
	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

// matchesPaths reports whether path matches any configured glob.
// Patterns are validated in NewRepositoryHistory.
func (r *RepositoryHistory) matchesPaths(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")
	for _, pattern := range r.opts.Paths {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}

// subject returns the first paragraph of a commit message folded onto one
// line, the way git's oneline format prints it and ParseOneline reads it back.
// Leading blank lines are skipped and trailing whitespace is dropped from every line.
func subject(message string) string {
	var parts []string
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, line)
	}
	return strings.TrimLeftFunc(strings.Join(parts, " "), unicode.IsSpace)
}
