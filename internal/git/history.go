package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidRevision is returned for revisions git would read as an option or an empty range bound.
var ErrInvalidRevision = errors.New("invalid revision")

// Messages git prints on stderr when HEAD is unborn (current and pre-2.24 wording).
var noCommitsMarkers = []string{
	"does not have any commits yet",
	"bad default revision 'HEAD'",
}

// History answers history queries by running git log through a Runner.
type History struct {
	runner Runner
	opts   ReadOptions
}

// NewHistory creates a CLI-backed history reader.
func NewHistory(runner Runner, opts ReadOptions) *History {
	return &History{runner: runner, opts: opts}
}

// LastCommit returns the most recent commit on HEAD.
// A repository without commits yields an empty set.
func (h *History) LastCommit(ctx context.Context) (*RevisionSet, error) {
	out, err := h.runner.Run(ctx, "log", "--no-color", "--pretty=oneline", "-n", "1")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && isUnbornHead(cmdErr.Output) {
			return NewRevisionSet(), nil
		}
		return nil, err
	}
	return ParseOneline(out), nil
}

// LastCommitHash returns the hash of the most recent commit, or "" if there is none.
func (h *History) LastCommitHash(ctx context.Context) (string, error) {
	return lastHash(ctx, h)
}

// CommitsAfterMatching returns the commits reachable from until but not from
// from whose message matches pattern, oldest first. pattern uses git's
// --grep syntax. An empty until means HEAD. An empty from, or a revision
// starting with "-", fails with ErrInvalidRevision before git runs rather
// than querying "..HEAD".
func (h *History) CommitsAfterMatching(ctx context.Context, pattern, from, until string) (*RevisionSet, error) {
	args, err := h.rangeArgs(pattern, from, until)
	if err != nil {
		return nil, err
	}

	out, err := h.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseOneline(out), nil
}

func (h *History) rangeArgs(pattern, from, until string) ([]string, error) {
	from, until, err := normalizeRange(from, until)
	if err != nil {
		return nil, err
	}

	args := []string{
		"log",
		"--pretty=oneline",
		"--no-color",
		"--date-order",
		"--reverse",
		"--grep=" + pattern,
		from + ".." + until,
	}

	if len(h.opts.Paths) > 0 {
		args = append(args, "--")
		for _, p := range h.opts.Paths {
			if !doublestar.ValidatePattern(p) {
				return nil, fmt.Errorf("invalid path pattern %q", p)
			}
			args = append(args, ":(glob)"+p)
		}
	}

	return args, nil
}

func normalizeRange(from, until string) (string, string, error) {
	from = strings.TrimSpace(from)
	until = strings.TrimSpace(until)
	if until == "" {
		until = DefaultUntil
	}
	if from == "" {
		return "", "", fmt.Errorf("%w: missing start of range", ErrInvalidRevision)
	}
	for _, rev := range []string{from, until} {
		if strings.HasPrefix(rev, "-") {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidRevision, rev)
		}
	}
	return from, until, nil
}

func isUnbornHead(stderr string) bool {
	for _, marker := range noCommitsMarkers {
		if strings.Contains(stderr, marker) {
			return true
		}
	}
	return false
}

func lastHash(ctx context.Context, q HistoryQuerier) (string, error) {
	set, err := q.LastCommit(ctx)
	if err != nil {
		return "", err
	}
	first, ok := set.First()
	if !ok {
		return "", nil
	}
	return first.SHA, nil
}
