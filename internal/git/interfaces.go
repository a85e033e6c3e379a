package git

import "context"

// Runner executes git with the given arguments and returns its standard output.
// This abstraction lets the query code run against canned output in tests.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// HistoryQuerier answers commit history queries against a repository.
type HistoryQuerier interface {
	// LastCommit returns the most recent commit, or an empty set for a repository without commits.
	LastCommit(ctx context.Context) (*RevisionSet, error)
	// LastCommitHash returns the hash of the most recent commit, or "" when there is none.
	LastCommitHash(ctx context.Context) (string, error)
	// CommitsAfterMatching returns commits in from..until whose message matches pattern, oldest first.
	CommitsAfterMatching(ctx context.Context, pattern, from, until string) (*RevisionSet, error)
}

// Compile-time interface conformance checks.
var (
	_ Runner         = (*ExecRunner)(nil)
	_ HistoryQuerier = (*History)(nil)
	_ HistoryQuerier = (*RepositoryHistory)(nil)
)
