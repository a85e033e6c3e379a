package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo initializes an empty repository in a temporary directory.
func createTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := git.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return tmpDir, repo
}

// addCommitToRepo writes the given files and commits them, returning the commit hash.
func addCommitToRepo(t *testing.T, repo *git.Repository, message string, filenames []string, commitTime time.Time) string {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	for _, filename := range filenames {
		filePath := filepath.Join(w.Filesystem.Root(), filename)
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}

		// Timestamped content keeps every commit non-empty.
		content := filename + " at " + commitTime.String() + "\n"
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := w.Add(filename); err != nil {
			t.Fatalf("Failed to add file: %v", err)
		}
	}

	hash, err := w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  commitTime,
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash.String()
}

// fixtureCommits holds the hashes created by buildFixtureRepo, oldest first.
type fixtureCommits struct {
	initial  string
	fixA     string
	feature  string
	fixDocs  string
	refactor string
}

// buildFixtureRepo creates a small linear history with two fix commits after the initial one.
func buildFixtureRepo(t *testing.T) (string, fixtureCommits) {
	t.Helper()

	dir, repo := createTestRepo(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	var fc fixtureCommits
	fc.initial = addCommitToRepo(t, repo, "Initial commit", []string{"README.md"}, base)
	fc.fixA = addCommitToRepo(t, repo, "Fix crash in parser", []string{"src/parser.go"}, base.Add(1*time.Hour))
	fc.feature = addCommitToRepo(t, repo, "Add export command", []string{"src/export.go"}, base.Add(2*time.Hour))
	fc.fixDocs = addCommitToRepo(t, repo, "Fix typo in docs", []string{"docs/guide.md"}, base.Add(3*time.Hour))
	fc.refactor = addCommitToRepo(t, repo, "Refactor parser", []string{"src/parser.go"}, base.Add(4*time.Hour))
	return dir, fc
}
