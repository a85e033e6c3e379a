package git

import (
	"github.com/elliotchance/orderedmap/v3"
)

// DefaultUntil is the revision used when a range query has no upper bound.
const DefaultUntil = "HEAD"

// Commit is a single entry of a RevisionSet.
type Commit struct {
	SHA     string
	Message string
}

// ShortSHA returns the first 8 characters of the commit hash.
func (c Commit) ShortSHA() string {
	if len(c.SHA) <= 8 {
		return c.SHA
	}
	return c.SHA[:8]
}

// RevisionSet is an ordered mapping from commit hash to one-line message.
// Iteration order is the order in which git emitted the commits. Setting a
// hash that is already present replaces its message and keeps its position.
type RevisionSet struct {
	entries *orderedmap.OrderedMap[string, string]
}

// NewRevisionSet returns an empty set.
func NewRevisionSet() *RevisionSet {
	return &RevisionSet{entries: orderedmap.NewOrderedMap[string, string]()}
}

func (s *RevisionSet) set(sha, message string) {
	s.entries.Set(sha, message)
}

// Len returns the number of distinct commits in the set.
func (s *RevisionSet) Len() int {
	if s == nil || s.entries == nil {
		return 0
	}
	return s.entries.Len()
}

// Get returns the message recorded for sha.
func (s *RevisionSet) Get(sha string) (string, bool) {
	if s == nil || s.entries == nil {
		return "", false
	}
	return s.entries.Get(sha)
}

// First returns the first commit in insertion order.
func (s *RevisionSet) First() (Commit, bool) {
	if s.Len() == 0 {
		return Commit{}, false
	}
	el := s.entries.Front()
	return Commit{SHA: el.Key, Message: el.Value}, true
}

// Hashes returns the commit hashes in insertion order.
func (s *RevisionSet) Hashes() []string {
	if s.Len() == 0 {
		return []string{}
	}
	hashes := make([]string, 0, s.Len())
	for el := s.entries.Front(); el != nil; el = el.Next() {
		hashes = append(hashes, el.Key)
	}
	return hashes
}

// Commits returns the entries in insertion order.
func (s *RevisionSet) Commits() []Commit {
	if s.Len() == 0 {
		return []Commit{}
	}
	commits := make([]Commit, 0, s.Len())
	for el := s.entries.Front(); el != nil; el = el.Next() {
		commits = append(commits, Commit{SHA: el.Key, Message: el.Value})
	}
	return commits
}

// ReadOptions configures a history backend.
type ReadOptions struct {
	RepoPath  string
	GitBinary string   // CLI backend only; defaults to "git"
	Paths     []string // Glob patterns restricting range queries to matching paths
}
