package output

import (
	"time"

	"github.com/masmgr/revlog/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ HistoryReportWriter = (*ConsoleHistoryWriter)(nil)
	_ HistoryReportWriter = (*JSONHistoryWriter)(nil)
	_ HistoryReportWriter = (*CSVHistoryWriter)(nil)
	_ HistoryReportWriter = (*MarkdownHistoryWriter)(nil)
	_ HistoryReportWriter = (*CIHistoryWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// ParseFormat maps a flag value to an OutputFormat, defaulting to console.
func ParseFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	case "markdown", "md":
		return FormatMarkdown
	case "ci", "ndjson":
		return FormatCI
	default:
		return FormatConsole
	}
}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
}

// QueryKind names the history query that produced a report.
type QueryKind string

const (
	QueryLastCommit QueryKind = "last"
	QueryMatching   QueryKind = "matching"
)

// HistoryReport holds the result of one history query.
type HistoryReport struct {
	RepoPath    string
	Query       QueryKind
	Pattern     string // matching queries only
	From        string
	Until       string
	GeneratedAt time.Time
	Commits     []git.Commit
}

// RangeLabel returns "from..until" for range queries and "" otherwise.
func (r *HistoryReport) RangeLabel() string {
	if r.From == "" {
		return ""
	}
	until := r.Until
	if until == "" {
		until = git.DefaultUntil
	}
	return r.From + ".." + until
}

// HistoryReportWriter writes history reports.
type HistoryReportWriter interface {
	Write(report *HistoryReport, options OutputOptions) error
}

// NewHistoryReportWriter creates a report writer for the specified format.
func NewHistoryReportWriter(format OutputFormat) HistoryReportWriter {
	switch format {
	case FormatJSON:
		return &JSONHistoryWriter{}
	case FormatCSV:
		return &CSVHistoryWriter{}
	case FormatMarkdown:
		return &MarkdownHistoryWriter{}
	case FormatCI:
		return &CIHistoryWriter{}
	default:
		return &ConsoleHistoryWriter{}
	}
}
