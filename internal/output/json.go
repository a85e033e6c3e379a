package output

import (
	"encoding/json"
	"fmt"
)

// JSONHistoryWriter writes history reports as JSON.
type JSONHistoryWriter struct{}

// JSONHistoryReport is the JSON output structure for a history query.
type JSONHistoryReport struct {
	RepoPath     string       `json:"repo"`
	Query        string       `json:"query"`
	Pattern      string       `json:"pattern,omitempty"`
	Range        string       `json:"range,omitempty"`
	GeneratedAt  string       `json:"generatedAt"`
	TotalCommits int          `json:"totalCommits"`
	Commits      []JSONCommit `json:"commits"`
}

// JSONCommit is the JSON output structure for a single commit.
type JSONCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// Write outputs the history report as JSON.
func (w *JSONHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	jsonCommits := make([]JSONCommit, len(commits))
	for i, c := range commits {
		jsonCommits[i] = JSONCommit{SHA: c.SHA, Message: c.Message}
	}

	jsonReport := JSONHistoryReport{
		RepoPath:     report.RepoPath,
		Query:        string(report.Query),
		Pattern:      report.Pattern,
		Range:        report.RangeLabel(),
		GeneratedAt:  report.GeneratedAt.Format(reportDateTimeLayout),
		TotalCommits: len(report.Commits),
		Commits:      jsonCommits,
	}

	data, err := json.MarshalIndent(jsonReport, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	_, err = fmt.Fprintln(out, string(data))
	return err
}
