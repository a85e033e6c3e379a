package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// CIHistoryWriter writes history reports as NDJSON (one JSON object per line) for CI pipelines.
type CIHistoryWriter struct{}

// CISummary is the first line of CI output.
type CISummary struct {
	Type         string `json:"type"`
	Query        string `json:"query"`
	Range        string `json:"range,omitempty"`
	TotalCommits int    `json:"totalCommits"`
}

// CICommitEntry represents a single commit in CI output.
type CICommitEntry struct {
	Type    string `json:"type"`
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// Write outputs the history report as NDJSON.
func (w *CIHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := CISummary{
		Type:         "summary",
		Query:        string(report.Query),
		Range:        report.RangeLabel(),
		TotalCommits: len(report.Commits),
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, c := range commits {
		entry := CICommitEntry{Type: "commit", SHA: c.SHA, Message: c.Message}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
