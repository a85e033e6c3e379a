package output

import (
	"fmt"
)

// MarkdownHistoryWriter writes history reports as Markdown.
type MarkdownHistoryWriter struct{}

// Write outputs the history report as a Markdown table.
func (w *MarkdownHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if report.Query == QueryMatching {
		fmt.Fprintln(out, "# Matching Commits")
	} else {
		fmt.Fprintln(out, "# Last Commit")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	if report.Query == QueryMatching {
		fmt.Fprintf(out, "**Range:** `%s`\n\n", report.RangeLabel())
		fmt.Fprintf(out, "**Pattern:** `%s`\n\n", report.Pattern)
	}
	fmt.Fprintf(out, "**Total Commits:** %d\n\n", len(report.Commits))

	if len(commits) == 0 {
		fmt.Fprintln(out, "_No commits found._")
		return nil
	}

	fmt.Fprintln(out, "| # | Commit | Message |")
	fmt.Fprintln(out, "|---|--------|---------|")
	for i, c := range commits {
		fmt.Fprintf(out, "| %d | `%s` | %s |\n", i+1, c.ShortSHA(), escapeMarkdown(c.Message))
	}

	return nil
}
