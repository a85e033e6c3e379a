package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleHistoryWriter writes history reports as a colored table.
type ConsoleHistoryWriter struct{}

// Write outputs the history report to the console.
func (w *ConsoleHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	title := color.New(color.FgGreen)
	hash := color.New(color.FgYellow).SprintFunc()

	switch report.Query {
	case QueryMatching:
		title.Fprintln(out, "Matching Commits")
		fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
		fmt.Fprintf(out, "Range: %s\n", report.RangeLabel())
		fmt.Fprintf(out, "Pattern: %s\n", report.Pattern)
	default:
		title.Fprintln(out, "Last Commit")
		fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	}
	fmt.Fprintf(out, "Total commits: %d\n\n", len(report.Commits))

	if len(commits) == 0 {
		fmt.Fprintln(out, "No commits found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCommit\tMessage")
	for i, c := range commits {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, hash(c.ShortSHA()), truncateMessage(c.Message, 72))
	}
	return tw.Flush()
}
