package output

import (
	"encoding/csv"
	"strconv"
)

// CSVHistoryWriter writes history reports as CSV.
type CSVHistoryWriter struct{}

// Write outputs one row per commit.
func (w *CSVHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"Index", "SHA", "Message"}); err != nil {
		return err
	}
	for i, c := range commits {
		if err := writer.Write([]string{strconv.Itoa(i + 1), c.SHA, c.Message}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
