package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestNewHistoryReportWriter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
	}{
		{name: "Console", format: FormatConsole},
		{name: "JSON", format: FormatJSON},
		{name: "CSV", format: FormatCSV},
		{name: "Markdown", format: FormatMarkdown},
		{name: "CI", format: FormatCI},
		{name: "Unknown defaults to Console", format: "unknown"},
		{name: "Empty defaults to Console", format: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewHistoryReportWriter(tt.format)
			if writer == nil {
				t.Fatal("NewHistoryReportWriter returned nil")
			}

			switch tt.format {
			case FormatJSON:
				if _, ok := writer.(*JSONHistoryWriter); !ok {
					t.Errorf("Expected *JSONHistoryWriter for format %q", tt.format)
				}
			case FormatCSV:
				if _, ok := writer.(*CSVHistoryWriter); !ok {
					t.Errorf("Expected *CSVHistoryWriter for format %q", tt.format)
				}
			case FormatMarkdown:
				if _, ok := writer.(*MarkdownHistoryWriter); !ok {
					t.Errorf("Expected *MarkdownHistoryWriter for format %q", tt.format)
				}
			case FormatCI:
				if _, ok := writer.(*CIHistoryWriter); !ok {
					t.Errorf("Expected *CIHistoryWriter for format %q", tt.format)
				}
			default:
				if _, ok := writer.(*ConsoleHistoryWriter); !ok {
					t.Errorf("Expected *ConsoleHistoryWriter for format %q", tt.format)
				}
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{input: "json", want: FormatJSON},
		{input: "csv", want: FormatCSV},
		{input: "markdown", want: FormatMarkdown},
		{input: "md", want: FormatMarkdown},
		{input: "ci", want: FormatCI},
		{input: "ndjson", want: FormatCI},
		{input: "unknown", want: FormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Fatalf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONHistoryWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/report.json"
	writer := &JSONHistoryWriter{}
	if err := writer.Write(sampleMatchingReport(), OutputOptions{Format: FormatJSON, OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var got JSONHistoryReport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Query != "matching" || got.Pattern != "fix" || got.Range != "abc123..HEAD" {
		t.Errorf("header = %+v", got)
	}
	if got.GeneratedAt != "2026-02-10T09:30:00Z" {
		t.Errorf("GeneratedAt = %q", got.GeneratedAt)
	}
	if got.TotalCommits != 2 || len(got.Commits) != 2 {
		t.Fatalf("commits = %d/%d, expected 2/2", got.TotalCommits, len(got.Commits))
	}
	if got.Commits[0].Message != "fix: parser | crash" {
		t.Errorf("Commits[0].Message = %q", got.Commits[0].Message)
	}
}

func TestJSONHistoryWriter_EmptyCommitsIsArray(t *testing.T) {
	tmpFile := t.TempDir() + "/empty.json"
	report := &HistoryReport{RepoPath: ".", Query: QueryLastCommit}
	if err := (&JSONHistoryWriter{}).Write(report, OutputOptions{OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.Contains(string(data), `"commits": []`) {
		t.Errorf("expected empty commits array, got %s", data)
	}
}

func TestCSVHistoryWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/report.csv"
	if err := (&CSVHistoryWriter{}).Write(sampleMatchingReport(), OutputOptions{OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := os.Open(tmpFile)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, expected header + 2", len(rows))
	}
	if rows[0][1] != "SHA" || rows[2][0] != "2" || rows[2][2] != "fix_typo in *docs*" {
		t.Errorf("rows = %v", rows)
	}
}

func TestMarkdownHistoryWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/report.md"
	if err := (&MarkdownHistoryWriter{}).Write(sampleMatchingReport(), OutputOptions{OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		"# Matching Commits",
		"**Range:** `abc123..HEAD`",
		"| 1 | `11111111` | fix: parser \\| crash |",
		"| 2 | `22222222` | fix\\_typo in \\*docs\\* |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleHistoryWriter_Write(t *testing.T) {
	color.NoColor = true

	tmpFile := t.TempDir() + "/report.txt"
	if err := (&ConsoleHistoryWriter{}).Write(sampleMatchingReport(), OutputOptions{OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	out := string(data)
	for _, want := range []string{"Matching Commits", "Range: abc123..HEAD", "Total commits: 2", "11111111", "fix: parser | crash"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleHistoryWriter_NoCommits(t *testing.T) {
	color.NoColor = true

	tmpFile := t.TempDir() + "/empty.txt"
	report := &HistoryReport{RepoPath: ".", Query: QueryLastCommit}
	if err := (&ConsoleHistoryWriter{}).Write(report, OutputOptions{OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "No commits found.") {
		t.Errorf("expected empty message, got %q", data)
	}
}
