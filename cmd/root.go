package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/revlog/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "revlog",
		Usage:   "Query one-line git history and validate money amounts",
		Version: "1.0.0",
		Commands: []*cli.Command{
			LastCmd(),
			LastHashCmd(),
			MatchingCmd(),
			MoneyCmd(),
			ConfigCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// Common flags shared across history commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend (cli, gogit)",
			Value: "cli",
		},
		&cli.StringFlag{
			Name:  "git-binary",
			Usage: "Git executable used by the cli backend",
			Value: "git",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of commits to show (0 for all)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Abort git after this long (e.g. 30s); 0 waits forever",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
			Value: "warn",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format (text, json)",
			Value: "text",
		},
	}
}

// OutputOptions creates OutputOptions from CLI flags and configuration.
func OutputOptions(c *cli.Context, ctx *CommandContext) output.OutputOptions {
	format := ctx.Config.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	top := ctx.Config.Output.Top
	if c.IsSet("top") {
		top = c.Int("top")
	}
	return output.OutputOptions{
		Format:     output.ParseFormat(format),
		Top:        top,
		OutputPath: c.String("output"),
	}
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
