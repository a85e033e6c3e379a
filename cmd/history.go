package cmd

import (
	"fmt"
	"time"

	"github.com/masmgr/revlog/internal/git"
	"github.com/masmgr/revlog/internal/output"
	"github.com/urfave/cli/v2"
)

// LastCmd returns the last command.
func LastCmd() *cli.Command {
	return &cli.Command{
		Name:   "last",
		Usage:  "Show the most recent commit",
		Flags:  commonFlags(),
		Action: lastAction,
	}
}

// LastHashCmd returns the last-hash command.
func LastHashCmd() *cli.Command {
	return &cli.Command{
		Name:   "last-hash",
		Usage:  "Print the hash of the most recent commit (nothing if there are no commits)",
		Flags:  commonFlags(),
		Action: lastHashAction,
	}
}

// MatchingCmd returns the matching command.
func MatchingCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:     "grep",
			Aliases:  []string{"g"},
			Usage:    "Message pattern (git --grep syntax for the cli backend, Go regexp for gogit)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "from",
			Usage:    "Exclusive start of the range",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "Inclusive end of the range (default: HEAD)",
		},
		&cli.StringSliceFlag{
			Name:  "path",
			Usage: "Only commits touching paths matching this glob (can be specified multiple times)",
		},
	)

	return &cli.Command{
		Name:    "matching",
		Aliases: []string{"m"},
		Usage:   "List commits in FROM..UNTIL whose message matches a pattern, oldest first",
		Flags:   flags,
		Action:  matchingAction,
	}
}

func lastAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		set, err := ctx.Querier.LastCommit(ctx.Ctx)
		if err != nil {
			return fmt.Errorf("failed to read last commit: %w", err)
		}

		report := &output.HistoryReport{
			RepoPath:    ctx.Config.Git.RepoPath,
			Query:       output.QueryLastCommit,
			GeneratedAt: time.Now(),
			Commits:     set.Commits(),
		}
		return writeHistoryReport(c, ctx, report)
	})
}

func lastHashAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		hash, err := ctx.Querier.LastCommitHash(ctx.Ctx)
		if err != nil {
			return fmt.Errorf("failed to read last commit: %w", err)
		}
		if hash == "" {
			ctx.Logger.Infof("repository %s has no commits", ctx.Config.Git.RepoPath)
			return nil
		}
		_, err = fmt.Fprintln(c.App.Writer, hash)
		return err
	})
}

func matchingAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		until := c.String("until")
		if until == "" {
			until = ctx.Config.Git.DefaultUntil
		}
		if until == "" {
			until = git.DefaultUntil
		}

		pattern := c.String("grep")
		from := c.String("from")

		set, err := ctx.Querier.CommitsAfterMatching(ctx.Ctx, pattern, from, until)
		if err != nil {
			return fmt.Errorf("failed to query commits: %w", err)
		}
		ctx.Logger.Debugf("%d commits in %s..%s match %q", set.Len(), from, until, pattern)

		report := &output.HistoryReport{
			RepoPath:    ctx.Config.Git.RepoPath,
			Query:       output.QueryMatching,
			Pattern:     pattern,
			From:        from,
			Until:       until,
			GeneratedAt: time.Now(),
			Commits:     set.Commits(),
		}
		return writeHistoryReport(c, ctx, report)
	})
}
