package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/masmgr/revlog/config"
	"github.com/masmgr/revlog/internal/git"
	"github.com/masmgr/revlog/internal/logger"
	"github.com/urfave/cli/v2"
)

// newQuerier builds the history backend. Tests replace it to avoid touching a real repository.
var newQuerier = buildQuerier

// CommandContext holds common state for command execution.
type CommandContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Querier git.HistoryQuerier
	Ctx     context.Context
	cancel  context.CancelFunc
}

// NewCommandContext loads configuration, applies flag overrides and opens the history backend.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	querier, err := newQuerier(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if timeout := c.Duration("timeout"); timeout > 0 {
		ctx, cancel = context.WithTimeout(c.Context, timeout)
	} else {
		ctx, cancel = context.WithCancel(c.Context)
	}

	return &CommandContext{
		Config:  cfg,
		Logger:  log,
		Querier: querier,
		Ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Close releases the command's context.
func (ctx *CommandContext) Close() {
	if ctx.cancel != nil {
		ctx.cancel()
	}
}

// executeWithContext sets up a CommandContext and runs fn with it.
func executeWithContext(c *cli.Context, fn func(ctx *CommandContext, c *cli.Context) error) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if err := fn(ctx, c); err != nil {
		ctx.Logger.Error("command failed", err)
		return err
	}
	return nil
}

// loadConfig loads configuration from file or defaults, then applies CLI flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("repo") {
		cfg.Git.RepoPath = c.String("repo")
	}
	if c.IsSet("backend") {
		cfg.Git.Backend = config.Backend(c.String("backend"))
	}
	if c.IsSet("git-binary") {
		cfg.Git.Binary = c.String("git-binary")
	}
	if paths := c.StringSlice("path"); len(paths) > 0 {
		cfg.Git.Paths = paths
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func buildQuerier(cfg *config.Config, log *logger.Logger) (git.HistoryQuerier, error) {
	opts := git.ReadOptions{
		RepoPath:  cfg.Git.RepoPath,
		GitBinary: cfg.Git.Binary,
		Paths:     cfg.Git.Paths,
	}

	switch cfg.Git.Backend {
	case config.BackendGoGit:
		if opts.GitBinary != "" && opts.GitBinary != "git" {
			log.Warnf("git binary %s is ignored by the gogit backend", opts.GitBinary)
		}
		log.Debugf("opening %s with go-git", opts.RepoPath)
		return git.NewRepositoryHistory(opts)
	default:
		runner := &loggingRunner{
			next: git.NewExecRunner(opts.GitBinary, opts.RepoPath),
			log:  log,
		}
		return git.NewHistory(runner, opts), nil
	}
}

// loggingRunner records each git invocation before handing back its result.
type loggingRunner struct {
	next git.Runner
	log  *logger.Logger
}

func (r *loggingRunner) Run(ctx context.Context, args ...string) (string, error) {
	start := time.Now()
	out, err := r.next.Run(ctx, args...)
	r.log.Command(args, time.Since(start), len(out), err)
	return out, err
}
