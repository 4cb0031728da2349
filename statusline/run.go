package statusline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/statusline/cache"
	"github.com/grovetools/statusline/config"
	"github.com/grovetools/statusline/errors"
	"github.com/grovetools/statusline/git"
	"github.com/grovetools/statusline/logging"
	"github.com/grovetools/statusline/pkg/paths"
	"github.com/grovetools/statusline/transcript"
)

// Options configures one status line run.
type Options struct {
	// Short selects the terse layout.
	Short bool

	// SkipPRStatus is accepted for command line compatibility. The pull
	// request segment it used to hide no longer exists, so it has no effect.
	SkipPRStatus bool

	// Config defaults to config.Default().
	Config *config.Config

	// Inspector defaults to a git.Inspector, wrapped in the session cache
	// when caching is enabled.
	Inspector git.StateProvider

	// Home defaults to $HOME.
	Home string
}

// Run reads the Claude Code status JSON from stdin and writes one status
// line to stdout. It fails only when stdin cannot be read or is not a JSON
// object; nothing is written to stdout in that case.
func Run(ctx context.Context, opts Options, stdin io.Reader, stdout io.Writer) error {
	logger := logging.NewLogger("statusline")

	data, err := io.ReadAll(stdin)
	if err != nil {
		return errors.InvalidInput(fmt.Errorf("read stdin: %w", err))
	}

	in, err := ParseInput(data)
	if err != nil {
		return err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	home := opts.Home
	if home == "" {
		home = paths.HomeDir()
	}

	view := View{
		Dir:   in.CurrentDir,
		Model: in.ModelName,
		Cost:  in.CostUSD,
	}

	if isDir(in.CurrentDir) {
		view.Git = inspector(opts, cfg, in.SessionID).Inspect(ctx, in.CurrentDir)
	} else if in.CurrentDir != "" {
		logger.WithField("dir", in.CurrentDir).Debug("Working directory not accessible, skipping git")
	}

	if in.TranscriptPath != "" {
		result := transcript.NewAnalyzer(cfg.ContextLimit, in.ModelID).Analyze(in.TranscriptPath)
		view.Context = result.Context
		view.Duration = result.Duration
		if view.Cost == nil {
			view.Cost = result.Cost
		}
	}

	if in.LinesAdded != nil || in.LinesRemoved != nil {
		view.Lines = &LineChanges{Added: deref(in.LinesAdded), Removed: deref(in.LinesRemoved)}
	}

	formatter := NewFormatter(NewPalette(cfg.ColorEnabled()), opts.Short, home, cfg.ProjectsRootPath())
	line := formatter.Format(view)

	logger.WithFields(logrus.Fields{
		"short":    opts.Short,
		"repo":     view.Git.IsRepo,
		"segments": view.presentCount(opts.Short),
	}).Debug("Rendered status line")

	if _, err := fmt.Fprintln(stdout, line); err != nil {
		return fmt.Errorf("write status line: %w", err)
	}
	return nil
}

func inspector(opts Options, cfg *config.Config, sessionID string) git.StateProvider {
	if opts.Inspector != nil {
		return opts.Inspector
	}
	provider := git.StateProvider(git.NewInspector(nil))
	if cfg.CacheEnabled() && sessionID != "" {
		store := cache.NewStore(paths.SessionCacheDir(), cfg.GitCacheTTL())
		provider = cache.NewCachedInspector(provider, store, sessionID)
	}
	return provider
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func deref(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

// presentCount is the number of segments the view renders.
func (v View) presentCount(short bool) int {
	n := 0
	for _, present := range []bool{
		v.Dir != "",
		v.Model != "",
		v.Context != nil,
		v.Duration != nil,
		!short && v.Lines != nil,
		!short && v.Cost != nil,
	} {
		if present {
			n++
		}
	}
	return n
}
