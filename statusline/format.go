package statusline

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/grovetools/statusline/git"
	"github.com/grovetools/statusline/transcript"
)

const (
	separator    = "•"
	worktreeMark = "↟"
	stashMark    = "≡"
)

// View is everything the status line can show. Nil fields are absent and
// their segments are skipped.
type View struct {
	// Dir is the working directory; empty omits the location segment.
	Dir string
	Git git.State

	Model    string
	Context  *transcript.ContextUsage
	Duration *time.Duration
	Lines    *LineChanges
	Cost     *float64
}

// LineChanges are the lines added and removed during the session.
type LineChanges struct {
	Added   int64
	Removed int64
}

// Formatter renders a View as one line.
type Formatter struct {
	palette      *Palette
	short        bool
	home         string
	projectsRoot string
}

// NewFormatter creates a formatter. In short mode the path is hidden for
// checkouts at <projectsRoot>/<repo name>, and line and cost segments are
// dropped.
func NewFormatter(palette *Palette, short bool, home, projectsRoot string) *Formatter {
	return &Formatter{
		palette:      palette,
		short:        short,
		home:         filepath.Clean(home),
		projectsRoot: projectsRoot,
	}
}

// Format renders the segments of v in their fixed order, separated by " • ".
func (f *Formatter) Format(v View) string {
	segments := []string{
		f.location(v),
		f.palette.Paint(TierModel, v.Model),
		f.context(v.Context),
		f.duration(v.Duration),
	}
	if !f.short {
		segments = append(segments, f.lines(v.Lines), f.cost(v.Cost))
	}

	present := segments[:0]
	for _, s := range segments {
		if s != "" {
			present = append(present, s)
		}
	}
	return strings.Join(present, " "+f.palette.Paint(TierSeparator, separator)+" ")
}

func (f *Formatter) location(v View) string {
	if v.Dir == "" {
		return ""
	}

	var path string
	if !f.hidePath(v) {
		path = f.palette.Paint(TierPath, f.displayPath(v.Dir))
	}

	bracket := f.branch(v.Git)
	switch {
	case path != "" && bracket != "":
		return path + " " + bracket
	case path != "":
		return path
	default:
		return bracket
	}
}

// hidePath reports whether short mode hides the path: only for the
// repository's standard checkout location.
func (f *Formatter) hidePath(v View) bool {
	if !f.short || !v.Git.IsRepo || v.Git.RepoName == "" || f.projectsRoot == "" {
		return false
	}
	standard := filepath.Join(f.projectsRoot, v.Git.RepoName)
	return filepath.Clean(v.Dir) == standard
}

// displayPath abbreviates the home directory to "~".
func (f *Formatter) displayPath(dir string) string {
	if f.home == "" || f.home == "." || f.home == "/" {
		return dir
	}
	if dir == f.home {
		return "~"
	}
	if strings.HasPrefix(dir, f.home+"/") {
		return "~" + dir[len(f.home):]
	}
	return dir
}

func (f *Formatter) branch(s git.State) string {
	if !s.IsRepo || s.Branch == "" {
		return ""
	}

	if s.IsWorktree {
		label := s.Branch + worktreeMark
		if s.Branch == s.WorktreeName {
			label = worktreeMark
		}
		return f.palette.Paint(TierWorktree, "["+label+gitStatus(s)+"]")
	}
	return f.palette.Paint(TierRepo, "["+s.Branch+gitStatus(s)+"]")
}

// gitStatus renders the markers that follow the branch name, each only when
// non-zero.
func gitStatus(s git.State) string {
	var b strings.Builder
	counter := func(mark string, n int) {
		if n > 0 {
			fmt.Fprintf(&b, " %s%d", mark, n)
		}
	}

	counter("⇡", s.Ahead)
	counter("⇣", s.Behind)
	counter("+", s.Added)
	counter("~", s.Modified)
	counter("-", s.Deleted)
	counter("»", s.Renamed)
	counter("?", s.Untracked)

	if delta := s.LineDelta(); delta != 0 {
		fmt.Fprintf(&b, " Δ%+d", delta)
	}
	if s.HasStash {
		b.WriteString(" " + stashMark)
	}
	return b.String()
}

func (f *Formatter) context(c *transcript.ContextUsage) string {
	if c == nil {
		return ""
	}
	var tier Tier
	switch c.Tier() {
	case transcript.ContextCritical:
		tier = TierBad
	case transcript.ContextHigh:
		tier = TierAlert
	case transcript.ContextMedium:
		tier = TierWarn
	default:
		tier = TierSeparator
	}
	return f.palette.Paint(tier, fmt.Sprintf("%d%%", c.Percent))
}

func (f *Formatter) duration(d *time.Duration) string {
	if d == nil {
		return ""
	}
	return f.palette.Paint(TierMuted, transcript.FormatDuration(*d))
}

func (f *Formatter) lines(l *LineChanges) string {
	if l == nil {
		return ""
	}
	return f.palette.Paint(TierGood, fmt.Sprintf("+%d", l.Added)) + " " +
		f.palette.Paint(TierBad, fmt.Sprintf("-%d", l.Removed))
}

func (f *Formatter) cost(c *float64) string {
	if c == nil || *c < 0 || math.IsNaN(*c) || math.IsInf(*c, 0) {
		return ""
	}
	return f.palette.Paint(CostTier(*c), FormatCost(*c))
}

// FormatCost renders USD with precision that shrinks as the amount grows:
// "$0.0050", "$7.50", "$42".
func FormatCost(cost float64) string {
	switch {
	case cost < 0.01:
		return fmt.Sprintf("$%.4f", cost)
	case cost < 20:
		return fmt.Sprintf("$%.2f", cost)
	default:
		return fmt.Sprintf("$%.0f", cost)
	}
}

// CostTier is good below $5, a warning below $20 and bad from $20.
func CostTier(cost float64) Tier {
	switch {
	case cost < 5:
		return TierGood
	case cost < 20:
		return TierWarn
	default:
		return TierBad
	}
}
