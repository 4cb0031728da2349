// Package transcript derives context usage, session duration and an
// estimated cost from a Claude Code session transcript (JSONL).
package transcript

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/statusline/logging"
)

// Result holds the values derived from a transcript. A nil field is absent.
type Result struct {
	Context  *ContextUsage
	Duration *time.Duration
	// Cost is estimated from token usage; only set for models with known
	// pricing and a non-zero total.
	Cost *float64
}

// Analyzer reads transcripts.
type Analyzer struct {
	contextLimit int
	modelID      string
	logger       *logrus.Entry
}

// NewAnalyzer creates an analyzer measuring context against contextLimit
// tokens. modelID selects the pricing for cost estimates and may be empty.
func NewAnalyzer(contextLimit int, modelID string) *Analyzer {
	if contextLimit <= 0 {
		contextLimit = DefaultContextLimit
	}
	return &Analyzer{
		contextLimit: contextLimit,
		modelID:      modelID,
		logger:       logging.NewLogger("transcript"),
	}
}

// Analyze analyzes the transcript at path with the default context limit and
// no cost estimate.
func Analyze(path string) Result {
	return NewAnalyzer(DefaultContextLimit, "").Analyze(path)
}

// Analyze reads the transcript at path. A missing or unreadable file yields
// an empty Result.
func (a *Analyzer) Analyze(path string) Result {
	reader, err := NewReader(path)
	if err != nil {
		a.logger.WithError(err).Debug("Transcript not readable")
		return Result{}
	}
	defer reader.Close()

	var acc accumulator
	skipped, err := reader.Each(acc.add)
	if err != nil {
		a.logger.WithError(err).WithField("path", reader.Path()).Debug("Transcript scan stopped early")
	}
	if skipped > 0 {
		a.logger.WithFields(logrus.Fields{"path": reader.Path(), "skipped": skipped}).Debug("Skipped unusable transcript lines")
	}

	ctxUsage := NewContextUsage(acc.latestUsage.Total(), a.contextLimit)
	duration := acc.duration()
	result := Result{Context: &ctxUsage, Duration: &duration}

	if pricing, ok := PricingFor(a.modelID); ok {
		var cost float64
		for _, u := range acc.assistantUsage {
			cost += pricing.Cost(u)
		}
		if cost > 0 {
			result.Cost = &cost
		}
	}
	return result
}

type accumulator struct {
	first, last time.Time
	timestamps  int

	latestUsage      Usage
	latestUsageAt    time.Time
	latestUsageTimed bool

	assistantUsage []Usage
}

func (acc *accumulator) add(rec Record) {
	t, hasTime := rec.Timestamp.Time()
	if hasTime {
		if acc.timestamps == 0 || t.Before(acc.first) {
			acc.first = t
		}
		if acc.timestamps == 0 || t.After(acc.last) {
			acc.last = t
		}
		acc.timestamps++
	}

	if !rec.IsAssistant() || rec.Usage == nil {
		return
	}
	acc.assistantUsage = append(acc.assistantUsage, *rec.Usage)

	// The newest snapshot wins; equal or missing timestamps fall back to
	// file order, and a timed snapshot is never replaced by an untimed one.
	switch {
	case hasTime && (!acc.latestUsageTimed || !t.Before(acc.latestUsageAt)):
		acc.latestUsage, acc.latestUsageAt, acc.latestUsageTimed = *rec.Usage, t, true
	case !hasTime && !acc.latestUsageTimed:
		acc.latestUsage = *rec.Usage
	}
}

func (acc *accumulator) duration() time.Duration {
	if acc.timestamps < 2 {
		return 0
	}
	return acc.last.Sub(acc.first)
}
