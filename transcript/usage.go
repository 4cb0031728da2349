package transcript

import (
	"encoding/json"
	"math"
)

// DefaultContextLimit is the token count treated as a full context window.
const DefaultContextLimit = 160000

// Usage is the token usage reported on one assistant message.
type Usage struct {
	InputTokens              int64
	OutputTokens             int64
	CacheReadInputTokens     int64
	CacheCreationInputTokens int64
}

// Total is every token that occupies the context window.
func (u Usage) Total() int64 {
	return u.InputTokens + u.OutputTokens + u.CacheReadInputTokens + u.CacheCreationInputTokens
}

// UnmarshalJSON decodes the usage object leniently: counts of the wrong type
// are zero.
func (u *Usage) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*u = Usage{}
		return nil
	}
	*u = Usage{
		InputTokens:              tokenCount(raw["input_tokens"]),
		OutputTokens:             tokenCount(raw["output_tokens"]),
		CacheReadInputTokens:     tokenCount(raw["cache_read_input_tokens"]),
		CacheCreationInputTokens: tokenCount(raw["cache_creation_input_tokens"]),
	}
	return nil
}

func tokenCount(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || f < 0 || math.IsNaN(f) {
		return 0
	}
	return int64(f)
}

// ContextTier is the severity bucket of a context percentage.
type ContextTier int

const (
	ContextLow ContextTier = iota
	ContextMedium
	ContextHigh
	ContextCritical
)

// ContextUsage is how much of the context window the conversation occupies.
type ContextUsage struct {
	Tokens  int64
	Percent int
}

// NewContextUsage computes the percentage of limit used by tokens, clamped
// to [0,100] and rounded to the nearest integer.
func NewContextUsage(tokens int64, limit int) ContextUsage {
	if limit <= 0 {
		limit = DefaultContextLimit
	}
	pct := float64(tokens) * 100 / float64(limit)
	pct = math.Max(0, math.Min(100, pct))
	return ContextUsage{Tokens: tokens, Percent: int(math.Round(pct))}
}

// Tier is critical at 90% and above, high at 70%, medium at 50%.
func (c ContextUsage) Tier() ContextTier {
	switch {
	case c.Percent >= 90:
		return ContextCritical
	case c.Percent >= 70:
		return ContextHigh
	case c.Percent >= 50:
		return ContextMedium
	default:
		return ContextLow
	}
}
