package statusline

import (
	"github.com/muesli/termenv"
)

// Tier names a color role on the status line. Formatting code picks tiers;
// only the palette knows escape sequences.
type Tier int

const (
	TierPath Tier = iota
	TierRepo
	TierWorktree
	TierModel
	TierMuted
	TierSeparator
	TierGood
	TierWarn
	TierAlert
	TierBad
)

// tierColors are ANSI color numbers; 0-15 render as basic colors, the rest
// as 256-color sequences.
var tierColors = map[Tier]string{
	TierPath:      "6",   // cyan
	TierRepo:      "2",   // green
	TierWorktree:  "5",   // magenta
	TierModel:     "208", // orange
	TierMuted:     "245", // light gray
	TierSeparator: "8",   // dark gray
	TierGood:      "2",
	TierWarn:      "3",
	TierAlert:     "208",
	TierBad:       "1",
}

// Palette renders text in a tier's color.
type Palette struct {
	profile termenv.Profile
	colors  map[Tier]termenv.Color
}

// NewPalette returns a 256-color palette, or a plain-text one when color is
// disabled or NO_COLOR is set. The status line is never written to a
// terminal directly, so the profile is not detected from stdout.
func NewPalette(color bool) *Palette {
	profile := termenv.ANSI256
	if !color || termenv.EnvNoColor() {
		profile = termenv.Ascii
	}

	p := &Palette{profile: profile, colors: make(map[Tier]termenv.Color, len(tierColors))}
	for tier, c := range tierColors {
		p.colors[tier] = profile.Color(c)
	}
	return p
}

// Paint colors s with the tier's color.
func (p *Palette) Paint(t Tier, s string) string {
	if s == "" {
		return ""
	}
	return p.profile.String(s).Foreground(p.colors[t]).String()
}
