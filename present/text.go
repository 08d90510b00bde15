package present

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pagerank/matrix"
	"github.com/katalvlaran/pagerank/rank"
)

// shades maps a normalized [0,1] value to a heat-map cell, light to dark.
var shades = []string{"  ", "░░", "▒▒", "▓▓", "██"}

// Text is the built-in text Presenter. It always works — no display, no
// plotting backend — which makes it the guaranteed fallback renderer.
type Text struct {
	rankStyle  lipgloss.Style
	labelStyle lipgloss.Style
	scoreStyle lipgloss.Style
	barStyle   lipgloss.Style
}

// NewText returns a Text presenter with the standard styling.
func NewText() *Text {
	return &Text{
		rankStyle:  lipgloss.NewStyle().Bold(true),
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		scoreStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		barStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// RenderRanked renders pairs as "rank - label (score)" lines, one per entity,
// each followed by a bar proportional to its share of the best score.
//
// Layout mirrors the classic text fallback: rank numbers are right-padded to
// the widest rank, labels to the widest label, scores printed at
// opts.Precision digits.
func (t *Text) RenderRanked(pairs []rank.Pair, opts RenderOptions) string {
	if len(pairs) == 0 {
		return ""
	}
	o := opts.normalized()

	numberJust := len(strconv.Itoa(len(pairs)))
	labelJust := 0
	best := math.Inf(-1)
	for _, p := range pairs {
		if len(p.Label) > labelJust {
			labelJust = len(p.Label)
		}
		if p.Score > best {
			best = p.Score
		}
	}

	var b strings.Builder
	for i, p := range pairs {
		number := fmt.Sprintf("%-*d", numberJust, i+1)
		label := fmt.Sprintf("%-*s", labelJust, p.Label)
		b.WriteString(t.rankStyle.Render(number))
		b.WriteString(" - ")
		b.WriteString(t.labelStyle.Render(label))
		if !o.HideValues {
			b.WriteString(t.scoreStyle.Render(fmt.Sprintf(" (%.*f)", o.Precision, p.Score)))
		}
		if bar := barFor(p.Score, best, o.Width); bar != "" {
			b.WriteString(" ")
			b.WriteString(t.barStyle.Render(bar))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// barFor sizes a bar proportional to score/best, clamped to [0,width].
// Non-finite or non-positive inputs render no bar at all.
func barFor(score, best float64, width int) string {
	if !isFinite(score) || !isFinite(best) || best <= 0 || score <= 0 {
		return ""
	}
	n := int(math.Round(score / best * float64(width)))
	if n <= 0 {
		return ""
	}
	if n > width {
		n = width
	}

	return strings.Repeat("█", n)
}

// RenderMatrix renders m as a heat map: one shade cell per entry, scaled to
// the matrix min/max, with right-aligned row labels when provided. With
// values enabled (the default), each cell shows the number at opts.Precision
// digits instead of a shade.
func (t *Text) RenderMatrix(m *matrix.Dense, labels []string, opts RenderOptions) string {
	if m == nil {
		return ""
	}
	o := opts.normalized()

	lo, hi := valueRange(m)
	labelJust := 0
	for _, l := range labels {
		if len(l) > labelJust {
			labelJust = len(l)
		}
	}

	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		if labelJust > 0 {
			name := ""
			if i < len(labels) {
				name = labels[i]
			}
			b.WriteString(t.labelStyle.Render(fmt.Sprintf("%*s", labelJust, name)))
			b.WriteString(" ")
		}
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				continue
			}
			if o.HideValues {
				b.WriteString(shadeFor(v, lo, hi))
			} else {
				if j > 0 {
					b.WriteString(" ")
				}
				b.WriteString(t.scoreStyle.Render(fmt.Sprintf("%.*f", o.Precision, v)))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// valueRange scans for the finite min and max of m, defaulting to [0,1] when
// the matrix holds no finite values at all.
func valueRange(m *matrix.Dense) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil || !isFinite(v) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo > hi { // nothing finite found
		return 0, 1
	}

	return lo, hi
}

// shadeFor maps v onto the shade scale between lo and hi.
func shadeFor(v, lo, hi float64) string {
	if !isFinite(v) {
		return "??"
	}
	if hi == lo {
		return shades[0]
	}
	idx := int((v - lo) / (hi - lo) * float64(len(shades)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(shades) {
		idx = len(shades) - 1
	}

	return shades[idx]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
