package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Subtle      lipgloss.Style
	Value       lipgloss.Style
	Label       lipgloss.Style
	KeyHint     lipgloss.Style
	Warning     lipgloss.Style
	Failure     lipgloss.Style
	HeaderStyle lipgloss.Style

	SparkHigh lipgloss.Style
	SparkMid  lipgloss.Style
	SparkLow  lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 1)
	Title = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	Value = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	Label = lipgloss.NewStyle().Foreground(t.Text)
	KeyHint = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
	Warning = lipgloss.NewStyle().Bold(true).Foreground(t.Warning)
	Failure = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Muted)

	SparkHigh = lipgloss.NewStyle().Foreground(t.Success)
	SparkMid = lipgloss.NewStyle().Foreground(t.Warning)
	SparkLow = lipgloss.NewStyle().Foreground(t.Error)
}

// Sparkline renders a one-line preview of values, sampled to width.
// Non-finite values are drawn as gaps.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	rng := hi - lo
	if rng == 0 || math.IsInf(rng, 0) {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			result.WriteRune(' ')
			continue
		}
		norm := (v - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(SparkHigh.Render(c))
		case norm > 0.3:
			result.WriteString(SparkMid.Render(c))
		default:
			result.WriteString(SparkLow.Render(c))
		}
	}
	return result.String()
}

// Separator draws a muted divider of the given width.
func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-2)
	return Subtle.Render(left + " ◆ " + right)
}
