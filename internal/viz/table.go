package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/sonarlab/internal/formula"
)

// FormulaTable lists specs as name, category, unit and parameter columns.
func FormulaTable(specs []*formula.Spec) string {
	rows := make([][]string, 0, len(specs))
	for _, s := range specs {
		names := make([]string, len(s.Params))
		for i, p := range s.Params {
			names[i] = p.Name
		}
		rows = append(rows, []string{s.Name, s.Category, s.Unit(), strings.Join(names, ", ")})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Subtle).
		Headers("FORMULA", "CATEGORY", "UNIT", "PARAMS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Title.Padding(0, 1)
			case col == 0:
				return Label.Padding(0, 1)
			default:
				return Subtle.Padding(0, 1)
			}
		})
	return t.String()
}

// FormatValue prints v with enough digits for the catalog's magnitudes.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

// SpecPanel describes a spec: summary, parameters with units, defaults and
// declared windows, outputs and citation.
func SpecPanel(s *formula.Spec) string {
	var b strings.Builder
	b.WriteString(Title.Render(s.Name) + "  " + Subtle.Render(s.Category) + "\n")
	if s.Summary != "" {
		b.WriteString(Label.Render(s.Summary) + "\n")
	}
	b.WriteString("\n")
	for _, p := range s.Params {
		window := "unbounded"
		if p.Range != nil {
			window = p.Range.String()
		}
		fmt.Fprintf(&b, "  %s %s  %s  %s\n",
			Label.Render(fmt.Sprintf("%-22s", p.Name)),
			Subtle.Render(fmt.Sprintf("%-8s", p.Unit)),
			Value.Render(fmt.Sprintf("%10s", FormatValue(p.Default))),
			Subtle.Render(window))
	}
	b.WriteString("\n")
	for _, o := range s.Outputs {
		fmt.Fprintf(&b, "  -> %s %s\n", Label.Render(o.Name), Subtle.Render("["+o.Unit+"]"))
	}
	if s.Correctable {
		b.WriteString(Subtle.Render("  accepts a depth/pressure correction") + "\n")
	}
	if s.Citation != "" {
		b.WriteString("\n" + KeyHint.Render(s.Citation) + "\n")
	}
	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// ResultPanel shows the outputs of one evaluation and any diagnostics.
func ResultPanel(s *formula.Spec, args []float64, res formula.Result) string {
	var b strings.Builder
	b.WriteString(Title.Render(s.Name) + "\n")
	for i, p := range s.Params {
		if i < len(args) {
			fmt.Fprintf(&b, "  %s = %s %s\n", Label.Render(p.Name), FormatValue(args[i]), Subtle.Render(p.Unit))
		}
	}
	b.WriteString("\n")
	for i, o := range s.Outputs {
		if i < len(res.Outputs) {
			fmt.Fprintf(&b, "  %s = %s %s\n", Label.Render(o.Name), Value.Render(FormatValue(res.Outputs[i])), Subtle.Render(o.Unit))
		}
	}
	for _, d := range res.Diagnostics {
		b.WriteString("  " + Warning.Render("! ") + Subtle.Render(d.String()) + "\n")
	}
	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}
