// Package export renders sweep results as standalone SVG line charts.
package export

import (
	"fmt"
	"html"
	"math"
	"os"
	"strings"

	"github.com/san-kum/sonarlab/internal/sweep"
)

type Options struct {
	Width       int
	Height      int
	StrokeColor string
	Output      int // index of the plotted output
}

func DefaultOptions() Options {
	return Options{Width: 640, Height: 400, StrokeColor: "#00d7ff"}
}

const margin = 48.0

// SweepToSVG plots one output of res against the swept parameter.
// Non-finite values break the line. It returns "" when fewer than two
// points are finite.
func SweepToSVG(res *sweep.Result, opts Options) string {
	if res == nil || opts.Output < 0 || opts.Output >= len(res.Outputs) {
		return ""
	}
	xs := res.Xs()
	ys := res.Series(opts.Output)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	n := 0
	for i := range xs {
		if !finite(ys[i]) {
			continue
		}
		n++
		minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
		minY, maxY = math.Min(minY, ys[i]), math.Max(maxY, ys[i])
	}
	if n < 2 {
		return ""
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	w, h := float64(opts.Width), float64(opts.Height)
	plotW, plotH := w-2*margin, h-2*margin
	out := res.Outputs[opts.Output]

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#444" fill="none"><rect x="%.0f" y="%.0f" width="%.0f" height="%.0f"/></g>
<g fill="#aaa" font-family="monospace" font-size="11">
<text x="%.0f" y="%.0f">%s</text>
<text x="%.0f" y="%.0f" text-anchor="middle">%s [%s]</text>
<text x="4" y="%.0f">%.4g</text>
<text x="4" y="%.0f">%.4g</text>
<text x="%.0f" y="%.0f">%.4g</text>
<text x="%.0f" y="%.0f" text-anchor="end">%.4g</text>
<text x="%.0f" y="16" text-anchor="end">%s [%s]</text>
</g>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		opts.Width, opts.Height, opts.Width, opts.Height,
		margin, margin, plotW, plotH,
		margin, margin-8, html.EscapeString(res.Formula),
		w/2, h-8, html.EscapeString(res.Param), html.EscapeString(res.ParamUnit),
		margin, maxY,
		h-margin, minY,
		margin, h-margin+14, minX,
		w-margin, h-margin+14, maxX,
		w-margin, html.EscapeString(out.Name), html.EscapeString(out.Unit),
		opts.StrokeColor))

	pen := "M"
	for i := range xs {
		if !finite(ys[i]) {
			pen = "M"
			continue
		}
		x := margin + (xs[i]-minX)/rangeX*plotW
		y := margin + plotH - (ys[i]-minY)/rangeY*plotH
		sb.WriteString(fmt.Sprintf("%s%.1f,%.1f ", pen, x, y))
		pen = "L"
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WriteSweepSVG renders res and writes it to path.
func WriteSweepSVG(path string, res *sweep.Result, opts Options) error {
	svg := SweepToSVG(res, opts)
	if svg == "" {
		return fmt.Errorf("export %s: not enough finite points to plot", res.Formula)
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
