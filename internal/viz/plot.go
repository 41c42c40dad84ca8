package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sonarlab/internal/sweep"
)

type PlotOptions struct {
	Height int
	Width  int
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Height: 12, Width: 72}
}

// PlotSweep draws output k of a sweep. Non-finite values become gaps.
func PlotSweep(res *sweep.Result, k int, opts PlotOptions) (string, error) {
	if k < 0 || k >= len(res.Outputs) {
		return "", fmt.Errorf("viz: output %d out of range for %s", k, res.Formula)
	}

	data := res.Series(k)
	finite := 0
	for i, v := range data {
		if math.IsInf(v, 0) {
			data[i] = math.NaN()
		}
		if !math.IsNaN(data[i]) {
			finite++
		}
	}
	if finite == 0 {
		return "", fmt.Errorf("viz: %s has no finite %s values", res.Formula, res.Outputs[k].Name)
	}

	xs := res.Xs()
	out := res.Outputs[k]
	caption := fmt.Sprintf("%s [%s] vs %s %g..%g %s",
		out.Name, out.Unit, res.Param, xs[0], xs[len(xs)-1], res.ParamUnit)

	graph := asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	)
	return graph, nil
}
