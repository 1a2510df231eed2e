package report

import (
	"errors"
	"fmt"
	"math"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ChartOptions size the rendered PNG.
type ChartOptions struct {
	Width  int
	Height int
	Slices int
}

// SavePNG renders value-versus-price curves for a spread of volatility columns.
func SavePNG(path string, s *Surface, opts ChartOptions) error {
	if s.Empty() {
		return errors.New("surface has no cells")
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	series := make([]chart.Series, 0, opts.Slices)
	for _, j := range sliceColumns(len(s.Volatilities), opts.Slices) {
		values := make([]float64, len(s.Prices))
		for i := range s.Prices {
			values[i] = s.Values[i][j]
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("vol %.1f%%", s.Volatilities[j]*100),
			XValues: append([]float64(nil), s.Prices...),
			YValues: values,
		})
	}

	valueFormatter := func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, "%.2f")
	}
	graph := chart.Chart{
		Title:  fmt.Sprintf("%s K=%.2f expiring %s", s.Kind, s.Strike, s.Expiry.UTC().Format("2006-01-02")),
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:           "Underlying price",
			ValueFormatter: valueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Black-Scholes value",
			ValueFormatter: valueFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

// sliceColumns picks up to max column indices evenly spread over n columns,
// always including the first and last.
func sliceColumns(n, max int) []int {
	if n <= 0 {
		return nil
	}
	if max <= 0 || n <= max {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if max == 1 {
		return []int{n / 2}
	}

	result := make([]int, 0, max)
	step := float64(n-1) / float64(max-1)
	for i := 0; i < max; i++ {
		idx := int(math.Round(step * float64(i)))
		if idx >= n {
			idx = n - 1
		}
		result = append(result, idx)
	}
	return result
}
