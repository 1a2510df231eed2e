package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// WriteSummary prints the grid bounds and the centre and corner values.
func WriteSummary(w io.Writer, s *Surface, places int32) error {
	if s.Empty() {
		_, err := fmt.Fprintln(w, "empty surface")
		return err
	}

	fmt.Fprintf(w, "%s strike=%s cost=%s expiry=%s observed=%s rate=%s\n",
		s.Kind,
		formatFloat(s.Strike, places),
		formatFloat(s.Cost, places),
		s.Expiry.UTC().Format(time.RFC3339),
		s.ObservedAt.UTC().Format(time.RFC3339),
		formatFloat(s.RiskFreeRate, places),
	)
	fmt.Fprintf(w, "grid %dx%d prices %s..%s vols %s..%s\n\n",
		len(s.Prices), len(s.Volatilities),
		formatFloat(s.Prices[0], places), formatFloat(s.Prices[len(s.Prices)-1], places),
		formatFloat(s.Volatilities[0], places), formatFloat(s.Volatilities[len(s.Volatilities)-1], places),
	)

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Cell\tPrice\tVolatility\tValue")
	writeRow := func(label string, p Point) {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", label,
			formatFloat(p.Price, places),
			formatFloat(p.Volatility, places),
			formatFloat(p.Value, places),
		)
	}
	writeRow("centre", s.Center())
	corners := s.Corners()
	for i, label := range []string{"low/low", "low/high", "high/low", "high/high"} {
		writeRow(label, corners[i])
	}
	return writer.Flush()
}
