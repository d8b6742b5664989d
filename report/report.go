// Package report renders itinerary results as the plain-text flight plan
// report.
//
// One block per result, in request order:
//
//	Flight 1: Calgary, Toronto, (Cost)
//	Path 1: Calgary -> Winnipeg -> Toronto. Time: 340 Cost: 730.00
//	Path 2: Calgary -> Toronto. Time: 300 Cost: 900.00
//
// A result without paths gets the single line "Path 1: No viable path found".
// Every block ends with a blank line.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/skyplan/itinerary"
)

// Write renders results to w. The first write error is returned.
func Write(w io.Writer, results []itinerary.Result) error {
	bw := bufio.NewWriter(w)
	for i, res := range results {
		writeResult(bw, i+1, res)
	}

	return bw.Flush()
}

// formatCost renders c with two decimals, rounding half away from zero on the
// shortest decimal form of c, so 125.505 prints as 125.51.
func formatCost(c float64) string {
	return decimal.NewFromFloat(c).StringFixed(2)
}

// writeResult renders one block; errors surface on Flush.
func writeResult(bw *bufio.Writer, index int, res itinerary.Result) {
	req := res.Request
	fmt.Fprintf(bw, "Flight %d: %s, %s, (%s)\n", index, req.Origin, req.Destination, req.Criterion)

	if !res.Found() {
		fmt.Fprintf(bw, "Path 1: %s\n", res.Message())
	}
	for j, p := range res.Paths {
		fmt.Fprintf(bw, "Path %d: %s. Time: %d Cost: %s\n", j+1, p, p.Duration, formatCost(p.Cost))
	}
	bw.WriteString("\n")
}
