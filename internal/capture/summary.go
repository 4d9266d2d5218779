package capture

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// WriteSummary prints a per-target statistics table for a finished
// capture session: probe count, packet loss, and the min / median /
// p95 / max of the successful round-trip times.
func WriteSummary(w io.Writer, rep Report, sentinel uint32) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IP\tHost\tPings\tLoss\tMin\tMedian\tP95\tMax")

	for _, t := range rep.Targets {
		var rtts []float64
		for _, p := range t.Pings {
			if p.RTT != sentinel {
				rtts = append(rtts, float64(p.RTT))
			}
		}
		sort.Float64s(rtts)

		total := len(t.Pings)
		if len(rtts) == 0 {
			loss := "-"
			if total > 0 {
				loss = "100.00 %"
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t-\t-\t-\t-\n", t.IP, t.HostName, total, loss)
			continue
		}

		loss := 100 * (1 - float64(len(rtts))/float64(total))
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f %%\t%.0f ms\t%.0f ms\t%.0f ms\t%.0f ms\n",
			t.IP, t.HostName, total, loss,
			rtts[0],
			rtts[len(rtts)/2],
			rtts[int(float64(len(rtts))*0.95)],
			rtts[len(rtts)-1],
		)
	}

	return tw.Flush()
}
