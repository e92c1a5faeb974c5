package display

import (
	"fmt"
	"io"
	"time"

	"github.com/dando385/gas-watcher/internal/stats"
)

// SummaryFormatter prints the end-of-session report of a bounded watch.
type SummaryFormatter struct {
	Report stats.Report
}

func (f *SummaryFormatter) Format(w io.Writer) error {
	r := f.Report
	fmt.Fprintf(w, "\n%s %d polls, %d ok, %d failed, %d alerts\n",
		bold("Summary:"), r.Polls, r.Successes, r.Failures, r.Alerts)
	if r.Successes == 0 {
		return nil
	}
	fmt.Fprintf(w, "  Price:   min %.2f / avg %.2f / max %.2f gwei\n", r.MinGwei, r.MeanGwei, r.MaxGwei)
	_, err := fmt.Fprintf(w, "  Latency: p50 %s / p95 %s / max %s\n",
		formatLatency(r.Latency.P50), formatLatency(r.Latency.P95), formatLatency(r.Latency.Max))
	return err
}

func formatLatency(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
