package eclair

import (
	"fmt"
	"net/http"
)

// MetricsSource supplies engine counters to an exporter. *CallLogger
// implements it.
type MetricsSource interface {
	Metrics() MetricsSnapshot
}

// MetricsExporter exposes engine counters via a Prometheus-style HTTP handler.
// Mount it on any mux, for example http.Handle("/metrics", exporter).
type MetricsExporter struct {
	source MetricsSource
}

// NewMetricsExporter creates an exporter that reads counters from source on
// every request.
func NewMetricsExporter(source MetricsSource) *MetricsExporter {
	return &MetricsExporter{source: source}
}

// ServeHTTP renders the counters using Prometheus exposition format.
func (e *MetricsExporter) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	snapshot := e.source.Metrics()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintln(w, "# HELP eclair_entries_emitted_total Total method entry records emitted")
	fmt.Fprintln(w, "# TYPE eclair_entries_emitted_total counter")
	fmt.Fprintf(w, "eclair_entries_emitted_total %d\n", snapshot.EntriesEmitted)

	fmt.Fprintln(w, "# HELP eclair_exits_emitted_total Total method exit records emitted")
	fmt.Fprintln(w, "# TYPE eclair_exits_emitted_total counter")
	fmt.Fprintf(w, "eclair_exits_emitted_total %d\n", snapshot.ExitsEmitted)

	fmt.Fprintln(w, "# HELP eclair_errors_emitted_total Total error records emitted")
	fmt.Fprintln(w, "# TYPE eclair_errors_emitted_total counter")
	fmt.Fprintf(w, "eclair_errors_emitted_total %d\n", snapshot.ErrorsEmitted)

	fmt.Fprintln(w, "# HELP eclair_manual_emitted_total Total manual records emitted")
	fmt.Fprintln(w, "# TYPE eclair_manual_emitted_total counter")
	fmt.Fprintf(w, "eclair_manual_emitted_total %d\n", snapshot.ManualEmitted)

	fmt.Fprintln(w, "# HELP eclair_suppressed_total Total records suppressed by level gating")
	fmt.Fprintln(w, "# TYPE eclair_suppressed_total counter")
	fmt.Fprintf(w, "eclair_suppressed_total %d\n", snapshot.Suppressed)

	fmt.Fprintln(w, "# HELP eclair_printer_fallbacks_total Total printer failures recovered with the builtin format")
	fmt.Fprintln(w, "# TYPE eclair_printer_fallbacks_total counter")
	fmt.Fprintf(w, "eclair_printer_fallbacks_total %d\n", snapshot.PrinterFallbacks)
}
