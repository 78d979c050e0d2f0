package eclair

import "sync/atomic"

// MetricsSnapshot is a point-in-time view of engine activity.
type MetricsSnapshot struct {
	EntriesEmitted   uint64
	ExitsEmitted     uint64
	ErrorsEmitted    uint64
	ManualEmitted    uint64
	Suppressed       uint64
	PrinterFallbacks uint64
}

// Metrics accumulates engine counters. All methods are safe for concurrent
// use.
type Metrics struct {
	entries          atomic.Uint64
	exits            atomic.Uint64
	errors           atomic.Uint64
	manual           atomic.Uint64
	suppressed       atomic.Uint64
	printerFallbacks atomic.Uint64
}

func (m *Metrics) recordEmit(kind RecordKind) {
	switch kind {
	case KindIn:
		m.entries.Add(1)
	case KindOut:
		m.exits.Add(1)
	case KindError:
		m.errors.Add(1)
	case KindManual:
		m.manual.Add(1)
	}
}

func (m *Metrics) recordSuppressed() {
	m.suppressed.Add(1)
}

func (m *Metrics) recordPrinterFallback() {
	m.printerFallbacks.Add(1)
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EntriesEmitted:   m.entries.Load(),
		ExitsEmitted:     m.exits.Load(),
		ErrorsEmitted:    m.errors.Load(),
		ManualEmitted:    m.manual.Load(),
		Suppressed:       m.suppressed.Load(),
		PrinterFallbacks: m.printerFallbacks.Load(),
	}
}
