package service

// CounterStore maintains the per-day reservation counters the dashboard
// reads.
type CounterStore interface {
	RecordCreated(date, status string) error
	RecordStatusChange(date, status, prevStatus string) error
}
