package engine

// Stats is a read-only view of a session's counters. Change-set counts
// reflect the current snapshots and configuration; message counters
// accumulate for the lifetime of the session until explicitly reset.
type Stats struct {
	TotalParameters int
	ContinuousCount int
	DiscreteCount   int
	UnchangedCount  int
	MessagesSent    uint64
	MessagesSaved   uint64
}
