package vector

// OptionsSnapshot is a read-only view of the resolved Options for tests.
type OptionsSnapshot struct {
	Open      string
	Close     string
	Separator string
	Precision int
}

// GatherOptionsSnapshot exposes gatherOptions to vector_test.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{
		Open:      o.open,
		Close:     o.close,
		Separator: o.separator,
		Precision: o.precision,
	}
}
