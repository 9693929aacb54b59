package config

import "time"

// Options are the per-invocation overrides taken from the command line. They
// take precedence over the configuration file.
type Options struct {
	Keywords []string

	Tree          bool
	Watch         bool
	WatchInterval time.Duration
	// Interval is the CPU usage sampling window.
	Interval time.Duration
	// Insert fills Slot columns, in order, with kinds resolved by name.
	Insert []string

	// SortAsc and SortDesc request a sort column by (partial) name.
	SortAsc  string
	SortDesc string

	And  bool
	Or   bool
	Nand bool
	Nor  bool

	// Pager and Color are empty when not overridden.
	Pager PagerMode
	Color ColorMode
}
