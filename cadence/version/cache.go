package version

import "sync"

// ParsedConstraint is the cached outcome of parsing one raw constraint
// string: its interval and the descriptors derived from it.
type ParsedConstraint struct {
	Raw         string
	Interval    Interval
	Descriptors Descriptors
}

// ConstraintCache memoizes parse results keyed on the raw constraint string.
// The same constraint recurs across many dependency edges, so each distinct
// string is parsed at most once per batch. Safe for concurrent use.
type ConstraintCache struct {
	parser  ConstraintParser
	lock    sync.RWMutex
	entries map[string]ParsedConstraint
}

func NewConstraintCache(parser ConstraintParser) *ConstraintCache {
	return &ConstraintCache{
		parser:  parser,
		entries: make(map[string]ParsedConstraint),
	}
}

// Get returns the parsed constraint for raw, parsing it on first sight.
// Parse failures are degraded to the empty interval.
func (c *ConstraintCache) Get(raw string) ParsedConstraint {
	c.lock.RLock()
	entry, exists := c.entries[raw]
	c.lock.RUnlock()
	if exists {
		return entry
	}

	interval := ParseOrEmpty(c.parser, raw)
	entry = ParsedConstraint{
		Raw:         raw,
		Interval:    interval,
		Descriptors: Describe(interval),
	}

	c.lock.Lock()
	c.entries[raw] = entry
	c.lock.Unlock()

	return entry
}

// Populate parses every given constraint up front, so that later concurrent
// readers only take the read lock.
func (c *ConstraintCache) Populate(raws []string) {
	for _, raw := range raws {
		c.Get(raw)
	}
}

// Len returns the number of distinct constraints seen so far.
func (c *ConstraintCache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.entries)
}
