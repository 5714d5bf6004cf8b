package version

// Descriptors classify the intent of a constraint from the shape of its
// interval. Openness is probed by membership of synthetic sentinel versions,
// which relies on Inf ordering above every finite component.
type Descriptors struct {
	// Empty: the constraint parsed to an interval accepting no versions.
	Empty bool `json:"empty"`
	// Dev: the whole interval sits below the first stable version (1.0.0).
	Dev bool `json:"dev"`
	// Major: no upper bound on major, an arbitrarily distant future major
	// release would be accepted.
	Major bool `json:"major"`
	// Minor: any future minor within the lower bound's major line is accepted.
	Minor bool `json:"minor"`
	// Patch: any future patch within the lower bound's minor line is accepted.
	Patch bool `json:"patch"`
}

// Describe derives the boolean descriptors for a parsed constraint interval.
// Every descriptor of an empty interval is false except Empty itself.
func Describe(interval Interval) Descriptors {
	if interval.IsEmpty() {
		return Descriptors{Empty: true}
	}

	lower, err := interval.LowestBound()
	if err != nil {
		// unreachable: emptiness was checked above
		return Descriptors{Empty: true}
	}
	upper, err := interval.HighestBound()
	if err != nil {
		return Descriptors{Empty: true}
	}

	return Descriptors{
		Major: interval.Contains(Version{Major: Inf}),
		Minor: interval.Contains(Version{Major: lower.Major, Minor: Inf}),
		Patch: interval.Contains(Version{Major: lower.Major, Minor: lower.Minor, Patch: Inf}),
		Dev:   upper.Compare(Version{Major: 1}) <= 0,
	}
}
