/*
Package cadence analyzes release cadence across a package registry snapshot:
it classifies every release of the packages the ecosystem depends on, parses
the dependency constraints pointing at them, and resolves each constraint to
the release it would install.
*/
package cadence

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/evolens/cadence/cadence/dataset"
	"github.com/evolens/cadence/cadence/event"
	"github.com/evolens/cadence/cadence/event/monitor"
	"github.com/evolens/cadence/cadence/history"
	"github.com/evolens/cadence/cadence/release"
	"github.com/evolens/cadence/cadence/result"
	"github.com/evolens/cadence/cadence/selection"
	"github.com/evolens/cadence/cadence/version"
	"github.com/evolens/cadence/internal/bus"
	"github.com/evolens/cadence/internal/log"
)

// AnalyzerConfig controls one analysis run.
type AnalyzerConfig struct {
	// Ecosystem selects the constraint grammar and spam filters.
	Ecosystem version.Ecosystem

	// Workers is the number of concurrent classification/resolution
	// goroutines; values below 1 fall back to the CPU count.
	Workers int

	// MinDependents drops targets depended upon by fewer distinct packages.
	MinDependents int

	// ActiveSince drops packages with no release on or after this date.
	// The zero time disables the filter.
	ActiveSince time.Time
}

func (cfg AnalyzerConfig) workers() int {
	if cfg.Workers < 1 {
		return runtime.NumCPU()
	}
	return cfg.Workers
}

// Analyze runs the full pipeline over a registry snapshot. The returned
// result is deterministic: repeated runs over the same input are identical
// regardless of worker count.
func Analyze(cfg AnalyzerConfig, releases []dataset.ReleaseRecord, deps []dataset.DependencyRecord) (*result.Result, error) {
	if _, err := version.GetParser(cfg.Ecosystem); err != nil {
		return nil, err
	}

	releases = dataset.DropSpam(releases, cfg.Ecosystem)
	histories := dataset.FilterActive(dataset.BuildHistories(releases), cfg.ActiveSince)

	edges := dataset.FilterEdges(deps, histories)
	required := dataset.RequiredTargets(edges, cfg.MinDependents)
	edges = dataset.SelectEdges(edges, required)
	log.Infof("analyzing %d packages across %d dependency edges", required.Size(), len(edges))

	targets := make([]release.History, 0, required.Size())
	for _, h := range histories {
		if required.Has(h.Package) {
			targets = append(targets, h)
		}
	}

	packagesClassified, constraintsParsed, pairsResolved := trackAnalysis()

	classifiedByPkg := classifyAll(cfg.workers(), targets, packagesClassified)

	constraintsByTarget, distinct := groupConstraints(edges)
	cache := version.NewConstraintCache(version.MustGetParser(cfg.Ecosystem))
	constraintsParsed.Total = int64(len(distinct))
	for _, raw := range distinct {
		cache.Get(raw)
		constraintsParsed.N++
	}
	constraintsParsed.SetCompleted()

	resolutions := resolveAll(cfg.workers(), classifiedByPkg, constraintsByTarget, cache, pairsResolved)

	res := &result.Result{
		Ecosystem:   cfg.Ecosystem,
		Classified:  flattenClassified(classifiedByPkg),
		Resolutions: resolutions,
		Edges:       joinEdges(edges, resolutions),
	}
	return res, nil
}

func trackAnalysis() (*progress.Manual, *progress.Manual, *progress.Manual) {
	packagesClassified := progress.Manual{}
	constraintsParsed := progress.Manual{}
	pairsResolved := progress.Manual{}

	bus.Publish(partybus.Event{
		Type: event.AnalysisStarted,
		Value: monitor.Analysis{
			PackagesClassified: progress.Monitorable(&packagesClassified),
			ConstraintsParsed:  progress.Monitorable(&constraintsParsed),
			PairsResolved:      progress.Monitorable(&pairsResolved),
		},
	})
	return &packagesClassified, &constraintsParsed, &pairsResolved
}

func classifyAll(workers int, targets []release.History, tracker *progress.Manual) map[string][]release.ClassifiedRelease {
	tracker.Total = int64(len(targets))

	jobs := make(chan release.History)
	classified := make(map[string][]release.ClassifiedRelease, len(targets))

	var lock sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for h := range jobs {
				labeled := history.Classify(h)
				lock.Lock()
				classified[h.Package] = labeled
				tracker.N++
				lock.Unlock()
			}
		}()
	}
	for _, h := range targets {
		jobs <- h
	}
	close(jobs)
	wg.Wait()
	tracker.SetCompleted()

	return classified
}

// groupConstraints returns the distinct constraints per target plus the
// overall distinct constraint strings, both sorted.
func groupConstraints(edges []dataset.Edge) (map[string][]string, []string) {
	perTarget := make(map[string]map[string]struct{})
	all := make(map[string]struct{})
	for _, e := range edges {
		raws, exists := perTarget[e.Target]
		if !exists {
			raws = make(map[string]struct{})
			perTarget[e.Target] = raws
		}
		raws[e.Constraint] = struct{}{}
		all[e.Constraint] = struct{}{}
	}

	byTarget := make(map[string][]string, len(perTarget))
	for target, raws := range perTarget {
		sorted := make([]string, 0, len(raws))
		for raw := range raws {
			sorted = append(sorted, raw)
		}
		sort.Strings(sorted)
		byTarget[target] = sorted
	}

	distinct := make([]string, 0, len(all))
	for raw := range all {
		distinct = append(distinct, raw)
	}
	sort.Strings(distinct)

	return byTarget, distinct
}

func resolveAll(workers int, classifiedByPkg map[string][]release.ClassifiedRelease, constraintsByTarget map[string][]string, cache *version.ConstraintCache, tracker *progress.Manual) []selection.Resolution {
	targets := make([]string, 0, len(constraintsByTarget))
	var pairs int64
	for target, raws := range constraintsByTarget {
		targets = append(targets, target)
		pairs += int64(len(raws))
	}
	sort.Strings(targets)
	tracker.Total = pairs

	jobs := make(chan string)
	var resolutions []selection.Resolution

	var lock sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for target := range jobs {
				resolved := selection.Resolve(target, classifiedByPkg[target], constraintsByTarget[target], cache)
				lock.Lock()
				resolutions = append(resolutions, resolved...)
				tracker.N += int64(len(resolved))
				lock.Unlock()
			}
		}()
	}
	for _, target := range targets {
		jobs <- target
	}
	close(jobs)
	wg.Wait()
	tracker.SetCompleted()

	sort.Slice(resolutions, func(i, j int) bool {
		if resolutions[i].Target != resolutions[j].Target {
			return resolutions[i].Target < resolutions[j].Target
		}
		return resolutions[i].Constraint < resolutions[j].Constraint
	})
	return resolutions
}

func flattenClassified(classifiedByPkg map[string][]release.ClassifiedRelease) []release.ClassifiedRelease {
	packages := make([]string, 0, len(classifiedByPkg))
	for pkg := range classifiedByPkg {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)

	var flat []release.ClassifiedRelease
	for _, pkg := range packages {
		flat = append(flat, classifiedByPkg[pkg]...)
	}
	return flat
}

func joinEdges(edges []dataset.Edge, resolutions []selection.Resolution) []result.ResolvedEdge {
	type pair struct {
		target     string
		constraint string
	}
	byPair := make(map[pair]selection.Resolution, len(resolutions))
	for _, res := range resolutions {
		byPair[pair{res.Target, res.Constraint}] = res
	}

	resolved := make([]result.ResolvedEdge, 0, len(edges))
	for _, e := range edges {
		res := byPair[pair{e.Target, e.Constraint}]
		resolved = append(resolved, result.ResolvedEdge{
			Edge:         e,
			Interval:     res.Interval,
			Descriptors:  res.Descriptors,
			SelectedRank: res.SelectedRank,
		})
	}
	return resolved
}
