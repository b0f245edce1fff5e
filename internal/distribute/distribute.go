// Package distribute builds the plan that pairs each destination file
// with the source file that will overwrite it.
package distribute

import "errors"

var (
	ErrNoSources      = errors.New("no source files found with the given extension")
	ErrNoDestinations = errors.New("no destination files found with the given extension")
)

// Assignment pairs one destination file with its replacement source.
type Assignment struct {
	Source string
	Dest   string
}

// Plan is an ordered list of assignments, executed left to right.
type Plan []Assignment

// Single assigns the same source file to every destination.
func Single(source string, dests []string) (Plan, error) {
	if len(dests) == 0 {
		return nil, ErrNoDestinations
	}

	plan := make(Plan, 0, len(dests))
	for _, dest := range dests {
		plan = append(plan, Assignment{Source: source, Dest: dest})
	}
	return plan, nil
}

// Multi partitions the destinations into contiguous near-equal groups,
// one group per source, in source order. With m destinations and n
// sources the first m%n sources receive one destination more than the
// rest, so no two group sizes differ by more than one. When n > m the
// trailing sources receive no destinations at all.
func Multi(sources, dests []string) (Plan, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if len(dests) == 0 {
		return nil, ErrNoDestinations
	}

	base := len(dests) / len(sources)
	remainder := len(dests) % len(sources)

	plan := make(Plan, 0, len(dests))
	next := 0
	for i, source := range sources {
		count := base
		if i < remainder {
			count++
		}
		for j := 0; j < count; j++ {
			plan = append(plan, Assignment{Source: source, Dest: dests[next]})
			next++
		}
	}
	return plan, nil
}
