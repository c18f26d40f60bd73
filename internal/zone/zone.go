// Package zone resolves which availability zone the instance lands in. An
// explicit allow-list of zone suffixes always wins; otherwise the candidates
// are derived from the zones the provider reports as available.
package zone

import (
	"errors"
	"math/rand/v2"
)

// ErrNoZones reports an empty candidate set. It cannot happen when the
// provider reports at least one available zone.
var ErrNoZones = errors.New("no availability zone candidates")

// Candidates resolves the eligible zone suffixes. A non-empty allowList fully
// overrides discovery. Otherwise each available zone name contributes its
// last character ("eu-west-1a" -> "a"), in provider order.
func Candidates(allowList, availableZones []string) ([]string, error) {
	if len(allowList) > 0 {
		return allowList, nil
	}

	suffixes := make([]string, 0, len(availableZones))
	for _, name := range availableZones {
		if name == "" {
			continue
		}
		suffixes = append(suffixes, name[len(name)-1:])
	}
	if len(suffixes) == 0 {
		return nil, ErrNoZones
	}
	return suffixes, nil
}

// Pick chooses one candidate uniformly at random and joins it to the region,
// producing a full zone name. The random source is supplied by the caller:
// the program seeds it once per run, tests pin it.
func Pick(r *rand.Rand, region string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoZones
	}
	return region + candidates[r.IntN(len(candidates))], nil
}

// Select resolves the candidates and picks the zone in one step.
func Select(r *rand.Rand, region string, allowList, availableZones []string) (string, error) {
	candidates, err := Candidates(allowList, availableZones)
	if err != nil {
		return "", err
	}
	return Pick(r, region, candidates)
}
