package csa

import (
	"github.com/mtransit/csa-profile/profile"
	"github.com/mtransit/csa-profile/timetable"
)

/**
 * Compute runs a single backward sweep over tt.Connections (already sorted by
 * descending departure time) and returns, for every stop, its Pareto-optimal
 * profile list toward the given destinations. Multiple destinations are
 * supported by seeding each with its own sentinel profile and by folding all
 * of their incoming footpaths into one final-footpath table keyed by source
 * stop.
 */
func Compute(tt *timetable.Timetable, destinations []int) [][]profile.Profile {
	profiles := make([][]profile.Profile, len(tt.Stops))
	for i := range profiles {
		profiles[i] = []profile.Profile{}
	}
	for _, d := range destinations {
		profiles[d], _ = profile.Incorporate(profiles[d], profile.Sentinel())
	}

	finalFootpaths := finalFootpathDurations(tt, destinations)
	arrTimeWithTrip := make(map[int]timetable.Time, len(tt.Trips))

	for i, c := range tt.Connections {
		candidateArr, haveCandidate := bestArrival(c, finalFootpaths, arrTimeWithTrip, profiles)

		if haveCandidate {
			candidate := profile.Profile{
				OutConnection:    i,
				HasOutConnection: true,
				DepTime:          c.DepTime,
				ArrTime:          candidateArr,
			}

			var added bool
			profiles[c.DepStop], added = profile.Incorporate(profiles[c.DepStop], candidate)

			// Anyone who can walk to c.DepStop before its departure could
			// board this same connection from further away.
			for _, fp := range tt.Footpaths[c.DepStop] {
				if !added || fp.Duration >= candidate.DepTime {
					continue
				}
				walked := profile.Profile{
					OutConnection:    i,
					HasOutConnection: true,
					DepTime:          candidate.DepTime - fp.Duration,
					ArrTime:          candidate.ArrTime,
				}
				profiles[fp.From], _ = profile.Incorporate(profiles[fp.From], walked)
			}
		} else {
			// No way to reach a destination past c: skip it.
			continue
		}

		// Updated unconditionally: a later-scanned (earlier-departing)
		// connection on the same trip must see this leg's arrival even when
		// it didn't improve the stop's own profile list.
		arrTimeWithTrip[c.Trip] = candidateArr
	}

	return profiles
}

/** bestArrival evaluates the three ways of continuing past connection c. */
func bestArrival(
	c timetable.Connection,
	finalFootpaths map[int]timetable.Time,
	arrTimeWithTrip map[int]timetable.Time,
	profiles [][]profile.Profile,
) (timetable.Time, bool) {
	best := timetable.MaxTime
	have := false

	if dur, ok := finalFootpaths[c.ArrStop]; ok {
		best, have = c.ArrTime+dur, true
	}

	if tripArr, ok := arrTimeWithTrip[c.Trip]; ok && (!have || tripArr < best) {
		best, have = tripArr, true
	}

	if transferArr, ok := profile.ArrivalTimeWithStopChange(profiles[c.ArrStop], c); ok && (!have || transferArr < best) {
		best, have = transferArr, true
	}

	return best, have
}

/** finalFootpathDurations maps a source stop to the shortest walk into any destination. */
func finalFootpathDurations(tt *timetable.Timetable, destinations []int) map[int]timetable.Time {
	final := make(map[int]timetable.Time)
	for _, d := range destinations {
		final[d] = 0
	}
	for _, d := range destinations {
		for _, fp := range tt.Footpaths[d] {
			if cur, ok := final[fp.From]; !ok || fp.Duration < cur {
				final[fp.From] = fp.Duration
			}
		}
	}
	return final
}
