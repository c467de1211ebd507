package profile

import "github.com/mtransit/csa-profile/timetable"

/**
 * Profile is a candidate "depart stop S at DepTime, arrive at the destination
 * at ArrTime, first taking the connection indexed OutConnection". A sentinel
 * (HasOutConnection=false) marks a destination itself.
 */
type Profile struct {
	OutConnection    int
	HasOutConnection bool
	DepTime          timetable.Time
	ArrTime          timetable.Time
}

/** Sentinel is the recursion base pushed into a destination's profile list. */
func Sentinel() Profile {
	return Profile{HasOutConnection: false, DepTime: timetable.MaxTime, ArrTime: 0}
}

/** Dominates reports whether p is at least as good as other on both axes, strictly on one. */
func (p Profile) Dominates(other Profile) bool {
	return p.ArrTime <= other.ArrTime && p.DepTime >= other.DepTime &&
		(p.ArrTime < other.ArrTime || p.DepTime > other.DepTime)
}
