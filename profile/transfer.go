package profile

import "github.com/mtransit/csa-profile/timetable"

/**
 * arrivalProfile finds the rightmost (earliest-departing, transfer-compatible)
 * profile at an arrival stop: the one with the smallest DepTime that is still
 * strictly greater than the connection's arrival time plus TransferTime.
 */
func arrivalProfile(profiles []Profile, c timetable.Connection) (Profile, bool) {
	ready := c.ArrTime + timetable.TransferTime
	for i := len(profiles) - 1; i >= 0; i-- {
		if profiles[i].DepTime > ready {
			return profiles[i], true
		}
	}
	return Profile{}, false
}

/**
 * ArrivalTimeWithStopChange returns the best arrival time achievable by
 * transferring at connection c's arrival stop, or false if no transfer is
 * compatible. A sentinel continuation means c's own arrival IS the target.
 */
func ArrivalTimeWithStopChange(profiles []Profile, c timetable.Connection) (timetable.Time, bool) {
	p, ok := arrivalProfile(profiles, c)
	if !ok {
		return 0, false
	}
	if p.HasOutConnection {
		return p.ArrTime, true
	}
	return c.ArrTime, true
}
