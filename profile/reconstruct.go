package profile

import "github.com/mtransit/csa-profile/timetable"

/**
 * Reconstruct follows a profile's OutConnection pointers across profiles to
 * yield the concrete sequence of connections it represents. It is a pure
 * function: it never mutates profiles or the timetable.
 *
 * A profile's OutConnection names the specific connection boarded from its
 * stop; when the best continuation came from staying seated, later hops of
 * the same trip aren't separately recorded in profiles, so Reconstruct walks
 * the trip forward (by dep_stop == previous arr_stop) until the ridden
 * connection's arrival matches the recorded ArrTime or a transfer-compatible
 * profile at its arrival stop reaches that same ArrTime, then continues from
 * that profile. It stops once a sentinel (destination) profile is reached.
 */
func Reconstruct(start Profile, profiles [][]Profile, tt *timetable.Timetable) ([]timetable.Connection, error) {
	if !start.HasOutConnection {
		return nil, nil
	}

	tripNext := buildTripIndex(tt)

	var legs []timetable.Connection
	targetArr := start.ArrTime
	conn := tt.Connections[start.OutConnection]
	legs = append(legs, conn)

	for conn.ArrTime != targetArr {
		if p, ok := arrivalProfile(profiles[conn.ArrStop], conn); ok && p.HasOutConnection && p.ArrTime == targetArr {
			break
		}
		next, ok := tripNext[tripStopKey{trip: conn.Trip, stop: conn.ArrStop}]
		if !ok {
			break
		}
		conn = tt.Connections[next]
		legs = append(legs, conn)
	}

	for {
		cont, ok := arrivalProfile(profiles[conn.ArrStop], conn)
		if !ok || !cont.HasOutConnection {
			break
		}

		targetArr = cont.ArrTime
		conn = tt.Connections[cont.OutConnection]
		legs = append(legs, conn)

		for conn.ArrTime != targetArr {
			if p, ok := arrivalProfile(profiles[conn.ArrStop], conn); ok && p.HasOutConnection && p.ArrTime == targetArr {
				break
			}
			next, ok := tripNext[tripStopKey{trip: conn.Trip, stop: conn.ArrStop}]
			if !ok {
				break
			}
			conn = tt.Connections[next]
			legs = append(legs, conn)
		}
	}

	return legs, nil
}

type tripStopKey struct {
	trip int
	stop int
}

func buildTripIndex(tt *timetable.Timetable) map[tripStopKey]int {
	index := make(map[tripStopKey]int, len(tt.Connections))
	for i, c := range tt.Connections {
		index[tripStopKey{trip: c.Trip, stop: c.DepStop}] = i
	}
	return index
}
