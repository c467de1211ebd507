package timetable

/**
 * Time is the unit shared across Connection, Footpath and TransferTime.
 * Internally it is minutes since midnight of the timetable's first day;
 * day offsets beyond the first day are added as whole multiples of
 * MinutesPerDay so a multi-day horizon stays comparable on one axis.
 */
type Time = int64

const (
	/** minimum dwell required when changing trips at the same stop */
	TransferTime Time = 5

	/** strictly greater than any real connection departure; marks the sentinel profile */
	MaxTime Time = 1<<62 - 1

	/** day-offset granularity used when expanding a trip across a horizon */
	MinutesPerDay Time = 24 * 60
)

type LocationType int

const (
	LocationTypeStopPoint LocationType = iota
	LocationTypeStopArea
)

/** Stop is referenced internally by its index into Timetable.Stops. */
type Stop struct {
	ID               string
	Name             string
	ParentStation    string
	HasParentStation bool
	LocationType     LocationType
}

/** Trip is an opaque unit; each (original trip, service day) pair gets its own index. */
type Trip struct{}

/** Connection is one elementary ride from DepStop to ArrStop on a given Trip. */
type Connection struct {
	Trip    int
	DepStop int
	ArrStop int
	DepTime Time
	ArrTime Time
}

/** Footpath is a directed walk edge; stored per target, From is the source stop index. */
type Footpath struct {
	From     int
	Duration Time
}

/**
 * Timetable is immutable once built: Connections are sorted by descending
 * DepTime, and Footpaths[to] lists the incoming walks into stop `to`.
 */
type Timetable struct {
	Stops       []Stop
	Trips       []Trip
	Connections []Connection
	Footpaths   [][]Footpath
}

/** StopIndexByStopAreaID resolves a stop area identifier to its member stop-point indices. */
func (t *Timetable) StopIndexByStopAreaID(stopAreaID string) []int {
	indices := []int{}
	for i, s := range t.Stops {
		if s.HasParentStation && s.ParentStation == stopAreaID {
			indices = append(indices, i)
		}
	}
	return indices
}
