package timetable

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

/**
 * Builder accepts an interleaved sequence of Trip() / Stop(id, time) calls and
 * produces a Timetable with dense stop indices and sorted connections. Used by
 * tests and by adapters that don't ingest a real GTFS feed.
 */
type Builder struct {
	stopIndexByID map[string]int
	stopOrder     []string
	trips         []Trip
	lastStop      *builderStop
	connections   []Connection
}

type builderStop struct {
	index int
	time  Time
}

func NewBuilder() *Builder {
	return &Builder{stopIndexByID: map[string]int{}}
}

/** Trip opens a new trip; subsequent Stop() calls belong to it until the next Trip(). */
func (b *Builder) Trip() *Builder {
	b.lastStop = nil
	b.trips = append(b.trips, Trip{})
	return b
}

func (b *Builder) stopIndex(id string) int {
	if idx, ok := b.stopIndexByID[id]; ok {
		return idx
	}
	idx := len(b.stopOrder)
	b.stopIndexByID[id] = idx
	b.stopOrder = append(b.stopOrder, id)
	return idx
}

/**
 * Stop records that the currently open trip calls at `id` at `time`
 * ("H:MM" format). Each stop after the first within a trip creates a
 * Connection from the previous (stop, time) to this one.
 */
func (b *Builder) Stop(id string, time string) *Builder {
	tripIndex := len(b.trips)
	if tripIndex == 0 {
		panic("timetable builder: stop added before any trip was opened")
	}

	stopIdx := b.stopIndex(id)
	parsed := parseTimeLiteral(time)

	if b.lastStop != nil {
		b.connections = append(b.connections, Connection{
			Trip:    tripIndex - 1,
			DepStop: b.lastStop.index,
			DepTime: b.lastStop.time,
			ArrStop: stopIdx,
			ArrTime: parsed,
		})
	}

	b.lastStop = &builderStop{index: stopIdx, time: parsed}
	return b
}

/** Build sorts the connections by descending DepTime and materializes the Timetable. */
func (b *Builder) Build() *Timetable {
	sort.SliceStable(b.connections, func(i, j int) bool {
		return b.connections[i].DepTime > b.connections[j].DepTime
	})

	stops := make([]Stop, len(b.stopOrder))
	for idx, id := range b.stopOrder {
		stops[idx] = Stop{ID: id, Name: id, LocationType: LocationTypeStopPoint}
	}

	footpaths := make([][]Footpath, len(stops))
	for i := range footpaths {
		footpaths[i] = []Footpath{}
	}

	return &Timetable{
		Stops:       stops,
		Trips:       b.trips,
		Connections: b.connections,
		Footpaths:   footpaths,
	}
}

/** parseTimeLiteral parses "H:MM" or "H:MM:SS" into total minutes since midnight. */
func parseTimeLiteral(literal string) Time {
	parts := strings.Split(literal, ":")
	if len(parts) < 2 || len(parts) > 3 {
		panic(fmt.Sprintf("timetable builder: invalid time literal %q", literal))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		panic(fmt.Sprintf("timetable builder: invalid time literal %q", literal))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		panic(fmt.Sprintf("timetable builder: invalid time literal %q", literal))
	}

	return Time(hours*60 + minutes)
}
