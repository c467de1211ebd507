package gtfsfeed

import (
	"sort"
	"time"

	"github.com/patrickbr/gtfsparser"
	"github.com/patrickbr/gtfsparser/gtfs"
	"github.com/pkg/errors"

	"github.com/mtransit/csa-profile/timetable"
)

/**
 * Load reads a GTFS feed (a directory or a .zip, per gtfsparser's own
 * convention) and expands it into a timetable.Timetable covering the day
 * window [firstDay, firstDay+horizonDays). Every (trip, active service day)
 * pair becomes its own Trip so that staying seated is always a same-Trip
 * relation.
 */
func Load(path string, firstDay time.Time, horizonDays int) (*timetable.Timetable, error) {
	feed := gtfsparser.NewFeed()
	if err := feed.Parse(path); err != nil {
		return nil, errors.Wrapf(err, "parsing gtfs feed at %q", path)
	}

	stopIndex, stops := indexStops(feed)
	footpaths := footpathsByParentStation(stops)

	connections, trips, err := expandConnections(feed, stopIndex, firstDay, horizonDays)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(connections, func(i, j int) bool {
		return connections[i].DepTime > connections[j].DepTime
	})

	return &timetable.Timetable{
		Stops:       stops,
		Trips:       trips,
		Connections: connections,
		Footpaths:   footpaths,
	}, nil
}

func indexStops(feed *gtfsparser.Feed) (map[string]int, []timetable.Stop) {
	ids := make([]string, 0, len(feed.Stops))
	for id := range feed.Stops {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	index := make(map[string]int, len(ids))
	stops := make([]timetable.Stop, 0, len(ids))
	for _, id := range ids {
		s := feed.Stops[id]
		index[id] = len(stops)

		locType := timetable.LocationTypeStopPoint
		if s.Location_type == 1 {
			locType = timetable.LocationTypeStopArea
		}

		stop := timetable.Stop{ID: s.Id, Name: s.Name, LocationType: locType}
		if s.Parent_station != nil {
			stop.HasParentStation = true
			stop.ParentStation = s.Parent_station.Id
		}
		stops = append(stops, stop)
	}

	return index, stops
}

/** footpathsByParentStation links every pair of stop-points sharing a parent station with a fixed-duration walk. */
func footpathsByParentStation(stops []timetable.Stop) [][]timetable.Footpath {
	footpaths := make([][]timetable.Footpath, len(stops))
	for i := range footpaths {
		footpaths[i] = []timetable.Footpath{}
	}

	siblingsByParent := map[string][]int{}
	for i, s := range stops {
		if s.HasParentStation {
			siblingsByParent[s.ParentStation] = append(siblingsByParent[s.ParentStation], i)
		}
	}

	for _, siblings := range siblingsByParent {
		for _, from := range siblings {
			for _, to := range siblings {
				if from == to {
					continue
				}
				footpaths[to] = append(footpaths[to], timetable.Footpath{From: from, Duration: timetable.TransferTime})
			}
		}
	}

	return footpaths
}

/**
 * expandConnections walks every trip's stop_times for each day in the
 * horizon the trip's service is active on, materializing one
 * timetable.Connection per consecutive stop pair and one timetable.Trip per
 * (gtfs trip, day) pair. A stop_time referencing a stop id absent from the
 * feed's stops aborts the whole load: silently dropping it would break the
 * same-trip chaining invariant for every connection after it.
 */
func expandConnections(feed *gtfsparser.Feed, stopIndex map[string]int, firstDay time.Time, horizonDays int) ([]timetable.Connection, []timetable.Trip, error) {
	tripIDs := make([]string, 0, len(feed.Trips))
	for id := range feed.Trips {
		tripIDs = append(tripIDs, id)
	}
	sort.Strings(tripIDs)

	var connections []timetable.Connection
	var trips []timetable.Trip

	for day := 0; day < horizonDays; day++ {
		date := firstDay.AddDate(0, 0, day)
		gtfsDate := gtfs.NewDate(uint8(date.Day()), uint8(date.Month()), uint16(date.Year()))
		dayOffset := timetable.Time(day) * timetable.MinutesPerDay

		for _, id := range tripIDs {
			trip := feed.Trips[id]
			if trip.Service == nil || !trip.Service.IsActiveOn(gtfsDate) {
				continue
			}

			stopTimes := trip.StopTimes
			if len(stopTimes) < 2 {
				continue
			}

			tripIndex := len(trips)
			trips = append(trips, timetable.Trip{})

			for i := 0; i+1 < len(stopTimes); i++ {
				from := stopTimes[i]
				to := stopTimes[i+1]

				depIdx, ok := stopIndex[from.Stop().Id]
				if !ok {
					return nil, nil, errors.Errorf("unknown stop id %q in trip %q", from.Stop().Id, id)
				}
				arrIdx, ok := stopIndex[to.Stop().Id]
				if !ok {
					return nil, nil, errors.Errorf("unknown stop id %q in trip %q", to.Stop().Id, id)
				}

				connections = append(connections, timetable.Connection{
					Trip:    tripIndex,
					DepStop: depIdx,
					ArrStop: arrIdx,
					DepTime: dayOffset + timetable.Time(from.Departure_time().SecondsSinceMidnight()/60),
					ArrTime: dayOffset + timetable.Time(to.Arrival_time().SecondsSinceMidnight()/60),
				})
			}
		}
	}

	return connections, trips, nil
}
