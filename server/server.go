package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/mtransit/csa-profile/csa"
	"github.com/mtransit/csa-profile/profile"
	"github.com/mtransit/csa-profile/timetable"
)

/** Summary is one reachable-destination result: when to leave, when to arrive, how many trips to ride. */
type Summary struct {
	Departure int64 `json:"departure"`
	Arrival   int64 `json:"arrival"`
	Transfers int   `json:"transfers"`
}

/** TransportHandler answers routing queries against a fixed, pre-computed Timetable. */
type TransportHandler struct {
	tt *timetable.Timetable
}

func NewTransportHandler(tt *timetable.Timetable) *TransportHandler {
	return &TransportHandler{tt: tt}
}

/** NewRouter wires the handler behind chi with the same middleware/CORS stack used across this codebase's HTTP services. */
func NewRouter(h *TransportHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Get("/health", h.Health)
	r.Get("/to/{stopArea}", h.GetProfilesTo)

	return r
}

func (h *TransportHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

/**
 * GetProfilesTo computes the profile-CSA sweep toward the stop_area named in
 * the path and returns every origin stop's Pareto-optimal summaries as a JSON
 * array indexed by stop, one slot per h.tt.Stops position (empty for stops
 * with no reachable summary).
 */
func (h *TransportHandler) GetProfilesTo(w http.ResponseWriter, r *http.Request) {
	stopArea := chi.URLParam(r, "stopArea")

	destinations := h.tt.StopIndexByStopAreaID(stopArea)
	if len(destinations) == 0 {
		http.Error(w, `{"error":"unknown stop_area"}`, http.StatusNotFound)
		return
	}

	profiles := csa.Compute(h.tt, destinations)

	out := make([][]Summary, len(h.tt.Stops))
	for stopIdx, stopProfiles := range profiles {
		summaries := make([]Summary, 0, len(stopProfiles))
		for _, p := range stopProfiles {
			if !p.HasOutConnection {
				continue
			}
			summaries = append(summaries, Summary{
				Departure: int64(p.DepTime),
				Arrival:   int64(p.ArrTime),
				Transfers: transferCount(p, profiles, h.tt),
			})
		}
		out[stopIdx] = summaries
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

/** transferCount reconstructs the journey and counts how many distinct trips it rides. */
func transferCount(p profile.Profile, profiles [][]profile.Profile, tt *timetable.Timetable) int {
	legs, err := profile.Reconstruct(p, profiles, tt)
	if err != nil || len(legs) == 0 {
		return 0
	}

	trips := map[int]struct{}{}
	for _, leg := range legs {
		trips[leg.Trip] = struct{}{}
	}
	return len(trips)
}
