package main

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/mtransit/csa-profile/csa"
	"github.com/mtransit/csa-profile/gtfsfeed"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "csa-benchmark - profile-CSA timing harness\n\nUsage:\n\n  %s [<options>] <gtfs feed>\n\nAllowed options:\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	firstDayStr := flag.StringP("first-day", "d", "", "first service day to expand, YYYYMMDD (default: today)")
	horizonDays := flag.IntP("horizon", "n", 1, "number of service days to expand from the first day")
	destinationArea := flag.StringP("to", "t", "", "stop_area id to route towards (required)")
	repeats := flag.IntP("repeats", "r", 5, "number of times to re-run the sweep for timing")
	help := flag.BoolP("help", "?", false, "this message")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	gtfsPaths := flag.Args()
	if len(gtfsPaths) == 0 {
		fmt.Fprintln(os.Stderr, "No GTFS feed specified, see --help")
		os.Exit(1)
	}
	if *destinationArea == "" {
		fmt.Fprintln(os.Stderr, "--to is required, see --help")
		os.Exit(1)
	}

	firstDay := time.Now()
	if *firstDayStr != "" {
		parsed, err := time.Parse("20060102", *firstDayStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		firstDay = parsed
	}

	tt, err := gtfsfeed.Load(gtfsPaths[0], firstDay, *horizonDays)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	destinations := tt.StopIndexByStopAreaID(*destinationArea)
	if len(destinations) == 0 {
		fmt.Fprintf(os.Stderr, "Error: stop_area %q has no member stops in this feed\n", *destinationArea)
		os.Exit(1)
	}

	fmt.Printf("stops=%d trips=%d connections=%d destinations=%d\n",
		len(tt.Stops), len(tt.Trips), len(tt.Connections), len(destinations))

	var total time.Duration
	for i := 0; i < *repeats; i++ {
		start := time.Now()
		profiles := csa.Compute(tt, destinations)
		elapsed := time.Since(start)
		total += elapsed

		reachable := 0
		for _, stopProfiles := range profiles {
			if len(stopProfiles) > 0 {
				reachable++
			}
		}
		fmt.Printf("run %d: %s (reachable stops with a profile: %d)\n", i+1, elapsed, reachable)
	}

	fmt.Printf("average over %d runs: %s\n", *repeats, total/time.Duration(*repeats))
}
