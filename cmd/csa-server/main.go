package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/mtransit/csa-profile/gtfsfeed"
	"github.com/mtransit/csa-profile/server"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "csa-server - profile-CSA HTTP routing service\n\nUsage:\n\n  %s [<options>] <gtfs feed>\n\nAllowed options:\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	firstDayStr := flag.StringP("first-day", "d", "", "first service day to expand, YYYYMMDD (default: today)")
	horizonDays := flag.IntP("horizon", "n", 1, "number of service days to expand from the first day")
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

	firstDay := time.Now()
	if *firstDayStr != "" {
		parsed, err := time.Parse("20060102", *firstDayStr)
		if err != nil {
			log.Fatal("Invalid --first-day:", err)
		}
		firstDay = parsed
	}

	tt, err := gtfsfeed.Load(gtfsPaths[0], firstDay, *horizonDays)
	if err != nil {
		log.Fatal("Failed to load GTFS feed:", err)
	}
	log.Printf("loaded feed: %d stops, %d trips, %d connections", len(tt.Stops), len(tt.Trips), len(tt.Connections))

	handler := server.NewTransportHandler(tt)
	router := server.NewRouter(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("csa-server listening on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
