package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	lib "github.com/azolika/LogbookTestApp"
	"github.com/azolika/LogbookTestApp/config"
	"github.com/azolika/LogbookTestApp/internal"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	pipeline := flag.String("pipeline", "events", "events|trips (oneshot)")
	vehicle := flag.String("vehicle", "", "vehicle id (oneshot)")
	fromDate := flag.String("from", "", "start date YYYY-MM-DD (default today)")
	toDate := flag.String("to", "", "end date YYYY-MM-DD (default today)")
	stationary := flag.Int("stationary", 0, "stationary filter in minutes, 0-99 (events)")
	tz := flag.String("tz", "", "display timezone (IANA name, overrides config)")
	format := flag.String("format", "json", "json|csv|xlsx|pdf (oneshot)")
	out := flag.String("out", "", "output file (oneshot; default stdout)")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		fatalf("loading config: %v", err)
	}
	svc := lib.NewService(config.Config)

	switch *mode {
	case "serve":
		lib.StartServer(svc)
		lib.HandleGracefulShutdown()
	case "oneshot":
		if err := runOneshot(svc, *pipeline, *vehicle, *fromDate, *toDate, *stationary, *tz, *format, *out); err != nil {
			fatalf("%v", err)
		}
	default:
		fatalf("unknown mode %q", *mode)
	}
}

func runOneshot(svc *lib.Service, pipeline, vehicle, fromDate, toDate string, stationary int, tz, format, out string) error {
	res, err := lib.RunOneshot(context.Background(), svc, lib.OneshotRequest{
		Pipeline:        pipeline,
		VehicleID:       vehicle,
		FromDate:        fromDate,
		ToDate:          toDate,
		StationaryUnder: stationary,
		Timezone:        tz,
		Format:          format,
	})
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(res.Rendered)
	} else {
		err = os.WriteFile(out, res.Rendered, 0o644)
	}
	if err != nil {
		return err
	}

	if res.Summary != nil {
		fmt.Fprintf(os.Stderr, "events: %d, total time: %s, final cumulative km: %s\n",
			res.Summary.Events, res.Summary.TotalDuration, res.Summary.FinalCumulativeKM)
	} else {
		fmt.Fprintf(os.Stderr, "rows: %d\n", len(res.Table.Rows))
	}
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
