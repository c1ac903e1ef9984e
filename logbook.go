// Package logbook wires the two pipelines (events and trips) end to end:
// fetch from the upstream APIs, shape records into display rows, assemble
// the table, and serve or export the result.
package logbook

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/azolika/LogbookTestApp/config"
	"github.com/azolika/LogbookTestApp/converter"
	"github.com/azolika/LogbookTestApp/geozone"
	"github.com/azolika/LogbookTestApp/internal"
	"github.com/azolika/LogbookTestApp/telematics"
	"github.com/azolika/LogbookTestApp/utils"
)

// Service holds the clients and cache shared by all runs. It keeps no other
// state: every run fetches, shapes and assembles from scratch.
type Service struct {
	cfg    config.AppConfig
	fleet  *telematics.Client
	events *telematics.EventsClient
	cache  Store
	appLoc *time.Location
}

// NewService builds a Service from the loaded configuration. An unknown
// display timezone falls back to UTC with a log line.
func NewService(cfg config.AppConfig) *Service {
	fleetTimeout := time.Duration(cfg.FleetAPI.TimeoutMS) * time.Millisecond
	eventsTimeout := time.Duration(cfg.EventsAPI.TimeoutMS) * time.Millisecond

	appLoc, fellBack := utils.LocationOr(cfg.Display.Timezone, time.UTC)
	if fellBack && cfg.Display.Timezone != "" {
		log.Printf("unknown display timezone %q, using UTC", cfg.Display.Timezone)
	}

	var store Store
	if cfg.Cache.RedisAddr != "" {
		store = NewRedisStore(cfg.Cache.RedisAddr)
	} else {
		store = NewMemoryStore()
	}

	return &Service{
		cfg:    cfg,
		fleet:  telematics.NewClient(cfg.FleetAPI.BaseURL, cfg.FleetAPI.APIKey, fleetTimeout),
		events: telematics.NewEventsClient(cfg.EventsAPI.BaseURL, cfg.EventsAPI.UserID, eventsTimeout),
		cache:  store,
		appLoc: appLoc,
	}
}

func (s *Service) cacheTTL() time.Duration {
	return time.Duration(s.cfg.Cache.TTLSeconds) * time.Second
}

// displayLocation resolves a per-request timezone override. The second
// result reports whether the configured timezone was used as a fallback.
func (s *Service) displayLocation(tzName string) (*time.Location, bool) {
	if tzName == "" {
		return s.appLoc, false
	}
	loc, fellBack := utils.LocationOr(tzName, s.appLoc)
	return loc, fellBack
}

// Vehicles lists the account's vehicles, memoized through the cache keyed
// by the API key so switching credentials never serves another account's
// list.
func (s *Service) Vehicles(ctx context.Context) ([]telematics.Vehicle, error) {
	key := CacheKey("vehicles", s.cfg.FleetAPI.APIKey)
	data, err := s.cache.GetOrCompute(ctx, key, s.cacheTTL(), func() ([]byte, error) {
		vehicles, err := s.fleet.Vehicles(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(vehicles)
	})
	if err != nil {
		return nil, err
	}
	var vehicles []telematics.Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("decoding cached vehicle list: %w", err)
	}
	return vehicles, nil
}

// RunResult is one pipeline run's output. Notice carries the user-facing
// message when an upstream replied with an error that means "no data"
// (non-200 status, malformed JSON); the table is then empty and the run is
// still a success.
type RunResult struct {
	Table      converter.Table
	Summary    *converter.EventsSummary
	RequestURL string
	Timezone   string
	TZFallback bool
	Notice     string
}

// RunEvents executes the events pipeline for one query.
func (s *Service) RunEvents(ctx context.Context, q LogbookQuery) (RunResult, error) {
	loc, fellBack := s.displayLocation(q.Timezone)
	res := RunResult{Timezone: loc.String(), TZFallback: fellBack}

	from, to, err := utils.DayRangeUTC(q.FromDate, q.ToDate, loc)
	if err != nil {
		return res, &QueryError{Msg: err.Error()}
	}

	res.RequestURL = s.events.RequestURL(q.VehicleID, from, to, q.StationaryUnder)
	log.Printf("events request: %s", res.RequestURL)

	events, err := s.events.Fetch(ctx, q.VehicleID, from, to, q.StationaryUnder)
	if err != nil {
		if !telematics.IsNoData(err) {
			return res, err
		}
		log.Printf("events pipeline: %v", err)
		res.Notice = err.Error()
		events = nil
	}

	defects := converter.NewDefectAggregator()
	rows := converter.ShapeEvents(events, loc, defects)
	defects.LogAll("events", q.VehicleID)
	internal.AddRowsShaped("events", len(rows))

	res.Table = converter.BuildEventsTable(rows)
	summary := converter.SummarizeEvents(res.Table)
	res.Summary = &summary
	return res, nil
}

// RunTrips executes the trips pipeline for one query. A failing geozones
// lookup degrades to an untagged table rather than failing the run.
func (s *Service) RunTrips(ctx context.Context, q LogbookQuery) (RunResult, error) {
	loc, fellBack := s.displayLocation(q.Timezone)
	res := RunResult{Timezone: loc.String(), TZFallback: fellBack}

	from, to, err := utils.DayRangeUTC(q.FromDate, q.ToDate, loc)
	if err != nil {
		return res, &QueryError{Msg: err.Error()}
	}

	var zones []geozone.Zone
	raw, err := s.fleet.Geozones(ctx)
	if err != nil {
		if !telematics.IsNoData(err) {
			return res, err
		}
		log.Printf("trips pipeline: %v", err)
		res.Notice = err.Error()
	} else {
		zones = geozone.EligibleZones(raw)
	}

	trips, err := s.fleet.Trips(ctx, q.VehicleID, from, to)
	if err != nil {
		if !telematics.IsNoData(err) {
			return res, err
		}
		log.Printf("trips pipeline: %v", err)
		res.Notice = err.Error()
		trips = nil
	}

	defects := converter.NewDefectAggregator()
	rows := converter.ShapeTrips(trips, zones, loc, defects)
	defects.LogAll("trips", q.VehicleID)
	internal.AddRowsShaped("trips", len(rows))

	res.Table = converter.BuildTripsTable(rows)
	return res, nil
}
