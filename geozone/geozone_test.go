package geozone

import (
	"math"
	"testing"

	"github.com/azolika/LogbookTestApp/telematics"
)

func fptr(v float64) *float64 { return &v }

func TestHaversine(t *testing.T) {
	// One degree of longitude on the equator is ~111.195 km on a sphere of
	// radius 6371 km.
	dist := haversine(0, 0, 0, 1)
	if math.Abs(dist-111195) > 100 {
		t.Errorf("expected ~111195 m, got %f", dist)
	}

	if haversine(46.77, 23.6, 46.77, 23.6) != 0 {
		t.Error("distance from a point to itself should be 0")
	}
}

func TestMatchNames(t *testing.T) {
	center := Zone{Name: "Depou", Latitude: 46.77, Longitude: 23.6, Radius: 250}

	t.Run("point at center matches", func(t *testing.T) {
		names := MatchNames(fptr(46.77), fptr(23.6), []Zone{center})
		if len(names) != 1 || names[0] != "Depou" {
			t.Errorf("expected [Depou], got %v", names)
		}
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		pLat, pLon := 46.77, 23.603
		dist := haversine(pLat, pLon, center.Latitude, center.Longitude)

		onBoundary := Zone{Name: "Exact", Latitude: center.Latitude, Longitude: center.Longitude, Radius: dist}
		if names := MatchNames(fptr(pLat), fptr(pLon), []Zone{onBoundary}); len(names) != 1 {
			t.Errorf("point at distance == radius should match, got %v", names)
		}

		justInside := Zone{Name: "Short", Latitude: center.Latitude, Longitude: center.Longitude, Radius: dist - 0.5}
		if names := MatchNames(fptr(pLat), fptr(pLon), []Zone{justInside}); len(names) != 0 {
			t.Errorf("point beyond radius should not match, got %v", names)
		}
	})

	t.Run("nil coordinate matches nothing", func(t *testing.T) {
		if names := MatchNames(nil, fptr(23.6), []Zone{center}); names != nil {
			t.Errorf("expected no matches for nil latitude, got %v", names)
		}
		if names := MatchNames(fptr(46.77), nil, []Zone{center}); names != nil {
			t.Errorf("expected no matches for nil longitude, got %v", names)
		}
	})

	t.Run("overlapping zones all match in input order", func(t *testing.T) {
		zones := []Zone{
			{Name: "Mare", Latitude: 46.77, Longitude: 23.6, Radius: 5000},
			{Name: "Departe", Latitude: 45.0, Longitude: 20.0, Radius: 100},
			{Name: "Mica", Latitude: 46.77, Longitude: 23.6, Radius: 300},
		}
		names := MatchNames(fptr(46.771), fptr(23.601), zones)
		if len(names) != 2 || names[0] != "Mare" || names[1] != "Mica" {
			t.Errorf("expected [Mare Mica], got %v", names)
		}
	})
}

func TestEligibleZones(t *testing.T) {
	circle := &telematics.Circle{Latitude: 46.77, Longitude: 23.6, Radius: 250}
	items := []telematics.Geozone{
		{Type: "POINT", Name: "Depou", Circle: circle},
		{Type: "POLYGON", Name: "Oras", Circle: circle},
		{Type: "POINT", Name: "FaraCerc"},
		{Type: "POINT", Name: "Service", Circle: &telematics.Circle{Latitude: 47.0, Longitude: 21.9, Radius: 100}},
	}

	zones := EligibleZones(items)
	if len(zones) != 2 {
		t.Fatalf("expected 2 eligible zones, got %d", len(zones))
	}
	if zones[0].Name != "Depou" || zones[1].Name != "Service" {
		t.Errorf("expected input order [Depou Service], got %v", zones)
	}
	if zones[0].Radius != 250 {
		t.Errorf("expected radius carried over, got %f", zones[0].Radius)
	}
}
