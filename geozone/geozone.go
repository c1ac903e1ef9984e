// Package geozone matches coordinates against circular geozones.
package geozone

import (
	"math"

	"github.com/azolika/LogbookTestApp/telematics"
)

const earthRadiusMeters = 6371000

// Zone is a match-eligible circular geozone.
type Zone struct {
	Name      string
	Latitude  float64
	Longitude float64
	Radius    float64
}

// EligibleZones keeps only POINT zones that carry a circle, preserving the
// API's order. Everything else never reaches the matcher.
func EligibleZones(items []telematics.Geozone) []Zone {
	zones := make([]Zone, 0, len(items))
	for _, it := range items {
		if it.Type != "POINT" || it.Circle == nil {
			continue
		}
		zones = append(zones, Zone{
			Name:      it.Name,
			Latitude:  it.Circle.Latitude,
			Longitude: it.Circle.Longitude,
			Radius:    it.Circle.Radius,
		})
	}
	return zones
}

// MatchNames returns the names of all zones whose circle contains the point,
// in the zones' own order. A point exactly on a boundary counts as contained.
// A nil latitude or longitude matches nothing.
func MatchNames(lat, lon *float64, zones []Zone) []string {
	if lat == nil || lon == nil {
		return nil
	}
	var names []string
	for _, z := range zones {
		dist := haversine(*lat, *lon, z.Latitude, z.Longitude)
		if dist <= z.Radius {
			names = append(names, z.Name)
		}
	}
	return names
}

// haversine returns the great-circle distance in meters between two points
// on a spherical Earth.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
