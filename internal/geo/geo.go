// Package geo implements the geofence evaluator: great-circle distance
// between two coordinates and the "within radius" verdict used to validate
// physical presence at a checkpoint.
package geo

import "math"

// EarthRadiusMeters is the IUGG mean Earth radius.
const EarthRadiusMeters = 6371008.8

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether p lies within the WGS84 coordinate ranges.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Position is a device-reported point with an optional horizontal accuracy
// in meters.
type Position struct {
	Point
	AccuracyM *float64 `json:"accuracy_m,omitempty"`
}

// DistanceMeters returns the haversine distance between a and b.
func DistanceMeters(a, b Point) float64 {
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)
	dLat := lat2 - lat1
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Within reports whether the reported position lies inside the circle of
// radiusM meters around center. The boundary itself is inside.
//
// Reported accuracy does not widen the radius.
func Within(center Point, radiusM float64, p Position) bool {
	return DistanceMeters(center, p.Point) <= radiusM
}

// Offset returns the point reached by moving meters along bearing
// (degrees clockwise from north) from p on the sphere.
func Offset(p Point, bearingDeg, meters float64) Point {
	d := meters / EarthRadiusMeters
	brg := toRad(bearingDeg)
	lat1 := toRad(p.Lat)
	lng1 := toRad(p.Lng)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brg))
	lng2 := lng1 + math.Atan2(math.Sin(brg)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return Point{Lat: toDeg(lat2), Lng: normalizeLng(toDeg(lng2))}
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

func normalizeLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}
