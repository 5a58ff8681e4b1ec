package geo

import "math"

// metersPerDegreeLat is the approximate ground distance of one degree of
// latitude. Good enough at city scale; see BoundingBox.
const metersPerDegreeLat = 111000.0

// earthRadiusMeters for Haversine.
const earthRadiusMeters = 6371000.0

// BoundingBox is an axis-aligned lat/lng rectangle approximating a
// circular radius query. Corners overshoot the circle; that is accepted,
// the UI shows exact distance alongside. Query predicates must use the
// box, never a true-circle filter, so listings stay consistent.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox derives the box for a radius in meters around a center.
// The longitude delta widens with latitude by 1/cos(lat).
func NewBoundingBox(lat, lng, radiusMeters float64) BoundingBox {
	latDelta := radiusMeters / metersPerDegreeLat
	lngDelta := radiusMeters / (metersPerDegreeLat * math.Cos(lat*math.Pi/180))
	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLng: lng - lngDelta,
		MaxLng: lng + lngDelta,
	}
}

// Contains is boundary-inclusive, matching the BETWEEN predicate the
// repositories issue.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// Haversine returns the great-circle distance in meters between two
// points. Display and verification only — not a query predicate.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
