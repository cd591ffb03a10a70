// Package geo computes great-circle distances and resolves free-text
// locations to coordinates.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Distance returns the haversine distance in kilometers between two
// coordinates. Out-of-range input is not validated.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// rounding can push a slightly above 1 for antipodal points
	a = math.Min(1, a)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// DistanceBetween is Distance for two points.
func DistanceBetween(p, q Point) float64 {
	return Distance(p.Lat, p.Lon, q.Lat, q.Lon)
}

var scoreBuckets = []struct {
	maxKm float64
	score int
}{
	{1, 10},
	{5, 8},
	{10, 6},
	{25, 4},
	{50, 2},
	{100, 1},
}

// DistanceScore maps a distance to a proximity score: closer is higher,
// anything beyond 100 km scores 0.
func DistanceScore(km float64) int {
	for _, b := range scoreBuckets {
		if km <= b.maxKm {
			return b.score
		}
	}
	return 0
}
