package geo

import (
	"math"
	"testing"
)

var (
	cheseaux       = Point{Lat: 46.7793801, Lon: 6.659497600000001}
	stRoch         = Point{Lat: 46.7812274, Lon: 6.6473097}
	maisonAilleurs = Point{Lat: 46.77866239999999, Lon: 6.6419655}
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	if d := DistanceBetween(cheseaux, cheseaux); d != 0 {
		t.Fatalf("Distance(p, p) = %v, want 0", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := DistanceBetween(cheseaux, stRoch)
	b := DistanceBetween(stRoch, cheseaux)
	if math.Abs(a-b) > 1e-12 {
		t.Fatalf("asymmetric distance: %v vs %v", a, b)
	}
}

func TestDistanceKnownValues(t *testing.T) {
	cases := []struct {
		name     string
		p, q     Point
		min, max float64
	}{
		{"st-roch", maisonAilleurs, stRoch, 0.4, 0.6},
		{"cheseaux", maisonAilleurs, cheseaux, 1.2, 1.5},
		{"one degree of longitude at the equator", Point{0, 0}, Point{0, 1}, 111.1, 111.3},
		{"antipodes", Point{0, 0}, Point{0, 180}, 20015, 20016},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := DistanceBetween(c.p, c.q)
			if d < c.min || d > c.max {
				t.Fatalf("distance = %v, want in [%v, %v]", d, c.min, c.max)
			}
		})
	}
}

func TestDistanceMonotonic(t *testing.T) {
	prev := 0.0
	for lon := 0.5; lon <= 179.5; lon += 0.5 {
		d := Distance(0, 0, 0, lon)
		if d <= prev {
			t.Fatalf("distance at lon %v = %v, not greater than %v", lon, d, prev)
		}
		prev = d
	}
}

func TestDistanceScore(t *testing.T) {
	cases := []struct {
		km   float64
		want int
	}{
		{0, 10},
		{1, 10},
		{1.3, 8},
		{7, 6},
		{20, 4},
		{42, 2},
		{99, 1},
		{5000, 0},
	}
	for _, c := range cases {
		if got := DistanceScore(c.km); got != c.want {
			t.Errorf("DistanceScore(%v) = %d, want %d", c.km, got, c.want)
		}
	}
}
