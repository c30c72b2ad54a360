package utils

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	lat float64
	lng float64
}

var samplePoints = []point{
	{40.7128, -74.0060},  // New York
	{34.0522, -118.2437}, // Los Angeles
	{51.5074, -0.1278},   // London
	{-33.8688, 151.2093}, // Sydney
	{35.6762, 139.6503},  // Tokyo
	{-6.175392, 106.827153},
	{0.0, 179.0},
	{0.0, -179.0},
	{90.0, 0.0},
	{-90.0, 0.0},
}

func TestHaversineDistanceKm(t *testing.T) {
	tests := []struct {
		name      string
		from      point
		to        point
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			from:      point{-6.175392, 106.827153},
			to:        point{-6.175392, 106.827153},
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name:      "Jakarta to Bandung (approximately)",
			from:      point{-6.175392, 106.827153},
			to:        point{-6.914744, 107.609810},
			expected:  120.0,
			tolerance: 10.0,
		},
		{
			name:      "New York to Los Angeles",
			from:      point{40.7128, -74.0060},
			to:        point{34.0522, -118.2437},
			expected:  3936.0,
			tolerance: 15.0,
		},
		{
			name:      "Cross equator",
			from:      point{-1.0, 100.0},
			to:        point{1.0, 100.0},
			expected:  222.4,
			tolerance: 1.0,
		},
		{
			name:      "Cross 180th meridian",
			from:      point{0.0, 179.0},
			to:        point{0.0, -179.0},
			expected:  222.4,
			tolerance: 1.0,
		},
		{
			name:      "Antipodal points",
			from:      point{0.0, 0.0},
			to:        point{0.0, 180.0},
			expected:  math.Pi * EarthRadiusKm,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HaversineDistanceKm(tt.from.lat, tt.from.lng, tt.to.lat, tt.to.lng)

			assert.GreaterOrEqual(t, result, 0.0)
			assert.InDelta(t, tt.expected, result, tt.tolerance)
		})
	}
}

func TestHaversineDistanceKm_Symmetric(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			ab := HaversineDistanceKm(a.lat, a.lng, b.lat, b.lng)
			ba := HaversineDistanceKm(b.lat, b.lng, a.lat, a.lng)
			assert.InDelta(t, ab, ba, 1e-9, "distance must be symmetric for %v and %v", a, b)
		}
	}
}

func TestHaversineDistanceKm_ZeroOnlyForIdenticalPoints(t *testing.T) {
	for i, a := range samplePoints {
		assert.Equal(t, 0.0, HaversineDistanceKm(a.lat, a.lng, a.lat, a.lng))
		for j, b := range samplePoints {
			if i == j {
				continue
			}
			assert.Greater(t, HaversineDistanceKm(a.lat, a.lng, b.lat, b.lng), 0.0)
		}
	}
}

func TestHaversineDistanceKm_TriangleInequality(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			for _, c := range samplePoints {
				ac := HaversineDistanceKm(a.lat, a.lng, c.lat, c.lng)
				ab := HaversineDistanceKm(a.lat, a.lng, b.lat, b.lng)
				bc := HaversineDistanceKm(b.lat, b.lng, c.lat, c.lng)
				assert.LessOrEqual(t, ac, ab+bc+1e-6)
			}
		}
	}
}

func TestDistanceBetween(t *testing.T) {
	from := models.Location{Latitude: 51.5074, Longitude: -0.1278}
	to := models.Location{Latitude: 48.8566, Longitude: 2.3522}

	assert.InDelta(t, 343.5, DistanceBetween(from, to), 2.0)
}

func TestKmToMiles(t *testing.T) {
	assert.Equal(t, 0.0, KmToMiles(0))
	assert.InDelta(t, 621.371, KmToMiles(1000), 1e-9)
	assert.InDelta(t, 310.6855, KmToMiles(500), 1e-9)

	for _, km := range []float64{0.5, 1, 42.195, 3000, 12345.678} {
		assert.InDelta(t, km, MilesToKm(KmToMiles(km)), 1e-9)
	}
}

func TestEstimateTravelTime(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		speedKmh   float64
		hours      float64
		days       int
		minutes    int
		display    string
	}{
		{"air short hop", 400, 800, 0.5, 0, 30, "0h 30m"},
		{"air long haul", 3000, 800, 3.75, 0, 45, "3h 45m"},
		{"ground same day", 500, 60, 500.0 / 60, 0, 20, "8h 20m"},
		{"ground multi day", 3000, 60, 50, 2, 0, "2d 2h 0m"},
		{"ground rounds up to a full day", 1439.9, 60, 1439.9 / 60, 1, 0, "1d 0h 0m"},
		{"zero distance", 0, 60, 0, 0, 0, "0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EstimateTravelTime(tt.distanceKm, tt.speedKmh)

			require.NoError(t, err)
			assert.InDelta(t, tt.hours, result.Hours, 1e-9)
			assert.Equal(t, tt.days, result.Days)
			assert.Equal(t, tt.minutes, result.Minutes)
			assert.Equal(t, tt.display, result.Display)
		})
	}
}

func TestEstimateTravelTime_InvalidSpeed(t *testing.T) {
	for _, speed := range []float64{0, -60, math.NaN(), math.Inf(1)} {
		result, err := EstimateTravelTime(500, speed)

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))
		assert.Equal(t, models.TravelTime{}, result)
	}
}

func TestEstimateTravelTime_InvalidDistance(t *testing.T) {
	_, err := EstimateTravelTime(-1, 60)

	assert.Error(t, err)
}

func TestGeohash(t *testing.T) {
	hash := EncodeGeohash(51.5074, -0.1278, 6)
	assert.Len(t, hash, 6)
	assert.Equal(t, "gcp", hash[:3])

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, 51.5074, lat, 0.01)
	assert.InDelta(t, -0.1278, lng, 0.01)

	assert.Len(t, GeohashNeighbors(hash), 8)
}

func BenchmarkHaversineDistanceKm(b *testing.B) {
	for i := 0; i < b.N; i++ {
		HaversineDistanceKm(-6.175392, 106.827153, -6.914744, 107.609810)
	}
}
