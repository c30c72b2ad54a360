package utils

import (
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"
	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
)

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distances
	EarthRadiusKm = 6371.0
	// KmToMilesFactor converts kilometers to statute miles
	KmToMilesFactor = 0.621371
)

// HaversineDistanceKm calculates the great-circle distance between two points in kilometers
func HaversineDistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	// Convert latitude and longitude from degrees to radians
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// Rounding can push a a hair past 1 for antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceBetween returns the great-circle distance between two resolved locations in kilometers
func DistanceBetween(from, to models.Location) float64 {
	return HaversineDistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

// KmToMiles converts kilometers to miles
func KmToMiles(km float64) float64 {
	return km * KmToMilesFactor
}

// MilesToKm converts miles to kilometers
func MilesToKm(miles float64) float64 {
	return miles / KmToMilesFactor
}

// EstimateTravelTime derives a travel time from a distance and an average speed.
// Multi-day estimates carry the day count and render as "{D}d {H}h {M}m".
func EstimateTravelTime(distanceKm, averageSpeedKmh float64) (models.TravelTime, error) {
	if math.IsNaN(averageSpeedKmh) || math.IsInf(averageSpeedKmh, 0) || averageSpeedKmh <= 0 {
		return models.TravelTime{}, apperrors.InvalidConfiguration("averageSpeedKmh must be positive, got %v", averageSpeedKmh)
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return models.TravelTime{}, fmt.Errorf("invalid distance %v", distanceKm)
	}

	hours := distanceKm / averageSpeedKmh

	totalMinutes := int64(math.Round(hours * 60))
	days := totalMinutes / (24 * 60)
	wholeHours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60

	display := fmt.Sprintf("%dh %dm", wholeHours, minutes)
	if days > 0 {
		display = fmt.Sprintf("%dd %dh %dm", days, wholeHours, minutes)
	}

	return models.TravelTime{
		Hours:   hours,
		Days:    int(days),
		Minutes: int(minutes),
		Display: display,
	}, nil
}

// EncodeGeohash converts a coordinate to a geohash string
func EncodeGeohash(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GeohashNeighbors returns the neighboring geohashes of a given geohash
func GeohashNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
