package gazetteer

import (
	"fmt"
	"math"
	"sync"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/utils"
)

// DefaultGeohashPrecision is the geohash length attached to resolved locations (~150m cells)
const DefaultGeohashPrecision uint = 7

// Gazetteer is a read-only index of countries and their regions.
// It is safe for concurrent use once built.
type Gazetteer struct {
	countries []models.Country
	byID      map[string]int
	regions   map[string]map[string]int // country id -> region id -> index in Regions
	precision uint
}

var (
	defaultGazetteer *Gazetteer
	defaultOnce      sync.Once
)

// Default returns the built-in gazetteer, loaded once per process
func Default() *Gazetteer {
	defaultOnce.Do(func() {
		g, err := New(builtinCountries, DefaultGeohashPrecision)
		if err != nil {
			panic(fmt.Sprintf("invalid built-in gazetteer: %v", err))
		}
		defaultGazetteer = g
	})
	return defaultGazetteer
}

// NewBuiltin builds the built-in country table with a custom geohash precision
func NewBuiltin(geohashPrecision uint) (*Gazetteer, error) {
	return New(builtinCountries, geohashPrecision)
}

// New validates and indexes a country table. Country ids must be unique, region
// ids must be unique within their country and every coordinate must be in range.
func New(countries []models.Country, geohashPrecision uint) (*Gazetteer, error) {
	if geohashPrecision == 0 {
		geohashPrecision = DefaultGeohashPrecision
	}

	g := &Gazetteer{
		countries: make([]models.Country, 0, len(countries)),
		byID:      make(map[string]int, len(countries)),
		regions:   make(map[string]map[string]int, len(countries)),
		precision: geohashPrecision,
	}

	for _, country := range countries {
		if country.ID == "" {
			return nil, fmt.Errorf("country %q has an empty id", country.Name)
		}
		if _, exists := g.byID[country.ID]; exists {
			return nil, fmt.Errorf("duplicate country id %q", country.ID)
		}
		if err := validateCoordinates(country.Latitude, country.Longitude); err != nil {
			return nil, fmt.Errorf("country %q: %w", country.ID, err)
		}

		regionIdx := make(map[string]int, len(country.Regions))
		regions := make([]models.GeoPoint, 0, len(country.Regions))
		for _, region := range country.Regions {
			if region.ID == "" {
				return nil, fmt.Errorf("country %q has a region with an empty id", country.ID)
			}
			if _, exists := regionIdx[region.ID]; exists {
				return nil, fmt.Errorf("duplicate region id %q in country %q", region.ID, country.ID)
			}
			if err := validateCoordinates(region.Latitude, region.Longitude); err != nil {
				return nil, fmt.Errorf("region %q/%q: %w", country.ID, region.ID, err)
			}
			regionIdx[region.ID] = len(regions)
			regions = append(regions, region)
		}

		country.Regions = regions
		g.byID[country.ID] = len(g.countries)
		g.regions[country.ID] = regionIdx
		g.countries = append(g.countries, country)
	}

	return g, nil
}

// ListCountries returns every country in table order
func (g *Gazetteer) ListCountries() []models.Country {
	out := make([]models.Country, len(g.countries))
	for i, country := range g.countries {
		out[i] = copyCountry(country)
	}
	return out
}

// GetCountryByID returns the country with the given id, or nil if it is unknown
func (g *Gazetteer) GetCountryByID(id string) *models.Country {
	idx, ok := g.byID[id]
	if !ok {
		return nil
	}
	country := copyCountry(g.countries[idx])
	return &country
}

// GetRegionByID returns a region of a country, or nil if either id is unknown
func (g *Gazetteer) GetRegionByID(countryID, regionID string) *models.GeoPoint {
	countryIdx, ok := g.byID[countryID]
	if !ok {
		return nil
	}
	regionIdx, ok := g.regions[countryID][regionID]
	if !ok {
		return nil
	}
	region := g.countries[countryIdx].Regions[regionIdx]
	return &region
}

// Resolve turns an explicit country/region pair into a priceable location.
// An empty region id resolves to the country centroid.
func (g *Gazetteer) Resolve(countryID, regionID string) (models.Location, error) {
	country := g.GetCountryByID(countryID)
	if country == nil {
		return models.Location{}, apperrors.UnresolvedLocation("unknown country %q", countryID)
	}
	if regionID == "" {
		return g.countryLocation(country), nil
	}

	region := g.GetRegionByID(countryID, regionID)
	if region == nil {
		return models.Location{}, apperrors.UnresolvedLocation("unknown region %q in country %q", regionID, countryID)
	}
	return g.regionLocation(country, region), nil
}

// Nearest returns the region whose centroid is closest to the given coordinate
func (g *Gazetteer) Nearest(latitude, longitude float64) (models.Location, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return models.Location{}, apperrors.UnresolvedLocation("%v", err)
	}

	bestDistance := math.Inf(1)
	bestCountry, bestRegion := -1, -1
	for ci, country := range g.countries {
		for ri, region := range country.Regions {
			d := utils.HaversineDistanceKm(latitude, longitude, region.Latitude, region.Longitude)
			if d < bestDistance {
				bestDistance = d
				bestCountry, bestRegion = ci, ri
			}
		}
	}
	if bestCountry < 0 {
		return models.Location{}, apperrors.UnresolvedLocation("gazetteer has no regions")
	}

	country := g.countries[bestCountry]
	return g.regionLocation(&country, &country.Regions[bestRegion]), nil
}

func (g *Gazetteer) countryLocation(country *models.Country) models.Location {
	return models.Location{
		CountryID: country.ID,
		Label:     country.Name,
		Latitude:  country.Latitude,
		Longitude: country.Longitude,
		Geohash:   utils.EncodeGeohash(country.Latitude, country.Longitude, g.precision),
	}
}

func (g *Gazetteer) regionLocation(country *models.Country, region *models.GeoPoint) models.Location {
	label := country.Name
	if region.DisplayName != country.Name {
		label = region.DisplayName + ", " + country.Name
	}
	return models.Location{
		CountryID: country.ID,
		RegionID:  region.ID,
		Label:     label,
		Latitude:  region.Latitude,
		Longitude: region.Longitude,
		Geohash:   utils.EncodeGeohash(region.Latitude, region.Longitude, g.precision),
	}
}

func copyCountry(country models.Country) models.Country {
	country.Regions = append([]models.GeoPoint(nil), country.Regions...)
	return country
}

func validateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude %v must be between -90 and 90", latitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude %v must be between -180 and 180", longitude)
	}
	return nil
}
