package models

// GeoPoint is a region centroid inside a country
type GeoPoint struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Country is a gazetteer entry with its own centroid and a set of regions
type Country struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	FlagGlyph string     `json:"flagGlyph"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Regions   []GeoPoint `json:"regions"`
}

// Location is a resolved point that can be priced
type Location struct {
	CountryID string  `json:"countryId"`
	RegionID  string  `json:"regionId,omitempty"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash,omitempty"`
}
