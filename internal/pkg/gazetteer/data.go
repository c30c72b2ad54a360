package gazetteer

import "github.com/pawsfam/pawhaven/internal/pkg/models"

// builtinCountries holds approximate centroids for the destinations the storefront ships to.
// Coordinates are good enough for distance estimation, not routing.
var builtinCountries = []models.Country{
	{
		ID: "us", Name: "United States", FlagGlyph: "🇺🇸", Latitude: 39.8283, Longitude: -98.5795,
		Regions: []models.GeoPoint{
			{ID: "ca", DisplayName: "California", Latitude: 36.7783, Longitude: -119.4179},
			{ID: "tx", DisplayName: "Texas", Latitude: 31.9686, Longitude: -99.9018},
			{ID: "ny", DisplayName: "New York", Latitude: 42.9538, Longitude: -75.5268},
			{ID: "fl", DisplayName: "Florida", Latitude: 27.6648, Longitude: -81.5158},
			{ID: "il", DisplayName: "Illinois", Latitude: 40.6331, Longitude: -89.3985},
			{ID: "wa", DisplayName: "Washington", Latitude: 47.7511, Longitude: -120.7401},
			{ID: "co", DisplayName: "Colorado", Latitude: 39.5501, Longitude: -105.7821},
			{ID: "ga", DisplayName: "Georgia", Latitude: 32.1656, Longitude: -82.9001},
			{ID: "az", DisplayName: "Arizona", Latitude: 34.0489, Longitude: -111.0937},
			{ID: "ma", DisplayName: "Massachusetts", Latitude: 42.4072, Longitude: -71.3824},
		},
	},
	{
		ID: "ca", Name: "Canada", FlagGlyph: "🇨🇦", Latitude: 56.1304, Longitude: -106.3468,
		Regions: []models.GeoPoint{
			{ID: "on", DisplayName: "Ontario", Latitude: 51.2538, Longitude: -85.3232},
			{ID: "qc", DisplayName: "Quebec", Latitude: 52.9399, Longitude: -73.5491},
			{ID: "bc", DisplayName: "British Columbia", Latitude: 53.7267, Longitude: -127.6476},
			{ID: "ab", DisplayName: "Alberta", Latitude: 53.9333, Longitude: -116.5765},
			{ID: "ns", DisplayName: "Nova Scotia", Latitude: 44.6820, Longitude: -63.7443},
		},
	},
	{
		ID: "mx", Name: "Mexico", FlagGlyph: "🇲🇽", Latitude: 23.6345, Longitude: -102.5528,
		Regions: []models.GeoPoint{
			{ID: "cmx", DisplayName: "Mexico City", Latitude: 19.4326, Longitude: -99.1332},
			{ID: "jal", DisplayName: "Jalisco", Latitude: 20.6595, Longitude: -103.3494},
			{ID: "nle", DisplayName: "Nuevo León", Latitude: 25.5922, Longitude: -99.9962},
		},
	},
	{
		ID: "br", Name: "Brazil", FlagGlyph: "🇧🇷", Latitude: -14.2350, Longitude: -51.9253,
		Regions: []models.GeoPoint{
			{ID: "sp", DisplayName: "São Paulo", Latitude: -23.5505, Longitude: -46.6333},
			{ID: "rj", DisplayName: "Rio de Janeiro", Latitude: -22.9068, Longitude: -43.1729},
		},
	},
	{
		ID: "gb", Name: "United Kingdom", FlagGlyph: "🇬🇧", Latitude: 55.3781, Longitude: -3.4360,
		Regions: []models.GeoPoint{
			{ID: "eng", DisplayName: "England", Latitude: 52.3555, Longitude: -1.1743},
			{ID: "sct", DisplayName: "Scotland", Latitude: 56.4907, Longitude: -4.2026},
			{ID: "wls", DisplayName: "Wales", Latitude: 52.1307, Longitude: -3.7837},
			{ID: "nir", DisplayName: "Northern Ireland", Latitude: 54.7877, Longitude: -6.4923},
		},
	},
	{
		ID: "ie", Name: "Ireland", FlagGlyph: "🇮🇪", Latitude: 53.1424, Longitude: -7.6921,
		Regions: []models.GeoPoint{
			{ID: "d", DisplayName: "Dublin", Latitude: 53.3498, Longitude: -6.2603},
			{ID: "c", DisplayName: "Cork", Latitude: 51.8985, Longitude: -8.4756},
			{ID: "g", DisplayName: "Galway", Latitude: 53.2707, Longitude: -9.0568},
		},
	},
	{
		ID: "fr", Name: "France", FlagGlyph: "🇫🇷", Latitude: 46.2276, Longitude: 2.2137,
		Regions: []models.GeoPoint{
			{ID: "idf", DisplayName: "Île-de-France", Latitude: 48.8499, Longitude: 2.6370},
			{ID: "paca", DisplayName: "Provence-Alpes-Côte d'Azur", Latitude: 43.9352, Longitude: 6.0679},
			{ID: "ara", DisplayName: "Auvergne-Rhône-Alpes", Latitude: 45.4471, Longitude: 4.3853},
			{ID: "naq", DisplayName: "Nouvelle-Aquitaine", Latitude: 45.7087, Longitude: 0.6269},
		},
	},
	{
		ID: "de", Name: "Germany", FlagGlyph: "🇩🇪", Latitude: 51.1657, Longitude: 10.4515,
		Regions: []models.GeoPoint{
			{ID: "by", DisplayName: "Bavaria", Latitude: 48.7904, Longitude: 11.4979},
			{ID: "be", DisplayName: "Berlin", Latitude: 52.5200, Longitude: 13.4050},
			{ID: "nw", DisplayName: "North Rhine-Westphalia", Latitude: 51.4332, Longitude: 7.6616},
			{ID: "hh", DisplayName: "Hamburg", Latitude: 53.5511, Longitude: 9.9937},
		},
	},
	{
		ID: "nl", Name: "Netherlands", FlagGlyph: "🇳🇱", Latitude: 52.1326, Longitude: 5.2913,
		Regions: []models.GeoPoint{
			{ID: "nh", DisplayName: "North Holland", Latitude: 52.5206, Longitude: 4.7885},
			{ID: "zh", DisplayName: "South Holland", Latitude: 52.0208, Longitude: 4.4937},
			{ID: "ut", DisplayName: "Utrecht", Latitude: 52.0907, Longitude: 5.1214},
		},
	},
	{
		ID: "es", Name: "Spain", FlagGlyph: "🇪🇸", Latitude: 40.4637, Longitude: -3.7492,
		Regions: []models.GeoPoint{
			{ID: "md", DisplayName: "Madrid", Latitude: 40.4168, Longitude: -3.7038},
			{ID: "ct", DisplayName: "Catalonia", Latitude: 41.5912, Longitude: 1.5209},
			{ID: "an", DisplayName: "Andalusia", Latitude: 37.5443, Longitude: -4.7278},
		},
	},
	{
		ID: "it", Name: "Italy", FlagGlyph: "🇮🇹", Latitude: 41.8719, Longitude: 12.5674,
		Regions: []models.GeoPoint{
			{ID: "laz", DisplayName: "Lazio", Latitude: 41.6552, Longitude: 12.9896},
			{ID: "lom", DisplayName: "Lombardy", Latitude: 45.4791, Longitude: 9.8452},
			{ID: "tos", DisplayName: "Tuscany", Latitude: 43.7711, Longitude: 11.2486},
		},
	},
	{
		ID: "ae", Name: "United Arab Emirates", FlagGlyph: "🇦🇪", Latitude: 23.4241, Longitude: 53.8478,
		Regions: []models.GeoPoint{
			{ID: "du", DisplayName: "Dubai", Latitude: 25.2048, Longitude: 55.2708},
			{ID: "az", DisplayName: "Abu Dhabi", Latitude: 24.4539, Longitude: 54.3773},
		},
	},
	{
		ID: "za", Name: "South Africa", FlagGlyph: "🇿🇦", Latitude: -30.5595, Longitude: 22.9375,
		Regions: []models.GeoPoint{
			{ID: "gt", DisplayName: "Gauteng", Latitude: -26.2708, Longitude: 28.1123},
			{ID: "wc", DisplayName: "Western Cape", Latitude: -33.2278, Longitude: 20.0409},
			{ID: "kzn", DisplayName: "KwaZulu-Natal", Latitude: -28.5306, Longitude: 30.8958},
		},
	},
	{
		ID: "jp", Name: "Japan", FlagGlyph: "🇯🇵", Latitude: 36.2048, Longitude: 138.2529,
		Regions: []models.GeoPoint{
			{ID: "13", DisplayName: "Tokyo", Latitude: 35.6762, Longitude: 139.6503},
			{ID: "27", DisplayName: "Osaka", Latitude: 34.6937, Longitude: 135.5023},
			{ID: "01", DisplayName: "Hokkaido", Latitude: 43.2203, Longitude: 142.8635},
		},
	},
	{
		ID: "sg", Name: "Singapore", FlagGlyph: "🇸🇬", Latitude: 1.3521, Longitude: 103.8198,
		Regions: []models.GeoPoint{
			{ID: "sg", DisplayName: "Singapore", Latitude: 1.3521, Longitude: 103.8198},
		},
	},
	{
		ID: "au", Name: "Australia", FlagGlyph: "🇦🇺", Latitude: -25.2744, Longitude: 133.7751,
		Regions: []models.GeoPoint{
			{ID: "nsw", DisplayName: "New South Wales", Latitude: -31.2532, Longitude: 146.9211},
			{ID: "vic", DisplayName: "Victoria", Latitude: -37.4713, Longitude: 144.7852},
			{ID: "qld", DisplayName: "Queensland", Latitude: -20.9176, Longitude: 142.7028},
			{ID: "wa", DisplayName: "Western Australia", Latitude: -27.6728, Longitude: 121.6283},
		},
	},
	{
		ID: "nz", Name: "New Zealand", FlagGlyph: "🇳🇿", Latitude: -40.9006, Longitude: 174.8860,
		Regions: []models.GeoPoint{
			{ID: "auk", DisplayName: "Auckland", Latitude: -36.8485, Longitude: 174.7633},
			{ID: "wgn", DisplayName: "Wellington", Latitude: -41.2865, Longitude: 174.7762},
			{ID: "can", DisplayName: "Canterbury", Latitude: -43.5321, Longitude: 172.6362},
		},
	},
}
