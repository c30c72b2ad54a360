package gazetteer

import (
	"strings"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/utils"
)

type regionMatch struct {
	country int
	region  int
	length  int
}

// ResolveFreeText matches a legacy free-text pet location against region and
// country names. The longest region name found in the text wins; a country name
// in the text restricts the candidates to its own regions, falling back to the
// country centroid. No match, or a tie that the country cannot break, is
// reported as an unresolved location instead of guessing.
func (g *Gazetteer) ResolveFreeText(text string) (models.Location, error) {
	normalized := utils.NormalizeText(text)
	if normalized == "" {
		return models.Location{}, apperrors.UnresolvedLocation("origin text is empty")
	}

	var regionMatches []regionMatch
	remainder := normalized
	for ci, country := range g.countries {
		for ri, region := range country.Regions {
			if name := utils.NormalizeText(region.DisplayName); name != "" && strings.Contains(normalized, name) {
				regionMatches = append(regionMatches, regionMatch{country: ci, region: ri, length: len(name)})
				remainder = strings.ReplaceAll(remainder, name, " ")
			}
		}
	}

	// Country names are looked up outside matched region names, so "Northern
	// Ireland" does not also name Ireland.
	countryMatches := make(map[int]int)
	for ci, country := range g.countries {
		if name := utils.NormalizeText(country.Name); name != "" && strings.Contains(remainder, name) {
			countryMatches[ci] = len(name)
		}
	}

	if len(countryMatches) > 0 {
		var narrowed []regionMatch
		for _, m := range regionMatches {
			if _, ok := countryMatches[m.country]; ok {
				narrowed = append(narrowed, m)
			}
		}
		// Regions of countries the text does not name are never used.
		regionMatches = narrowed
	}

	if len(regionMatches) > 0 {
		best, tied := longestRegion(regionMatches)
		if tied {
			return models.Location{}, apperrors.UnresolvedLocation("origin %q matches more than one region", utils.Truncate(text, 64))
		}
		country := g.countries[best.country]
		return g.regionLocation(&country, &country.Regions[best.region]), nil
	}

	if len(countryMatches) > 0 {
		best, bestLen, tied := -1, 0, false
		for ci, length := range countryMatches {
			switch {
			case length > bestLen:
				best, bestLen, tied = ci, length, false
			case length == bestLen:
				tied = true
			}
		}
		if tied {
			return models.Location{}, apperrors.UnresolvedLocation("origin %q matches more than one country", utils.Truncate(text, 64))
		}
		country := g.countries[best]
		return g.countryLocation(&country), nil
	}

	return models.Location{}, apperrors.UnresolvedLocation("origin %q does not match any known location", utils.Truncate(text, 64))
}

func longestRegion(matches []regionMatch) (regionMatch, bool) {
	best := matches[0]
	tied := false
	for _, m := range matches[1:] {
		switch {
		case m.length > best.length:
			best, tied = m, false
		case m.length == best.length && (m.country != best.country || m.region != best.region):
			tied = true
		}
	}
	return best, tied
}
