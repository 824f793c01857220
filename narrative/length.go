package narrative

import (
	"math"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/katalvlaran/lvguide/phrase"
)

const (
	metersPerMile = 1609.344
	feetPerMeter  = 3.28084
)

// formatLength phrases a length in meters.
//
// Metric: below 10 m "less than ten"; below 100 m rounded to 10 m; below
// 1 km rounded to 100 m; otherwise kilometers with one decimal.
// Imperial: below 0.1 mi the same steps in feet; otherwise miles with one
// decimal. Numbers are formatted for the printer's language.
func formatLength(p *message.Printer, phrases phrase.UnitPhrases, units phrase.Units, meters float64) string {
	small, large := meters, meters/1000
	if units == phrase.UnitsImperial {
		small, large = meters*feetPerMeter, meters/metersPerMile
		if large >= 0.1 {
			return largeUnit(p, phrases, large)
		}
	}

	switch {
	case small < 10:
		return phrases.LessThanTen
	case small < 100:
		small = math.Round(small/10) * 10
	default:
		small = math.Round(small/100) * 100
	}
	if units == phrase.UnitsMetric && small >= 1000 {
		return largeUnit(p, phrases, large)
	}

	return phrase.Substitute(phrases.Short, phrase.Values{phrase.TokenDistance: p.Sprint(number.Decimal(int(small)))})
}

// largeUnit phrases kilometers or miles rounded to one decimal.
func largeUnit(p *message.Printer, phrases phrase.UnitPhrases, v float64) string {
	v = math.Round(v*10) / 10
	if v == 1 {
		return phrases.One
	}

	return phrase.Substitute(phrases.Long, phrase.Values{phrase.TokenDistance: p.Sprint(number.Decimal(v, number.MaxFractionDigits(1)))})
}
