package narrative_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvguide/maneuver"
	"github.com/katalvlaran/lvguide/narrative"
	"github.com/katalvlaran/lvguide/phrase"
)

// postFor returns the post-transition text of a start maneuver of length m.
func postFor(b *narrative.Builder, m float64) string {
	return b.Build([]maneuver.Maneuver{
		{Kind: maneuver.KindStart, End: 1, Length: m},
		{Kind: maneuver.KindDestination, Begin: 1, End: 1},
	})[0].VerbalPost
}

func TestLength_Metric(t *testing.T) {
	b := narrative.New(nil, nil)
	cases := []struct {
		meters float64
		want   string
	}{
		{0.5, ""},
		{1, "Continue for less than 10 meters."},
		{9.9, "Continue for less than 10 meters."},
		{14, "Continue for 10 meters."},
		{96, "Continue for 100 meters."},
		{400, "Continue for 400 meters."},
		{449, "Continue for 400 meters."},
		{960, "Continue for 1 kilometer."},
		{1040, "Continue for 1 kilometer."},
		{1500, "Continue for 1.5 kilometers."},
		{12000, "Continue for 12 kilometers."},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, postFor(b, tc.meters), "%v m", tc.meters)
	}
}

func TestLength_Imperial(t *testing.T) {
	b := narrative.New(nil, nil, narrative.WithUnits(phrase.UnitsImperial))
	cases := []struct {
		meters float64
		want   string
	}{
		{2, "Continue for less than 10 feet."},
		{10, "Continue for 30 feet."},
		{100, "Continue for 300 feet."},
		{1609.344, "Continue for 1 mile."},
		{4023.36, "Continue for 2.5 miles."},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, postFor(b, tc.meters), "%v m", tc.meters)
	}
}

const germanDoc = `
language: de-DE
phrases:
  start:
    verbal_post:
      bare: "Weiter für <LENGTH>."
relative_directions: {left: links, right: rechts}
cardinal_directions: {north: Norden, northeast: Nordosten, east: Osten, southeast: Südosten, south: Süden, southwest: Südwesten, west: Westen, northwest: Nordwesten}
ordinals: [erste]
units:
  metric: {less_than_ten: "weniger als 10 Meter", short: "<DISTANCE> Meter", one: "1 Kilometer", long: "<DISTANCE> Kilometer"}
  imperial: {less_than_ten: "weniger als 10 Fuß", short: "<DISTANCE> Fuß", one: "1 Meile", long: "<DISTANCE> Meilen"}
`

func TestLength_LocaleNumbers(t *testing.T) {
	d, err := phrase.Parse([]byte(germanDoc))
	require.NoError(t, err)
	b := narrative.New(d, nil)

	assert.Equal(t, "Weiter für 1,5 Kilometer.", postFor(b, 1500))
	assert.Equal(t, "Weiter für 300 Meter.", postFor(b, 320))
}
