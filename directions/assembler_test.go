package directions_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvguide/config"
	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/directions"
	"github.com/katalvlaran/lvguide/maneuver"
	"github.com/katalvlaran/lvguide/markup"
	"github.com/katalvlaran/lvguide/narrative"
	"github.com/katalvlaran/lvguide/phrase"
	"github.com/katalvlaran/lvguide/routemap"
)

const spanFormat = `%1% (<span class=<QUOTES>phoneme<QUOTES>>/%2%/</span>)`

func span(text, ipa string) string {
	return text + ` (<span class=&quot;phoneme&quot;>/` + ipa + `/</span>)`
}

// ExitSignsSuite routes the exit-sign fixture with markup enabled.
type ExitSignsSuite struct {
	suite.Suite
	legs      map[string][]core.Edge
	assembler *directions.Assembler
}

func (s *ExitSignsSuite) SetupSuite() {
	f, err := routemap.LoadFixture("../testdata/exit_signs.yaml")
	s.Require().NoError(err)
	legs, err := f.LegEdges()
	s.Require().NoError(err)
	s.legs = make(map[string][]core.Edge, len(legs))
	for i, path := range f.Legs {
		s.legs[path] = legs[i]
	}

	cfg := config.Default()
	cfg.Markup = markup.Config{Enabled: true, PhonemeFormat: spanFormat}
	s.assembler, err = directions.FromConfig(cfg)
	s.Require().NoError(err)
}

func (s *ExitSignsSuite) leg(path string) directions.Leg {
	leg, err := s.assembler.BuildLeg(s.legs[path])
	s.Require().NoError(err)

	return leg
}

func (s *ExitSignsSuite) TestExitWithPronunciations() {
	leg := s.leg("ABCD")
	s.Require().Len(leg.Maneuvers, 4)
	s.Equal(maneuver.KindStart, leg.Maneuvers[0].Kind)
	s.Equal([]string{"I 70"}, leg.Maneuvers[0].StreetNames.Texts())

	exit := leg.Maneuvers[1]
	s.Equal(maneuver.KindExitRight, exit.Kind)
	s.Equal([]string{"SR 37", "Lancaster Road"}, exit.Signs.Get(core.SignExitBranch).Texts())
	s.Equal([]string{"Granville", "Lancaster"}, exit.Signs.Get(core.SignExitToward).Texts())
	s.Equal(core.AlphabetIPA, exit.Signs.Get(core.SignExitBranch)[1].Pronunciation.Alphabet)
	s.Equal("ˈlæŋkəstər ˈɹoʊd", exit.Signs.Get(core.SignExitBranch)[1].Pronunciation.Value)

	s.Equal(narrative.Instruction{
		Instruction: "Take exit 126B onto SR 37/Lancaster Road toward Granville/Lancaster.",
		VerbalAlert: "Take exit " + span("126B", "1 26bi") + ".",
		VerbalPre: "Take exit " + span("126B", "1 26bi") +
			" onto " + span("SR 37", "ˈsinjər 37") + ", " + span("Lancaster Road", "ˈlæŋkəstər ˈɹoʊd") +
			" toward " + span("Granville", "ˈgɹænvɪl") + ", " + span("Lancaster", "ˈlæŋkəstər") + ".",
	}, leg.Instructions[1])

	onto := leg.Maneuvers[2]
	s.Equal(maneuver.KindRight, onto.Kind)
	s.Equal([]string{"Lancaster Road", "SR 37"}, onto.StreetNames.Texts())
	s.Equal("ˈsinjər 37", onto.StreetNames[1].Pronunciation.Value)
	s.Equal(narrative.Instruction{
		Instruction:    "Turn right onto Lancaster Road/SR 37.",
		VerbalSuccinct: "Turn right.",
		VerbalAlert:    "Turn right onto " + span("Lancaster Road", "ˈlæŋkəstər ˈɹoʊd") + ".",
		VerbalPre:      "Turn right onto " + span("Lancaster Road", "ˈlæŋkəstər ˈɹoʊd") + ", " + span("SR 37", "ˈsinjər 37") + ".",
		VerbalPost:     "Continue for 400 meters.",
	}, leg.Instructions[2])

	s.Equal(maneuver.KindDestination, leg.Maneuvers[3].Kind)
	s.InDelta(500+806.2+400, leg.Length, 0.1)
}

func (s *ExitSignsSuite) TestToDestinationsSurfaceAsToward() {
	leg := s.leg("GHIJ")
	s.Require().Len(leg.Maneuvers, 4)
	exit := leg.Maneuvers[1]
	s.Equal(maneuver.KindExitRight, exit.Kind)
	toward := exit.Signs.Get(core.SignExitToward)
	s.Equal([]string{"I 80", "Main Street"}, toward.Texts())
	s.Equal("aɪ 80", toward[0].Pronunciation.Value)
	s.Equal("meɪn strit", toward[1].Pronunciation.Value)

	s.Equal(narrative.Instruction{
		Instruction: "Take exit 126B toward I 80/Main Street.",
		VerbalAlert: "Take exit " + span("126B", "1 26bi") + ".",
		VerbalPre: "Take exit " + span("126B", "1 26bi") +
			" toward " + span("I 80", "aɪ 80") + ", " + span("Main Street", "meɪn strit") + ".",
	}, leg.Instructions[1])
}

func (s *ExitSignsSuite) TestPlainSignWithoutPronunciation() {
	leg := s.leg("DCEF")
	s.Require().Len(leg.Maneuvers, 4)
	s.Equal(maneuver.KindRampRight, leg.Maneuvers[1].Kind)
	s.Equal(maneuver.KindMerge, leg.Maneuvers[2].Kind)

	ramp := leg.Instructions[1]
	s.Equal("Take the I 70 East ramp on the right.", ramp.Instruction)
	s.Equal("Take the I 70 East ramp on the right.", ramp.VerbalPre)
	s.NotContains(ramp.VerbalPre, "span")
	s.Nil(leg.Maneuvers[1].Signs.Get(core.SignExitBranch)[0].Pronunciation)

	s.Equal("Drive north on Lancaster Road/SR 37.", leg.Instructions[0].Instruction)
	s.Equal("Merge onto I 70.", leg.Instructions[2].Instruction)
}

func (s *ExitSignsSuite) TestRouteTotals() {
	route, err := s.assembler.BuildRoute(s.legs["ABCD"], s.legs["DCEF"])
	s.Require().NoError(err)
	s.Len(route.Legs, 2)
	s.InDelta(route.Legs[0].Length+route.Legs[1].Length, route.Length, 1e-9)
	s.Equal(route.Legs[0].Time+route.Legs[1].Time, route.Time)
	s.Positive(route.Time)

	d, err := s.assembler.Build([][]core.Edge{s.legs["ABCD"]}, [][]core.Edge{s.legs["GHIJ"]})
	s.Require().NoError(err)
	s.Len(d.Routes, 2)
}

func TestExitSigns(t *testing.T) {
	suite.Run(t, new(ExitSignsSuite))
}

func TestBuild_Errors(t *testing.T) {
	a := directions.New()

	_, err := a.BuildLeg(nil)
	assert.True(t, errors.Is(err, core.ErrMalformedInput))

	_, err = a.BuildRoute()
	assert.True(t, errors.Is(err, directions.ErrNoLegs))

	_, err = a.BuildRoute([]core.Edge{{}}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMalformedInput))
	assert.Contains(t, err.Error(), "leg 1")

	_, err = a.Build()
	assert.True(t, errors.Is(err, directions.ErrNoRoutes))
}

func TestFromConfig_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Markup.PhonemeFormat = "%1%"
	_, err := directions.FromConfig(cfg)
	assert.True(t, errors.Is(err, markup.ErrConfiguration))

	cfg = config.Default()
	cfg.DictionaryPath = filepath.Join(t.TempDir(), "absent.yaml")
	_, err = directions.FromConfig(cfg)
	assert.True(t, errors.Is(err, phrase.ErrBadDictionary))
}

func TestFromConfig_Dictionary(t *testing.T) {
	doc := `
language: en-GB
phrases:
  start:
    instruction:
      street: "Head <CARDINAL_DIRECTION> along <STREET_NAMES>."
relative_directions: {left: left, right: right}
cardinal_directions: {north: north, northeast: north-east, east: east, southeast: south-east, south: south, southwest: south-west, west: west, northwest: north-west}
ordinals: [first]
units:
  metric: {less_than_ten: "under 10 metres", short: "<DISTANCE> metres", one: "1 kilometre", long: "<DISTANCE> kilometres"}
  imperial: {less_than_ten: "under 10 feet", short: "<DISTANCE> feet", one: "1 mile", long: "<DISTANCE> miles"}
`
	path := filepath.Join(t.TempDir(), "en-GB.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg := config.Default()
	cfg.Language = "en-GB"
	cfg.DictionaryPath = path
	a, err := directions.FromConfig(cfg)
	require.NoError(t, err)

	leg, err := a.BuildLeg([]core.Edge{{Names: core.NamedTexts{core.Plain("High Street")}, BeginHeading: 45, Length: 100}})
	require.NoError(t, err)
	assert.Equal(t, "Head north-east along High Street.", leg.Instructions[0].Instruction)
	assert.Empty(t, leg.Instructions[1].Instruction)
}
