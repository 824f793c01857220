package turn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/turn"
)

// TestDegree checks the clockwise turn angle between headings.
func TestDegree(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     int
	}{
		{"SlightRight", 315, 335, 20},
		{"RightFromNorth", 0, 90, 90},
		{"RightFromEast", 90, 180, 90},
		{"SharpRight", 180, 340, 160},
		{"SharpRightNarrow", 180, 352, 172},
		{"SharpLeft", 180, 40, 220},
		{"SharpLeftNarrow", 180, 10, 190},
		{"Reverse", 0, 180, 180},
		{"Left", 270, 180, 270},
		{"SlightLeft", 90, 70, 340},
		{"ContinueAcrossNorth", 358, 2, 4},
		{"Unnormalised", -90, 450, 180},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, turn.Degree(tc.from, tc.to))
		})
	}
}

// TestClassify walks the default table across its boundaries.
func TestClassify(t *testing.T) {
	cases := []struct {
		degree int
		want   core.TurnCategory
	}{
		{0, core.TurnStraight},
		{10, core.TurnStraight},
		{11, core.TurnSlightRight},
		{44, core.TurnSlightRight},
		{45, core.TurnRight},
		{135, core.TurnRight},
		{136, core.TurnSharpRight},
		{179, core.TurnSharpRight},
		{180, core.TurnReverse},
		{181, core.TurnSharpLeft},
		{224, core.TurnSharpLeft},
		{225, core.TurnLeft},
		{315, core.TurnLeft},
		{316, core.TurnSlightLeft},
		{349, core.TurnSlightLeft},
		{350, core.TurnStraight},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, turn.Classify(tc.degree), "degree %d", tc.degree)
	}
}

// TestCardinalOf checks sector boundaries.
func TestCardinalOf(t *testing.T) {
	require.Equal(t, turn.North, turn.CardinalOf(0))
	require.Equal(t, turn.North, turn.CardinalOf(22))
	require.Equal(t, turn.NorthEast, turn.CardinalOf(23))
	require.Equal(t, turn.East, turn.CardinalOf(90))
	require.Equal(t, turn.South, turn.CardinalOf(180))
	require.Equal(t, turn.West, turn.CardinalOf(270))
	require.Equal(t, turn.NorthWest, turn.CardinalOf(337))
	require.Equal(t, turn.North, turn.CardinalOf(338))
	require.Equal(t, "southeast", turn.CardinalOf(120).String())
}

// TestTime checks travel time in seconds.
func TestTime(t *testing.T) {
	require.Equal(t, 3600, turn.Time(100, 100))
	require.Equal(t, 900, turn.Time(5, 20))
	require.Equal(t, 0, turn.Time(5, 0))
}
