package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../../testdata/exit_signs.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestNarrate_Text(t *testing.T) {
	out, err := run(t, "narrate", fixturePath, "--legs", "ABCD")
	require.NoError(t, err)
	assert.Contains(t, out, "leg ABCD: 1706 m")
	assert.Contains(t, out, " 1. Drive east on I 70.\n")
	assert.Contains(t, out, " 2. Take exit 126B onto SR 37/Lancaster Road toward Granville/Lancaster.\n")
	assert.Contains(t, out, "    alert:   Take exit 126B.\n")
	assert.Contains(t, out, " 3. Turn right onto Lancaster Road/SR 37.\n")
	assert.Contains(t, out, "    post:    Continue for 400 meters.\n")
	assert.NotContains(t, out, "span", "markup is off by default")
}

func TestNarrate_Waypoints(t *testing.T) {
	out, err := run(t, "narrate", fixturePath, "--legs", "A>D")
	require.NoError(t, err)
	assert.Contains(t, out, "leg A>D: 1706 m")
	assert.Contains(t, out, " 3. Turn right onto Lancaster Road/SR 37.\n")
}

func TestNarrate_JSONWithMarkupFromEnv(t *testing.T) {
	t.Setenv("LVGUIDE_MARKUP_ENABLED", "true")
	t.Setenv("LVGUIDE_PHONEME_FORMAT", "%1% (<span class=<QUOTES>phoneme<QUOTES>>/%2%/</span>)")

	out, err := run(t, "narrate", fixturePath, "--format", "json")
	require.NoError(t, err)

	var legs []legView
	require.NoError(t, json.Unmarshal([]byte(out), &legs))
	require.Len(t, legs, 3)
	assert.Equal(t, "GHIJ", legs[1].Path)

	exit := legs[1].Maneuvers[1]
	assert.Equal(t, "exit_right", exit.Kind)
	assert.Equal(t, []string{"I 80", "Main Street"}, exit.Signs["exit_toward"])
	assert.Equal(t, "Take exit 126B (<span class=&quot;phoneme&quot;>/1 26bi/</span>).", exit.Narrative.VerbalAlert)
}

func TestNarrate_Pretty(t *testing.T) {
	out, err := run(t, "narrate", fixturePath, "--legs", "DCEF", "-f", "pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "directions.Route{")
	assert.Contains(t, out, "Take the I 70 East ramp on the right.")
}

func TestNarrate_Errors(t *testing.T) {
	_, err := run(t, "narrate")
	assert.Error(t, err)

	_, err = run(t, "narrate", fixturePath, "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "narrate", fixturePath, "--legs", "AC")
	assert.ErrorContains(t, err, "no way")

	_, err = run(t, "narrate", "absent.yaml")
	assert.Error(t, err)

	t.Setenv("LVGUIDE_UNITS", "furlongs")
	_, err = run(t, "narrate", fixturePath)
	assert.ErrorContains(t, err, "invalid configuration")
}
