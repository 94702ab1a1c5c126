package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDemo(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(t.Context(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRunSampleInputs(t *testing.T) {
	out, _, err := runDemo(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "dispatch: ")
	assert.Equal(t, "x\tsimd\tstdlib", lines[1])
	assert.Equal(t, "0.012340\t0.231085\t0.231085", lines[2])
	assert.Equal(t, "1.120000\t1.038499\t1.038499", lines[3])
	assert.Equal(t, "3.000000\t1.442250\t1.442250", lines[4])
	assert.Equal(t, "-0.000000\t-0.000000\t-0.000000", lines[5])
}

func TestRunCustomInputs(t *testing.T) {
	out, _, err := runDemo(t, "-inputs", "8, -27,64")
	require.NoError(t, err)
	assert.Contains(t, out, "8.000000\t2.000000\t2.000000")
	assert.Contains(t, out, "-27.000000\t-3.000000\t-3.000000")
	assert.Contains(t, out, "64.000000\t4.000000\t4.000000")
}

func TestRunRefinerFlag(t *testing.T) {
	out, logs, err := runDemo(t, "-refiner", "half", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "refiner: half")
	assert.Contains(t, logs, "cube root refiner selected")
	assert.Contains(t, logs, "dispatch level selected")

	_, _, err = runDemo(t, "-refiner", "triple")
	assert.ErrorContains(t, err, "unknown cube root refiner")
}

func TestRunBadInputs(t *testing.T) {
	_, _, err := runDemo(t, "-inputs", "1,abc")
	assert.ErrorContains(t, err, `invalid input "abc"`)

	_, _, err = runDemo(t, "-inputs", " , ")
	assert.ErrorContains(t, err, "no inputs")
}

func TestRunSweep(t *testing.T) {
	out, _, err := runDemo(t, "-sweep", "-lo", "1e-38", "-hi", "1e38", "-stride", "1000003")
	require.NoError(t, err)
	assert.Regexp(t, `sweep \[1e-38, 1e\+38\] stride 1000003: n=\d+ max_ulp=[01] `, out)
}

func TestRunCPU(t *testing.T) {
	out, _, err := runDemo(t, "-cpu")
	require.NoError(t, err)
	assert.Contains(t, out, "HasWideFloat64")
}
