package accuracy

import (
	"context"
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hwycbrt/cbrt4/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(x hwy.Float32x4) hwy.Float32x4 { return x }

// nudge returns x moved up one ULP in lane 1, so every fourth input is off.
func nudge(x hwy.Float32x4) hwy.Float32x4 {
	x[1] = stdmath.Nextafter32(x[1], float32(stdmath.Inf(1)))
	return x
}

func scalarIdentity(x float32) float32 { return x }

func TestSweepExact(t *testing.T) {
	inputs := BitRange(1, 2, 1<<10)
	r, err := Sweep(t.Context(), identity, scalarIdentity, inputs, 3)
	require.NoError(t, err)

	want := Report{Count: len(inputs), Worst: inputs[0]}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Sweep report mismatch (-want +got):\n%s", diff)
	}
}

func TestSweepCountsMismatches(t *testing.T) {
	inputs := make([]float32, 4*5000+2) // spans several batches and a partial group
	for i := range inputs {
		inputs[i] = float32(i + 1)
	}

	r, err := Sweep(t.Context(), nudge, scalarIdentity, inputs, 0)
	require.NoError(t, err)

	// Lane 1 of each group of four, including the trailing partial group.
	wantMismatches := 5001
	assert.Equal(t, len(inputs), r.Count)
	assert.Equal(t, wantMismatches, r.Mismatches)
	assert.Equal(t, uint32(1), r.MaxULP)
	assert.InDelta(t, float64(wantMismatches)/float64(len(inputs)), r.MeanULP, 1e-12)
	assert.Equal(t, float32(2), r.Worst, "first input at the max ULP distance")
	assert.Greater(t, r.MaxRelErr, 0.0)
	assert.Contains(t, r.String(), "mismatches=5001")
}

func TestSweepEmpty(t *testing.T) {
	r, err := Sweep(t.Context(), identity, scalarIdentity, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, Report{}, r)
}

func TestSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := Sweep(ctx, identity, scalarIdentity, make([]float32, 3*sweepBatch), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
