// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package accuracy

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hwycbrt/cbrt4/hwy"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Func4 is a kernel over four float32 lanes.
type Func4 func(hwy.Float32x4) hwy.Float32x4

// Report summarizes a Sweep.
type Report struct {
	Count      int     // inputs evaluated
	MaxULP     uint32  // largest ULP distance from the reference
	MeanULP    float64 // mean ULP distance
	MaxRelErr  float64 // largest relative error
	Worst      float32 // an input that produced MaxULP
	Mismatches int     // inputs whose result differs from the reference at all
}

// String formats the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("n=%d max_ulp=%d mean_ulp=%.4g max_rel=%.3g worst=%g mismatches=%d",
		r.Count, r.MaxULP, r.MeanULP, r.MaxRelErr, r.Worst, r.Mismatches)
}

// sweepBatch is the number of inputs a goroutine evaluates between context
// checks. It is a multiple of 4 so that only the last batch is partial.
const sweepBatch = 4096

// Sweep evaluates f over inputs in groups of four lanes and compares every
// lane with ref. Batches run on up to workers goroutines (GOMAXPROCS if
// workers <= 0). A partial final group is padded with zeros whose results
// are ignored.
//
// Sweep returns ctx.Err() if ctx is canceled before all batches finish.
func Sweep(ctx context.Context, f Func4, ref func(float32) float32, inputs []float32, workers int) (Report, error) {
	if len(inputs) == 0 {
		return Report{}, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ulps := make([]float64, len(inputs))
	rels := make([]float64, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(inputs); start += sweepBatch {
		end := min(start+sweepBatch, len(inputs))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			measure(f, ref, inputs[start:end], ulps[start:end], rels[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	worst := floats.MaxIdx(ulps)
	r := Report{
		Count:     len(inputs),
		MaxULP:    uint32(ulps[worst]),
		MeanULP:   stat.Mean(ulps, nil),
		MaxRelErr: floats.Max(rels),
		Worst:     inputs[worst],
	}
	for _, u := range ulps {
		if u != 0 {
			r.Mismatches++
		}
	}
	return r, nil
}

func measure(f Func4, ref func(float32) float32, in []float32, ulps, rels []float64) {
	for i := 0; i < len(in); i += 4 {
		var x hwy.Float32x4
		n := copy(x[:], in[i:])
		y := f(x)
		for j := range n {
			want := ref(x[j])
			ulps[i+j] = float64(ULPDistance(y[j], want))
			rels[i+j] = RelativeError(y[j], want)
		}
	}
}
