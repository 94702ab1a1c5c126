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

package math

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/hwycbrt/cbrt4/hwy"
	"github.com/xyproto/env/v2"
)

// Refiner improves a cube root estimate r of x with RefineIterations Halley
// steps evaluated in double precision, and narrows the result back to float32.
//
// All implementations must return identical bits for identical inputs.
type Refiner interface {
	Refine(r, x hwy.Float32x4) hwy.Float32x4
	Name() string
}

// float64Vec is satisfied by the double precision vector types.
type float64Vec[V any] interface {
	Add(V) V
	Mul(V) V
	Div(V) V
}

// halleyStep computes a * (a³ + 2v) / (2a³ + v). The operation order is fixed
// so that every refiner rounds identically.
func halleyStep[V float64Vec[V]](a, v V) V {
	a3 := a.Mul(a).Mul(a)
	tmp := a3.Add(v)
	mul := v.Add(tmp)
	div := a3.Add(tmp)
	mul = mul.Mul(a)
	return mul.Div(div)
}

func refineHalley[V float64Vec[V]](a, v V) V {
	for range RefineIterations {
		a = halleyStep(a, v)
	}
	return a
}

// HalfWidthRefiner refines lanes 0-1 and 2-3 as two Float64x2 halves, for
// hosts whose registers hold only two doubles.
type HalfWidthRefiner struct{}

// Name returns "half".
func (HalfWidthRefiner) Name() string { return "half" }

// Refine implements Refiner.
func (HalfWidthRefiner) Refine(r, x hwy.Float32x4) hwy.Float32x4 {
	lo := refineHalley(hwy.PromoteLowerF32ToF64(r), hwy.PromoteLowerF32ToF64(x))
	hi := refineHalley(hwy.PromoteUpperF32ToF64(r), hwy.PromoteUpperF32ToF64(x))
	return hwy.DemoteTwoF64ToF32(lo, hi)
}

// WideRefiner refines all four lanes as one Float64x4.
type WideRefiner struct{}

// Name returns "wide".
func (WideRefiner) Name() string { return "wide" }

// Refine implements Refiner.
func (WideRefiner) Refine(r, x hwy.Float32x4) hwy.Float32x4 {
	return hwy.DemoteF64ToF32(refineHalley(hwy.PromoteF32ToF64(r), hwy.PromoteF32ToF64(x)))
}

// RefinerEnvVar names the environment variable that overrides the refiner
// chosen from host capabilities. Valid values are "half" and "wide".
const RefinerEnvVar = "HWY_CBRT_REFINER"

// getenv reads configuration variables. Tests replace it.
var getenv = env.Str

// ErrUnknownRefiner is returned by UseRefiner for names not in Refiners().
var ErrUnknownRefiner = errors.New("math: unknown cube root refiner")

// refiners maps names to strategies. "wide" is the archsimd refiner when the
// build and host support it.
var refiners = map[string]Refiner{
	HalfWidthRefiner{}.Name(): HalfWidthRefiner{},
	WideRefiner{}.Name():      platformWideRefiner(),
}

// activeRefiner is used by Cbrt. It is written at init and by UseRefiner only.
var activeRefiner Refiner = HalfWidthRefiner{}

func init() {
	activeRefiner = defaultRefiner()
}

// defaultRefiner picks the refiner for this host, honoring RefinerEnvVar.
func defaultRefiner() Refiner {
	name, source := "half", "capability"
	if hwy.HasWideFloat64() {
		name = "wide"
	}
	if override := getenv(RefinerEnvVar); override != "" {
		if _, ok := refiners[override]; ok {
			name, source = override, RefinerEnvVar
		} else {
			hwy.Logger().Warn("hwy/contrib/math: ignoring unknown cube root refiner",
				"env", RefinerEnvVar, "value", override, "valid", Refiners())
		}
	}
	hwy.Logger().Debug("hwy/contrib/math: cube root refiner selected",
		"refiner", name, "source", source, "level", hwy.CurrentName())
	return refiners[name]
}

// Refiners returns the names accepted by UseRefiner, sorted.
func Refiners() []string {
	return slices.Sorted(maps.Keys(refiners))
}

// CurrentRefiner returns the refiner used by Cbrt.
func CurrentRefiner() Refiner {
	return activeRefiner
}

// UseRefiner makes Cbrt use the named refiner. An empty name restores the
// default selection, re-reading RefinerEnvVar and the dispatch state.
//
// UseRefiner is meant for program setup and tests. It must not be called
// while other goroutines are running Cbrt.
func UseRefiner(name string) error {
	if name == "" {
		activeRefiner = defaultRefiner()
		return nil
	}
	r, ok := refiners[name]
	if !ok {
		return fmt.Errorf("%w: %q (valid: %v)", ErrUnknownRefiner, name, Refiners())
	}
	activeRefiner = r
	hwy.Logger().Debug("hwy/contrib/math: cube root refiner selected",
		"refiner", name, "source", "UseRefiner")
	return nil
}
