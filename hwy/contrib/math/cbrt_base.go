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

import "github.com/hwycbrt/cbrt4/hwy"

// Cbrt computes the real cube root of each lane of x using the refiner
// chosen for this host (see CurrentRefiner).
//
// Special cases, per lane:
//
//	Cbrt(±0) = ±0
//	Cbrt(±Inf) = ±Inf
//	Cbrt(NaN) = NaN
//
// Negative inputs have negative cube roots. Cbrt never fails and never
// allocates.
func Cbrt(x hwy.Float32x4) hwy.Float32x4 {
	return CbrtWith(activeRefiner, x)
}

// CbrtWith is Cbrt with an explicit refinement strategy.
func CbrtWith(refiner Refiner, x hwy.Float32x4) hwy.Float32x4 {
	c := classifyCbrt(x)
	y := refiner.Refine(cbrtEstimate(x, c), x)

	// Zero lanes keep their sign; NaN and Inf lanes return x+x, which
	// quiets signaling NaNs.
	y = hwy.IfThenElse(c.isZero, x, y)
	return hwy.IfThenElse(c.isNaNOrInf, x.Add(x), y)
}
