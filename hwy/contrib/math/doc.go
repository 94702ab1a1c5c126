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

// Package math provides a vectorized single precision cube root.
//
// Cbrt computes the real cube root of each lane of a hwy.Float32x4:
//
//	y := math.Cbrt(hwy.Float32x4{0.01234, 1.12, 3, -8})
//
// The kernel is branch-free. Every lane goes through the same stages and
// special lanes are fixed up with masked selects at the end:
//
//  1. Classification: sign, zero, subnormal and NaN/Inf masks.
//  2. Estimate: an integer divide-by-three of the exponent/mantissa bits
//     plus a magic offset gives roughly 5 correct bits.
//  3. Refinement: two Halley iterations in double precision.
//  4. Composition: zeros are returned unchanged (sign included) and NaN/Inf
//     lanes return x+x.
//
// Results are within 1 ULP of the correctly rounded cube root for every
// finite float32, and Cbrt(-x) is bit-for-bit -Cbrt(x).
//
// # Refinement strategies
//
// Hosts that can hold four float64 lanes in one register refine all lanes
// at once (WideRefiner). Other hosts split the vector into two pairs of
// lanes (HalfWidthRefiner). Both produce identical bits. The strategy is
// chosen at init from hwy.HasWideFloat64 and may be overridden with the
// HWY_CBRT_REFINER environment variable ("half" or "wide") or UseRefiner.
//
// # Bulk operation
//
// CbrtSlice applies Cbrt to a slice, and CbrtSliceParallel spreads the work
// over a workerpool.Pool in ranges aligned to whole vectors.
package math
