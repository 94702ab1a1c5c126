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

package hwy

// This file provides float32 <-> float64 promotion and demotion.
//
// Promotion is exact. Demotion rounds to nearest even, which matches
// CVTPD2PS / FCVTN under the default rounding mode.
//
// Hosts with 256-bit double registers widen all 4 lanes at once
// (PromoteF32ToF64 / DemoteF64ToF32). 128-bit hosts widen each half
// separately (PromoteLower/PromoteUpper, then DemoteTwoF64ToF32), which
// yields identical lane values.

// PromoteF32ToF64 widens all 4 float32 lanes to float64.
func PromoteF32ToF64(v Float32x4) Float64x4 {
	return Float64x4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

// PromoteLowerF32ToF64 widens lanes 0 and 1.
func PromoteLowerF32ToF64(v Float32x4) Float64x2 {
	return Float64x2{float64(v[0]), float64(v[1])}
}

// PromoteUpperF32ToF64 widens lanes 2 and 3.
func PromoteUpperF32ToF64(v Float32x4) Float64x2 {
	return Float64x2{float64(v[2]), float64(v[3])}
}

// DemoteF64ToF32 narrows 4 float64 lanes to float32.
func DemoteF64ToF32(v Float64x4) Float32x4 {
	return Float32x4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// DemoteTwoF64ToF32 narrows two halves and recombines them in lane order:
// lo supplies lanes 0-1, hi supplies lanes 2-3.
func DemoteTwoF64ToF32(lo, hi Float64x2) Float32x4 {
	return Float32x4{float32(lo[0]), float32(lo[1]), float32(hi[0]), float32(hi[1])}
}
