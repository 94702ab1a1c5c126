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

// Package hwy provides fixed-width 128-bit and 256-bit vector values with
// the lane operations needed by branchless numeric kernels.
//
// It follows the Highway C++ library's design philosophy: kernels are
// written once against portable vector types, and the host capability
// (SSE2, AVX2, NEON, or scalar) is detected once at startup.
//
// All vector types are plain arrays with value semantics. Operations never
// allocate and never mutate their operands, so vectors can be freely copied
// and shared between goroutines.
//
// Basic usage:
//
//	import "github.com/hwycbrt/cbrt4/hwy"
//
//	a := hwy.LoadFloat32x4([]float32{1, 2, 3, 4})
//	b := hwy.BroadcastFloat32x4(2)
//	sum := a.Add(b)
//	sum.StoreSlice(out)
package hwy

// Float32x4 holds 4 IEEE-754 single-precision lanes.
type Float32x4 [4]float32

// Int32x4 holds 4 signed 32-bit lanes. It is used mostly as the bit-pattern
// view of a Float32x4 (see AsInt32x4 and AsFloat32x4).
type Int32x4 [4]int32

// Int64x2 holds 2 signed 64-bit lanes, the result type of widening
// 32x32->64 multiplies.
type Int64x2 [2]int64

// Float64x2 holds 2 double-precision lanes: one half of a widened Float32x4.
type Float64x2 [2]float64

// Float64x4 holds 4 double-precision lanes: a fully widened Float32x4.
type Float64x4 [4]float64

// Mask32x4 is the result of a 32-bit lane comparison. Each lane is either
// all ones (true) or all zeros (false), matching the layout produced by
// SSE/NEON compare instructions, so masks can be combined with bitwise
// operations and fed to IfThenElse.
type Mask32x4 [4]int32

// Vec32x4 is the set of vector types with four 32-bit lanes. Masks of type
// Mask32x4 select between values of any of these types.
type Vec32x4 interface {
	Float32x4 | Int32x4 | Mask32x4
}

// NumLanes returns 4.
func (Float32x4) NumLanes() int { return 4 }

// NumLanes returns 4.
func (Int32x4) NumLanes() int { return 4 }

// NumLanes returns 2.
func (Float64x2) NumLanes() int { return 2 }

// NumLanes returns 4.
func (Float64x4) NumLanes() int { return 4 }

// GetBit returns whether lane i is active.
func (m Mask32x4) GetBit(i int) bool {
	if i < 0 || i >= len(m) {
		return false
	}
	return m[i] != 0
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask32x4) AllTrue() bool {
	return m[0]&m[1]&m[2]&m[3] == -1
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask32x4) AnyTrue() bool {
	return m[0]|m[1]|m[2]|m[3] != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask32x4) CountTrue() int {
	count := 0
	for _, lane := range m {
		count += int(uint32(lane) >> 31)
	}
	return count
}

// Bits packs the mask into the low 4 bits of an integer, lane 0 first.
func (m Mask32x4) Bits() uint8 {
	var bits uint8
	for i, lane := range m {
		bits |= uint8(uint32(lane)>>31) << i
	}
	return bits
}

// And returns the lane-wise conjunction of two masks.
func (m Mask32x4) And(other Mask32x4) Mask32x4 {
	return Mask32x4{m[0] & other[0], m[1] & other[1], m[2] & other[2], m[3] & other[3]}
}

// Or returns the lane-wise disjunction of two masks.
func (m Mask32x4) Or(other Mask32x4) Mask32x4 {
	return Mask32x4{m[0] | other[0], m[1] | other[1], m[2] | other[2], m[3] | other[3]}
}

// AndNot returns m & ^other.
func (m Mask32x4) AndNot(other Mask32x4) Mask32x4 {
	return Mask32x4{m[0] &^ other[0], m[1] &^ other[1], m[2] &^ other[2], m[3] &^ other[3]}
}

// maskLane converts a comparison outcome into an all-ones or all-zeros lane.
func maskLane(b bool) int32 {
	var v int32
	if b {
		v = -1
	}
	return v
}
