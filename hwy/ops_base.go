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

import (
	"math"
	"unsafe"
)

// This file provides pure Go implementations of the lane operations. Every
// operation processes all lanes unconditionally: kernels built on top of
// them compute a value for every lane and pick results with IfThenElse.
//
// Float64 arithmetic wraps each intermediate in an explicit float64()
// conversion. Go may otherwise fuse a*b+c into an FMA on some targets,
// which would make results depend on the architecture.

// ===== Float32x4 =====

// LoadFloat32x4 loads 4 float32 values from a slice.
// It panics if len(s) < 4.
func LoadFloat32x4(s []float32) Float32x4 {
	_ = s[3]
	return Float32x4{s[0], s[1], s[2], s[3]}
}

// BroadcastFloat32x4 creates a vector with all lanes set to v.
func BroadcastFloat32x4(v float32) Float32x4 {
	return Float32x4{v, v, v, v}
}

// ZeroFloat32x4 returns a vector of +0.0 lanes.
func ZeroFloat32x4() Float32x4 {
	return Float32x4{}
}

// SignBitFloat32x4 returns a vector with only the sign bit set in each
// lane, i.e. -0.0.
func SignBitFloat32x4() Float32x4 {
	return BroadcastFloat32x4(math.Float32frombits(0x80000000))
}

// StoreSlice writes the 4 lanes to s. It panics if len(s) < 4.
func (v Float32x4) StoreSlice(s []float32) {
	_ = s[3]
	s[0], s[1], s[2], s[3] = v[0], v[1], v[2], v[3]
}

// Add performs element-wise addition.
func (v Float32x4) Add(other Float32x4) Float32x4 {
	return Float32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(other Float32x4) Float32x4 {
	return Float32x4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(other Float32x4) Float32x4 {
	return Float32x4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// Div performs element-wise division.
func (v Float32x4) Div(other Float32x4) Float32x4 {
	return Float32x4{v[0] / other[0], v[1] / other[1], v[2] / other[2], v[3] / other[3]}
}

// Equal performs an ordered element-wise equality comparison.
// NaN lanes compare unequal; +0.0 and -0.0 compare equal.
func (v Float32x4) Equal(other Float32x4) Mask32x4 {
	return Mask32x4{
		maskLane(v[0] == other[0]),
		maskLane(v[1] == other[1]),
		maskLane(v[2] == other[2]),
		maskLane(v[3] == other[3]),
	}
}

// Less performs an ordered element-wise less-than comparison.
func (v Float32x4) Less(other Float32x4) Mask32x4 {
	return Mask32x4{
		maskLane(v[0] < other[0]),
		maskLane(v[1] < other[1]),
		maskLane(v[2] < other[2]),
		maskLane(v[3] < other[3]),
	}
}

// And performs a bitwise AND of the lane bit patterns.
func (v Float32x4) And(other Float32x4) Float32x4 {
	return v.AsInt32x4().And(other.AsInt32x4()).AsFloat32x4()
}

// Or performs a bitwise OR of the lane bit patterns.
func (v Float32x4) Or(other Float32x4) Float32x4 {
	return v.AsInt32x4().Or(other.AsInt32x4()).AsFloat32x4()
}

// AndNot returns v & ^other on the lane bit patterns.
// Note the operand order differs from x86 ANDNPS, which negates its first
// operand: clearing the sign bit is x.AndNot(SignBitFloat32x4()).
func (v Float32x4) AndNot(other Float32x4) Float32x4 {
	return v.AsInt32x4().AndNot(other.AsInt32x4()).AsFloat32x4()
}

// AsInt32x4 reinterprets the lanes as int32 (bit cast, no conversion).
func (v Float32x4) AsInt32x4() Int32x4 {
	return Int32x4{
		int32(math.Float32bits(v[0])),
		int32(math.Float32bits(v[1])),
		int32(math.Float32bits(v[2])),
		int32(math.Float32bits(v[3])),
	}
}

// ===== Int32x4 =====

// LoadInt32x4 loads 4 int32 values from a slice.
// It panics if len(s) < 4.
func LoadInt32x4(s []int32) Int32x4 {
	_ = s[3]
	return Int32x4{s[0], s[1], s[2], s[3]}
}

// BroadcastInt32x4 creates a vector with all lanes set to v.
func BroadcastInt32x4(v int32) Int32x4 {
	return Int32x4{v, v, v, v}
}

// StoreSlice writes the 4 lanes to s. It panics if len(s) < 4.
func (v Int32x4) StoreSlice(s []int32) {
	_ = s[3]
	s[0], s[1], s[2], s[3] = v[0], v[1], v[2], v[3]
}

// AsFloat32x4 reinterprets the lanes as float32 (bit cast, no conversion).
func (v Int32x4) AsFloat32x4() Float32x4 {
	return Float32x4{
		math.Float32frombits(uint32(v[0])),
		math.Float32frombits(uint32(v[1])),
		math.Float32frombits(uint32(v[2])),
		math.Float32frombits(uint32(v[3])),
	}
}

// Add performs element-wise wrapping addition.
func (v Int32x4) Add(other Int32x4) Int32x4 {
	return Int32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub performs element-wise wrapping subtraction.
func (v Int32x4) Sub(other Int32x4) Int32x4 {
	return Int32x4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// And performs element-wise bitwise AND.
func (v Int32x4) And(other Int32x4) Int32x4 {
	return Int32x4{v[0] & other[0], v[1] & other[1], v[2] & other[2], v[3] & other[3]}
}

// Or performs element-wise bitwise OR.
func (v Int32x4) Or(other Int32x4) Int32x4 {
	return Int32x4{v[0] | other[0], v[1] | other[1], v[2] | other[2], v[3] | other[3]}
}

// AndNot returns v & ^other.
func (v Int32x4) AndNot(other Int32x4) Int32x4 {
	return Int32x4{v[0] &^ other[0], v[1] &^ other[1], v[2] &^ other[2], v[3] &^ other[3]}
}

// ShiftAllRightLogical shifts every lane right by n bits, filling with zeros.
func (v Int32x4) ShiftAllRightLogical(n uint) Int32x4 {
	return Int32x4{
		int32(uint32(v[0]) >> n),
		int32(uint32(v[1]) >> n),
		int32(uint32(v[2]) >> n),
		int32(uint32(v[3]) >> n),
	}
}

// Equal performs element-wise equality comparison.
func (v Int32x4) Equal(other Int32x4) Mask32x4 {
	return Mask32x4{
		maskLane(v[0] == other[0]),
		maskLane(v[1] == other[1]),
		maskLane(v[2] == other[2]),
		maskLane(v[3] == other[3]),
	}
}

// Greater performs a signed element-wise greater-than comparison.
func (v Int32x4) Greater(other Int32x4) Mask32x4 {
	return Mask32x4{
		maskLane(v[0] > other[0]),
		maskLane(v[1] > other[1]),
		maskLane(v[2] > other[2]),
		maskLane(v[3] > other[3]),
	}
}

// Less performs a signed element-wise less-than comparison.
func (v Int32x4) Less(other Int32x4) Mask32x4 {
	return Mask32x4{
		maskLane(v[0] < other[0]),
		maskLane(v[1] < other[1]),
		maskLane(v[2] < other[2]),
		maskLane(v[3] < other[3]),
	}
}

// ===== Int64x2 =====

// AsInt32x4 reinterprets the two 64-bit lanes as four 32-bit lanes in
// little-endian order: lane 2k is the low half of 64-bit lane k and lane
// 2k+1 is its high half.
func (v Int64x2) AsInt32x4() Int32x4 {
	return Int32x4{
		int32(v[0]), int32(v[0] >> 32),
		int32(v[1]), int32(v[1] >> 32),
	}
}

// ===== Float64x2 =====

// BroadcastFloat64x2 creates a vector with both lanes set to v.
func BroadcastFloat64x2(v float64) Float64x2 {
	return Float64x2{v, v}
}

// Add performs element-wise addition.
func (v Float64x2) Add(other Float64x2) Float64x2 {
	return Float64x2{float64(v[0] + other[0]), float64(v[1] + other[1])}
}

// Mul performs element-wise multiplication.
func (v Float64x2) Mul(other Float64x2) Float64x2 {
	return Float64x2{float64(v[0] * other[0]), float64(v[1] * other[1])}
}

// Div performs element-wise division.
func (v Float64x2) Div(other Float64x2) Float64x2 {
	return Float64x2{float64(v[0] / other[0]), float64(v[1] / other[1])}
}

// ===== Float64x4 =====

// BroadcastFloat64x4 creates a vector with all lanes set to v.
func BroadcastFloat64x4(v float64) Float64x4 {
	return Float64x4{v, v, v, v}
}

// LoadFloat64x4 loads 4 float64 values from a slice.
// It panics if len(s) < 4.
func LoadFloat64x4(s []float64) Float64x4 {
	_ = s[3]
	return Float64x4{s[0], s[1], s[2], s[3]}
}

// Add performs element-wise addition.
func (v Float64x4) Add(other Float64x4) Float64x4 {
	return Float64x4{
		float64(v[0] + other[0]),
		float64(v[1] + other[1]),
		float64(v[2] + other[2]),
		float64(v[3] + other[3]),
	}
}

// Mul performs element-wise multiplication.
func (v Float64x4) Mul(other Float64x4) Float64x4 {
	return Float64x4{
		float64(v[0] * other[0]),
		float64(v[1] * other[1]),
		float64(v[2] * other[2]),
		float64(v[3] * other[3]),
	}
}

// Div performs element-wise division.
func (v Float64x4) Div(other Float64x4) Float64x4 {
	return Float64x4{
		float64(v[0] / other[0]),
		float64(v[1] / other[1]),
		float64(v[2] / other[2]),
		float64(v[3] / other[3]),
	}
}

// ===== Selection =====

// IfThenElse selects per lane: yes where mask is set, no otherwise.
// The selection is a bitwise blend, (yes & mask) | (no & ^mask), so float
// lanes are carried over bit-exactly, including NaN payloads and the sign
// of zero.
func IfThenElse[V Vec32x4](mask Mask32x4, yes, no V) V {
	y := (*[4]uint32)(unsafe.Pointer(&yes))
	n := (*[4]uint32)(unsafe.Pointer(&no))
	var out [4]uint32
	for i := range out {
		m := uint32(mask[i])
		out[i] = y[i]&m | n[i]&^m
	}
	return *(*V)(unsafe.Pointer(&out))
}
