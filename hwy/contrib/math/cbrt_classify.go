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
	"github.com/hwycbrt/cbrt4/hwy"
)

// cbrtLanes holds the per-lane facts the cube root kernel derives from its
// input. Masks are all-ones (true) or all-zeros per lane.
type cbrtLanes struct {
	sign       hwy.Float32x4 // x with every bit but the sign bit cleared
	abs        hwy.Float32x4 // x with the sign bit cleared
	bits       hwy.Int32x4   // bit pattern of abs
	isZero     hwy.Mask32x4  // x == ±0
	isSubnorm  hwy.Mask32x4  // abs bits below the smallest normal; includes zeros
	isNaNOrInf hwy.Mask32x4  // abs bits above the largest finite value
}

func classifyCbrt(x hwy.Float32x4) cbrtLanes {
	signBit := hwy.SignBitFloat32x4()
	abs := x.AndNot(signBit)
	bits := hwy.BitCastF32ToI32(abs)
	return cbrtLanes{
		sign:       x.And(signBit),
		abs:        abs,
		bits:       bits,
		isZero:     x.Equal(hwy.ZeroFloat32x4()),
		isSubnorm:  bits.Less(hwy.BroadcastInt32x4(cbrtMinNormalBits)),
		isNaNOrInf: bits.Greater(hwy.BroadcastInt32x4(cbrtMaxFiniteBits)),
	}
}

// LaneCategory is the class of a float32 value as seen by Cbrt.
type LaneCategory uint8

const (
	CategoryNormal LaneCategory = iota
	CategoryZero
	CategorySubnormal
	CategoryNaNOrInfinite
)

// String returns a lower case name for the category.
func (c LaneCategory) String() string {
	switch c {
	case CategoryNormal:
		return "normal"
	case CategoryZero:
		return "zero"
	case CategorySubnormal:
		return "subnormal"
	case CategoryNaNOrInfinite:
		return "nan-or-inf"
	default:
		return "unknown"
	}
}

// Classify reports the category of each lane of x. Zero takes precedence
// over subnormal, so CategorySubnormal lanes are always nonzero.
func Classify(x hwy.Float32x4) [4]LaneCategory {
	c := classifyCbrt(x)
	var out [4]LaneCategory
	for i := range out {
		switch {
		case c.isZero.GetBit(i):
			out[i] = CategoryZero
		case c.isSubnorm.GetBit(i):
			out[i] = CategorySubnormal
		case c.isNaNOrInf.GetBit(i):
			out[i] = CategoryNaNOrInfinite
		default:
			out[i] = CategoryNormal
		}
	}
	return out
}
