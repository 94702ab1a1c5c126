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

// Shuffle0123 permutes the lanes of v: lane k of the result is v[ik].
// Indices are taken modulo 4, as with the 2-bit fields of PSHUFD.
//
// Example: Shuffle0123(v, 1, 1, 3, 3) = [v1, v1, v3, v3].
func Shuffle0123(v Int32x4, i0, i1, i2, i3 int) Int32x4 {
	return Int32x4{v[i0&3], v[i1&3], v[i2&3], v[i3&3]}
}

// DupOdd duplicates odd lanes.
// [a0,a1,a2,a3] -> [a1,a1,a3,a3]
func DupOdd(v Int32x4) Int32x4 {
	return Shuffle0123(v, 1, 1, 3, 3)
}

// OddEven combines odd lanes from a with even lanes from b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [b0,a1,b2,a3]
func OddEven(a, b Int32x4) Int32x4 {
	return Int32x4{b[0], a[1], b[2], a[3]}
}

// MulEven multiplies the even lanes (0 and 2) of a and b as signed 32-bit
// integers, producing two full 64-bit products. The odd lanes are ignored.
// This is the portable form of PMULDQ / SMULL.
func MulEven(a, b Int32x4) Int64x2 {
	return Int64x2{
		int64(a[0]) * int64(b[0]),
		int64(a[2]) * int64(b[2]),
	}
}

// MulHigh returns the high 32 bits of the signed 64-bit product of each
// pair of lanes. It is built from two MulEven calls and a blend, the way
// SSE4.1 code emulates a packed multiply-high.
func MulHigh(a, b Int32x4) Int32x4 {
	even := MulEven(a, b).AsInt32x4()
	odd := MulEven(DupOdd(a), DupOdd(b)).AsInt32x4()
	// even holds [lo0, hi0, lo2, hi2]; odd holds [lo1, hi1, lo3, hi3].
	return OddEven(odd, DupOdd(even))
}
