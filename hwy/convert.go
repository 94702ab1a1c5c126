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

// BitCastF32ToI32 reinterprets float32 bits as int32 without conversion.
// This is a bitwise reinterpretation, not a numeric conversion: every bit
// pattern, including NaN payloads and -0.0, survives a round trip through
// BitCastI32ToF32 unchanged.
func BitCastF32ToI32(v Float32x4) Int32x4 {
	return v.AsInt32x4()
}

// BitCastI32ToF32 reinterprets int32 bits as float32 without conversion.
func BitCastI32ToF32(v Int32x4) Float32x4 {
	return v.AsFloat32x4()
}

// MaskFromBits builds a Mask32x4 from the low 4 bits of bits, lane 0 first.
// It is the inverse of Mask32x4.Bits.
func MaskFromBits(bits uint8) Mask32x4 {
	var m Mask32x4
	for i := range m {
		m[i] = -int32((bits >> i) & 1)
	}
	return m
}
