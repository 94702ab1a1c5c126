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

// Package accuracy measures vector float32 kernels against a scalar
// reference. It provides ULP distances, bit-adjacent input ranges and a
// parallel Sweep that summarizes the error of a kernel over many inputs.
package accuracy

import (
	stdmath "math"
)

// ordered maps the bits of f onto a line where adjacent floats differ by
// one and both zeros map to 0.
func ordered(f float32) int64 {
	b := stdmath.Float32bits(f)
	if b&0x80000000 != 0 {
		return -int64(b & 0x7FFFFFFF)
	}
	return int64(b)
}

// fromOrdered is the inverse of ordered. 0 maps to +0.
func fromOrdered(o int64) float32 {
	if o < 0 {
		return stdmath.Float32frombits(uint32(-o) | 0x80000000)
	}
	return stdmath.Float32frombits(uint32(o))
}

// ULPDistance returns the number of representable float32 values between a
// and b. +0 and -0 are 0 apart, as are any two NaNs. A NaN and a non-NaN are
// stdmath.MaxUint32 apart.
func ULPDistance(a, b float32) uint32 {
	aNaN, bNaN := stdmath.IsNaN(float64(a)), stdmath.IsNaN(float64(b))
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || bNaN:
		return stdmath.MaxUint32
	}
	d := ordered(a) - ordered(b)
	if d < 0 {
		d = -d
	}
	return uint32(min(d, stdmath.MaxUint32))
}

// RelativeError returns |got-want| / |want| in double precision. Equal
// values (including two NaNs or two equal infinities) have error 0; any other
// mismatch against a zero, infinite or NaN want is +Inf.
func RelativeError(got, want float32) float64 {
	if ULPDistance(got, want) == 0 {
		return 0
	}
	w := float64(want)
	if w == 0 || stdmath.IsInf(w, 0) || stdmath.IsNaN(w) || stdmath.IsNaN(float64(got)) {
		return stdmath.Inf(1)
	}
	return stdmath.Abs(float64(got)-w) / stdmath.Abs(w)
}

// BitRange returns the floats from lo to hi inclusive, stepping stride
// representable values at a time. It walks the ordered bit line, so a range
// crossing zero yields +0 once. A stride of 0 is treated as 1. It returns nil
// if lo > hi or either bound is NaN.
func BitRange(lo, hi float32, stride uint32) []float32 {
	if stdmath.IsNaN(float64(lo)) || stdmath.IsNaN(float64(hi)) || lo > hi {
		return nil
	}
	stride = max(stride, 1)
	start, end := ordered(lo), ordered(hi)
	out := make([]float32, 0, (end-start)/int64(stride)+1)
	for o := start; o <= end; o += int64(stride) {
		out = append(out, fromOrdered(o))
	}
	return out
}
