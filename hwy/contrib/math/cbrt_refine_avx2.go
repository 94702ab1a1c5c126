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

//go:build amd64 && goexperiment.simd && !noasm

package math

import (
	"simd/archsimd"

	"github.com/hwycbrt/cbrt4/hwy"
)

// platformWideRefiner returns the archsimd refiner on hosts with AVX, which
// provides the 256-bit double registers it needs.
func platformWideRefiner() Refiner {
	if archsimd.X86.AVX() {
		return avx2WideRefiner{}
	}
	return WideRefiner{}
}

// avx2WideRefiner is WideRefiner on archsimd.Float64x4.
type avx2WideRefiner struct{}

func (avx2WideRefiner) Name() string { return "wide" }

func (avx2WideRefiner) Refine(r, x hwy.Float32x4) hwy.Float32x4 {
	rw := hwy.PromoteF32ToF64(r)
	xw := hwy.PromoteF32ToF64(x)
	a := RefineCbrt_AVX2_F64x4(
		archsimd.LoadFloat64x4Slice(rw[:]),
		archsimd.LoadFloat64x4Slice(xw[:]))

	var out hwy.Float64x4
	a.StoreSlice(out[:])
	return hwy.DemoteF64ToF32(out)
}

// RefineCbrt_AVX2_F64x4 applies RefineIterations Halley steps to the cube
// root estimate a of v, in the same operation order as the portable refiners.
func RefineCbrt_AVX2_F64x4(a, v archsimd.Float64x4) archsimd.Float64x4 {
	for range RefineIterations {
		a3 := a.Mul(a).Mul(a)
		tmp := a3.Add(v)
		mul := v.Add(tmp)
		div := a3.Add(tmp)
		mul = mul.Mul(a)
		a = mul.Div(div)
	}
	return a
}
