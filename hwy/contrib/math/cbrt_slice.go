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
	"github.com/hwycbrt/cbrt4/hwy/contrib/workerpool"
)

// CbrtSlice stores Cbrt(src[i]) in dst[i] for every i in src. A partial
// final vector is padded with zeros; only the valid lanes are written.
//
// It panics if dst is shorter than src.
func CbrtSlice(dst, src []float32) {
	if len(dst) < len(src) {
		panic("math: CbrtSlice: dst shorter than src")
	}
	refiner := activeRefiner
	hwy.ProcessWithTail(len(src),
		func(offset int) {
			CbrtWith(refiner, hwy.LoadFloat32x4(src[offset:])).StoreSlice(dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask(count)
			x := hwy.MaskLoadFloat32x4(mask, src[offset:])
			CbrtWith(refiner, x).MaskStoreSlice(mask, dst[offset:])
		},
	)
}

// CbrtSliceParallel is CbrtSlice split across pool in ranges aligned to
// whole vectors. A nil pool runs on the calling goroutine.
//
// It panics if dst is shorter than src.
func CbrtSliceParallel(pool *workerpool.Pool, dst, src []float32) {
	if len(dst) < len(src) {
		panic("math: CbrtSliceParallel: dst shorter than src")
	}
	if pool == nil {
		CbrtSlice(dst, src)
		return
	}
	pool.ParallelFor(len(src), 4, func(start, end int) {
		CbrtSlice(dst[start:end], src[start:end])
	})
}
