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

// TailMask returns a mask with the first count lanes active. count is
// clamped to [0, 4].
//
// Example:
//
//	remaining := len(data) % 4
//	if remaining > 0 {
//	    mask := hwy.TailMask(remaining)
//	    v := hwy.MaskLoadFloat32x4(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    v.MaskStoreSlice(mask, output[len(output)-remaining:])
//	}
func TailMask(count int) Mask32x4 {
	count = min(max(count, 0), 4)
	return MaskFromBits(uint8(1<<count - 1))
}

// MaskLoadFloat32x4 loads the active lanes of mask from s and sets the
// others to zero. s only needs to hold as many elements as the highest
// active lane.
func MaskLoadFloat32x4(mask Mask32x4, s []float32) Float32x4 {
	var v Float32x4
	for i := range v {
		if mask[i] != 0 {
			v[i] = s[i]
		}
	}
	return v
}

// MaskStoreSlice stores the active lanes of v to s, leaving the other
// elements of s unchanged.
func (v Float32x4) MaskStoreSlice(mask Mask32x4, s []float32) {
	for i := range v {
		if mask[i] != 0 {
			s[i] = v[i]
		}
	}
}

// ProcessWithTail walks size elements in whole vectors. It calls
// fullFn(offset) for each full group of 4 and then, if size is not a
// multiple of 4, tailFn(offset, count) once for the remainder.
//
// Example:
//
//	hwy.ProcessWithTail(len(data),
//	    func(offset int) {
//	        v := hwy.LoadFloat32x4(data[offset:])
//	        v.Add(v).StoreSlice(output[offset:])
//	    },
//	    func(offset, count int) {
//	        mask := hwy.TailMask(count)
//	        v := hwy.MaskLoadFloat32x4(mask, data[offset:])
//	        v.Add(v).MaskStoreSlice(mask, output[offset:])
//	    },
//	)
func ProcessWithTail(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / 4
	for i := range fullVectors {
		fullFn(i * 4)
	}

	if remaining := size % 4; remaining > 0 {
		tailFn(fullVectors*4, remaining)
	}
}
