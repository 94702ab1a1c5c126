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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd the kernels run as portable Go, but the level
// still reflects what the CPU declares so that kernels can pick the
// matching code shape (e.g. 4-wide vs 2-wide double precision).

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		logDispatch()
		return
	}

	detectCPUFeatures()
	logDispatch()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512F:
		currentLevel = DispatchAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
	default:
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
		currentWidth = 16
	}

	// AVX (not only AVX2) provides 256-bit VCVTPS2PD/VDIVPD.
	hasWideFloat64 = cpu.X86.HasAVX
}
