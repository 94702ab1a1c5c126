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
	"strings"

	"github.com/xyproto/env/v2"
)

// DispatchLevel represents the instruction set the host declares.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// NoSimdEnvVar disables SIMD detection when set to a true value.
const NoSimdEnvVar = "HWY_NO_SIMD"

// getenv reads configuration variables. Tests replace it.
var getenv = env.Str

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// hasWideFloat64 reports whether 4 float64 lanes fit one register.
// Set by init() in dispatch_*.go files.
var hasWideFloat64 bool

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HasWideFloat64 reports whether the host can hold a whole widened
// Float32x4 (4 float64 lanes, 256 bits) in one register. Kernels use it
// once, at initialization, to pick between full-width and split-half
// double precision code paths.
func HasWideFloat64() bool {
	return hasWideFloat64
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar level is reported regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	// Any non-empty value other than an explicit false counts as set.
	switch strings.ToLower(val) {
	case "0", "false", "no", "off":
		return false
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	hasWideFloat64 = false
}

// logDispatch reports the detected level. Called at the end of each
// architecture's init; the default logger discards it unless SetLogger was
// called first, so it is mostly useful from tests and tools that re-run
// detection through Redetect.
func logDispatch() {
	Logger().Debug("hwy: dispatch level selected",
		"level", currentLevel.String(),
		"width", currentWidth,
		"wideFloat64", hasWideFloat64)
}

// Redetect re-runs host capability detection, honoring the current
// environment. It is intended for tools and tests that change HWY_NO_SIMD
// after startup; it must not race with kernels reading the dispatch state.
func Redetect() {
	if NoSimdEnv() {
		setScalarMode()
	} else {
		detectCPUFeatures()
	}
	logDispatch()
}
