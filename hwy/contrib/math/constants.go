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

// Bit patterns and offsets for the cube root estimate.
const (
	// cbrtB1 is the exponent offset for normal inputs: (127 - 127/3 - 0.03306235651) * 2^23.
	cbrtB1 int32 = 709958130

	// cbrtB2 is the offset for subnormal inputs after scaling by 2^24:
	// cbrtB1 minus 8<<23, since cbrt(2^24) = 2^8.
	cbrtB2 int32 = 642849266

	// cbrtMinNormalBits is the bit pattern of the smallest normal float32.
	cbrtMinNormalBits int32 = 0x00800000

	// cbrtMaxFiniteBits is the bit pattern of the largest finite float32.
	cbrtMaxFiniteBits int32 = 0x7F7FFFFF

	// cbrtTwo24Bits is the bit pattern of 2^24.
	cbrtTwo24Bits uint32 = 0x4B800000

	// div3Magic is ceil(2^32 / 3). The high half of n*div3Magic is floor(n/3)
	// for every int32 n.
	div3Magic int32 = 0x55555556
)

// RefineIterations is the number of Halley steps applied to the estimate.
// Each step roughly triples the number of correct bits: 5 -> 15 -> 45.
const RefineIterations = 2
