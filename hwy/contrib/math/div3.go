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

import "github.com/hwycbrt/cbrt4/hwy"

// Div3 divides each signed 32-bit lane by 3, truncating toward zero, so it
// agrees with Go's n / 3 for every int32 including math.MinInt32.
//
// The quotient is the high half of n * 0x55555556, which rounds toward
// negative infinity. Negative quotients are then moved one step toward zero
// by adding the quotient's sign bit.
func Div3(n hwy.Int32x4) hwy.Int32x4 {
	q := hwy.MulHigh(n, hwy.BroadcastInt32x4(div3Magic))
	return q.Add(q.ShiftAllRightLogical(31))
}
