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
	stdmath "math"

	"github.com/hwycbrt/cbrt4/hwy"
)

// cbrtEstimate returns a rough cube root of each lane, good to about 5 bits,
// carrying the sign of x. Dividing the bit pattern of |x| by three divides
// the exponent by three; the offset restores the exponent bias.
//
// Subnormal lanes are first scaled by 2^24 so their bits have a usable
// exponent, and use an offset that undoes the scaling. Lanes that are zero,
// NaN or infinite produce meaningless values here and are replaced later.
func cbrtEstimate(x hwy.Float32x4, c cbrtLanes) hwy.Float32x4 {
	two24 := hwy.BroadcastFloat32x4(stdmath.Float32frombits(cbrtTwo24Bits))
	scaled := hwy.BitCastF32ToI32(x.Mul(two24).AndNot(hwy.SignBitFloat32x4()))

	i := hwy.IfThenElse(c.isSubnorm, scaled, c.bits)
	offset := hwy.IfThenElse(c.isSubnorm,
		hwy.BroadcastInt32x4(cbrtB2), hwy.BroadcastInt32x4(cbrtB1))
	i = Div3(i).Add(offset)

	return hwy.BitCastI32ToF32(i).Or(c.sign)
}
