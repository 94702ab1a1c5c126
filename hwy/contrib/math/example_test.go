package math_test

import (
	"fmt"
	stdmath "math"

	"github.com/hwycbrt/cbrt4/hwy"
	"github.com/hwycbrt/cbrt4/hwy/contrib/math"
)

func ExampleCbrt() {
	negZero := float32(stdmath.Copysign(0, -1))
	y := math.Cbrt(hwy.Float32x4{8, -27, 0.001, negZero})
	fmt.Println(y)
	// Output: [2 -3 0.1 -0]
}

func ExampleClassify() {
	x := hwy.Float32x4{1, 0, 1e-40, float32(stdmath.Inf(-1))}
	fmt.Println(math.Classify(x))
	// Output: [normal zero subnormal nan-or-inf]
}

func ExampleCbrtSlice() {
	src := []float32{1, 8, 27, 64, 125}
	dst := make([]float32, len(src))
	math.CbrtSlice(dst, src)
	fmt.Println(dst)
	// Output: [1 2 3 4 5]
}
