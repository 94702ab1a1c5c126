//go:build !amd64 || !goexperiment.simd || noasm

package math

func platformWideRefiner() Refiner {
	return WideRefiner{}
}
