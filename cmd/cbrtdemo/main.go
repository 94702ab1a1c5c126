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

// Command cbrtdemo compares the vector cube root with the standard library.
//
// Usage:
//
//	cbrtdemo                                # sample inputs
//	cbrtdemo -inputs 8,-27,1e-40            # custom inputs
//	cbrtdemo -sweep -stride 4093            # accuracy report over all floats
//	cbrtdemo -refiner half -v               # force a strategy, log configuration
//	cbrtdemo -cpu                           # print detected CPU features
//
// The table has one row per input: x, the vector result and the scalar
// reference.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	stdmath "math"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/hwycbrt/cbrt4/hwy"
	"github.com/hwycbrt/cbrt4/hwy/contrib/accuracy"
	"github.com/hwycbrt/cbrt4/hwy/contrib/math"
	"github.com/hwycbrt/cbrt4/hwy/contrib/workerpool"
)

// sampleInputs are printed when -inputs is not given.
var sampleInputs = []float32{0.01234, 1.12, 3, float32(stdmath.Copysign(0, -1))}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cbrtdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inputs  = fs.String("inputs", "", "Comma-separated float32 inputs (default: built-in samples)")
		refiner = fs.String("refiner", "", "Refinement strategy ("+strings.Join(math.Refiners(), ",")+"), default: chosen from CPU")
		verbose = fs.Bool("v", false, "Log configuration decisions to stderr")
		showCPU = fs.Bool("cpu", false, "Print CPU features detected by golang.org/x/sys/cpu")
		sweep   = fs.Bool("sweep", false, "Report accuracy over a range of floats")
		lo      = fs.Float64("lo", stdmath.SmallestNonzeroFloat32, "Sweep lower bound")
		hi      = fs.Float64("hi", stdmath.MaxFloat32, "Sweep upper bound")
		stride  = fs.Uint("stride", 65521, "Sweep step, in representable float32 values")
		workers = fs.Int("workers", 0, "Sweep and bulk workers (default: GOMAXPROCS)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	hwy.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer hwy.SetLogger(nil)

	// Detection already ran at init with the silent logger; repeat it so the
	// decisions are logged.
	hwy.Redetect()
	if err := math.UseRefiner(*refiner); err != nil {
		return err
	}
	defer math.UseRefiner("")

	fmt.Fprintf(stdout, "dispatch: %s (%d bytes), refiner: %s\n",
		hwy.CurrentName(), hwy.CurrentWidth(), math.CurrentRefiner().Name())
	if *showCPU {
		printCPUFeatures(stdout)
	}

	xs := sampleInputs
	if *inputs != "" {
		var err error
		if xs, err = parseInputs(*inputs); err != nil {
			return err
		}
	}
	pool := workerpool.New(*workers)
	defer pool.Close()
	printTable(stdout, pool, xs)

	if *sweep {
		return printSweep(ctx, stdout, float32(*lo), float32(*hi), uint32(*stride), *workers)
	}
	return nil
}

func parseInputs(s string) ([]float32, error) {
	fields := strings.Split(s, ",")
	xs := make([]float32, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid input %q: %w", f, err)
		}
		xs = append(xs, float32(v))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("no inputs in %q", s)
	}
	return xs, nil
}

func printTable(w io.Writer, pool *workerpool.Pool, xs []float32) {
	ys := make([]float32, len(xs))
	math.CbrtSliceParallel(pool, ys, xs)

	fmt.Fprintln(w, "x\tsimd\tstdlib")
	for i, x := range xs {
		ref := float32(stdmath.Cbrt(float64(x)))
		fmt.Fprintf(w, "%f\t%f\t%f\n", x, ys[i], ref)
	}
}

func printSweep(ctx context.Context, w io.Writer, lo, hi float32, stride uint32, workers int) error {
	xs := accuracy.BitRange(lo, hi, stride)
	if len(xs) == 0 {
		return fmt.Errorf("empty sweep range [%g, %g]", lo, hi)
	}
	report, err := accuracy.Sweep(ctx, math.Cbrt, func(x float32) float32 {
		return float32(stdmath.Cbrt(float64(x)))
	}, xs, workers)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	fmt.Fprintf(w, "sweep [%g, %g] stride %d: %s\n", lo, hi, stride, report)
	return nil
}

func printCPUFeatures(w io.Writer) {
	fmt.Fprintf(w, "GOARCH: %s, NumCPU: %d\n", runtime.GOARCH, runtime.NumCPU())
	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "  HasAVX:      %v (256-bit double lanes)\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	case "arm64":
		fmt.Fprintf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:       %v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasSVE:      %v\n", cpu.ARM64.HasSVE)
	}
	fmt.Fprintf(w, "  HasWideFloat64: %v\n", hwy.HasWideFloat64())
}
