// Command fftbench times forward and inverse transforms across a list
// of sizes and prints a fixed-width table.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/cpu"
	imath "github.com/cwbudde/algo-dft/internal/math"
)

func main() {
	var (
		sizeList = flag.String("sizes", "1024,4096,16384,65536", "comma-separated power-of-two sizes")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		mode     = flag.String("mode", "forward", "benchmark mode: forward, inverse, roundtrip, all")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no valid sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("cpu: %s\n", cpu.DetectFeatures())
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %10s  %12s\n", "size", "mode", "ns/op")

	for _, n := range sizes {
		eng, err := algodft.New(imath.Log2(n))
		if err != nil {
			fmt.Printf("%8d  skipped: %v\n", n, err)
			continue
		}

		for _, runMode := range resolveModes(*mode) {
			nsPerOp := benchmarkSize(rnd, eng, *iters, *warmup, runMode)
			fmt.Printf("%8d  %10s  %12.1f\n", n, runMode, nsPerOp)
		}
	}
}

func parseSizes(list string) []int {
	var sizes []int

	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		n, err := strconv.Atoi(field)
		if err != nil || !imath.IsPowerOf2(n) {
			fmt.Printf("skipping invalid size %q (need a power of two)\n", field)
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{"forward", "inverse", "roundtrip"}
	case "forward", "inverse", "roundtrip":
		return []string{mode}
	default:
		fmt.Printf("unknown mode %q, using forward\n", mode)
		return []string{"forward"}
	}
}

func benchmarkSize(rnd *rand.Rand, eng *algodft.Engine, iters, warmup int, mode string) float64 {
	n := eng.Len()
	re := make([]float64, n)
	im := make([]float64, n)

	for i := range n {
		re[i] = rnd.Float64()*2 - 1
		im[i] = rnd.Float64()*2 - 1
	}

	run := func() {
		switch mode {
		case "inverse":
			_ = eng.Inverse(re, im)
		case "roundtrip":
			_ = eng.Forward(re, im)
			_ = eng.Inverse(re, im)
		default:
			_ = eng.Forward(re, im)
		}
	}

	for range warmup {
		run()
	}

	start := time.Now()

	for range iters {
		run()
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}
