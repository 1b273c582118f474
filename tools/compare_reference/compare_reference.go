// Conformance check: streams raw 8-bit samples through the fixed-point
// engine and compares every coefficient block against the floating-point
// reference transform.
// Usage: compare_reference <samples.bin> <width> <height> [tolerance]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cocosip/go-dct-engine/dct2d"

	// Register transform cores
	_ "github.com/cocosip/go-dct-engine/dct1d"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: compare_reference <samples.bin> <width> <height> [tolerance]")
		fmt.Println("  samples.bin holds one unsigned byte per pixel, row-major")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	width, err := strconv.Atoi(os.Args[2])
	if err != nil {
		panic(err)
	}
	height, err := strconv.Atoi(os.Args[3])
	if err != nil {
		panic(err)
	}
	tolerance := int32(4)
	if len(os.Args) > 4 {
		v, err := strconv.Atoi(os.Args[4])
		if err != nil {
			panic(err)
		}
		tolerance = int32(v)
	}

	if len(data) < width*height {
		fmt.Printf("file holds %d samples, need %d\n", len(data), width*height)
		os.Exit(1)
	}

	engine, err := dct2d.New(dct2d.NewParameters())
	if err != nil {
		panic(err)
	}
	reference, err := dct2d.New(dct2d.NewParameters().WithCore("reference"))
	if err != nil {
		panic(err)
	}

	n := engine.N()
	block := make([]int32, n*n)
	blocks := 0
	failed := 0
	var maxDev int32

	for by := 0; by+n <= height; by += n {
		for bx := 0; bx+n <= width; bx += n {
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					block[y*n+x] = int32(data[(by+y)*width+bx+x])
				}
			}

			got, err := engine.TransformBlock(block)
			if err != nil {
				panic(err)
			}
			want, err := reference.TransformBlock(block)
			if err != nil {
				panic(err)
			}

			blockFailed := false
			for i := range want {
				dev := got[i] - want[i]
				if dev < 0 {
					dev = -dev
				}
				if dev > maxDev {
					maxDev = dev
				}
				if dev > tolerance {
					blockFailed = true
				}
			}
			if blockFailed {
				failed++
				fmt.Printf("block (%d,%d) deviates beyond tolerance %d\n", bx/n, by/n, tolerance)
			}
			blocks++
		}
	}

	fmt.Printf("%d blocks compared, max deviation %d, tolerance %d\n", blocks, maxDev, tolerance)
	if failed > 0 {
		fmt.Printf("FAILED: %d blocks out of tolerance\n", failed)
		os.Exit(1)
	}
	fmt.Println("PASS")
}
