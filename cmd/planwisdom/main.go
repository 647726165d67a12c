// Command planwisdom measures plans for a list of transform sizes and
// exports the accumulated wisdom to a file, so deployments can plan with a
// wisdom restriction instead of paying measurement cost at startup.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	fftplan "github.com/cwbudde/algo-fftplan"
)

func main() {
	var (
		sizeList   = flag.String("sizes", "64,256,1024,4096", "comma-separated transform sizes")
		rigorName  = flag.String("rigor", "measure", "planning rigor: measure, patient, exhaustive")
		pairings   = flag.String("pairings", "c2c,r2c", "comma-separated pairings: c2c, r2c")
		wisdomFile = flag.String("wisdom", "", "export wisdom to file")
		seed       = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rigor, err := parseRigor(*rigorName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("rigor=%s\n", rigor)
	fmt.Printf("%8s  %8s  %12s\n", "size", "pairing", "plan time")

	for _, n := range sizes {
		for _, pairing := range strings.Split(*pairings, ",") {
			elapsed, err := planOne(rnd, n, strings.TrimSpace(pairing), rigor)
			if err != nil {
				fmt.Fprintf(os.Stderr, "size %d %s: %v\n", n, pairing, err)
				continue
			}

			fmt.Printf("%8d  %8s  %12s\n", n, pairing, elapsed)
		}
	}

	if *wisdomFile != "" {
		if err := fftplan.ExportWisdom(*wisdomFile); err != nil {
			fmt.Fprintf(os.Stderr, "error exporting wisdom: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n%d wisdom entries exported to: %s\n", fftplan.WisdomLen(), *wisdomFile)
	}
}

// planOne builds and discards one measured plan, returning the planning time.
func planOne(rnd *rand.Rand, n int, pairing string, rigor fftplan.Rigor) (time.Duration, error) {
	start := time.Now()

	switch pairing {
	case "c2c":
		in := fftplan.AllocComplex(n)
		for i := range in {
			in[i] = complex(rnd.Float64(), rnd.Float64())
		}

		plan, err := fftplan.NewPlanner().
			Rigor(rigor).
			InputComplex(in).
			OutputComplex(fftplan.AllocComplex(n)).
			Dim1(n).
			Plan()
		if err != nil {
			return 0, err
		}

		defer plan.Destroy()

	case "r2c":
		in := fftplan.AllocReal(n)
		for i := range in {
			in[i] = rnd.Float64()
		}

		plan, err := fftplan.NewPlanner().
			Rigor(rigor).
			InputReal(in).
			OutputComplex(fftplan.AllocComplex(n/2 + 1)).
			Dim1(n).
			Plan()
		if err != nil {
			return 0, err
		}

		defer plan.Destroy()

	default:
		return 0, fmt.Errorf("unknown pairing %q", pairing)
	}

	return time.Since(start), nil
}

func parseRigor(name string) (fftplan.Rigor, error) {
	switch strings.ToLower(name) {
	case "estimate":
		return fftplan.Estimate, nil
	case "measure":
		return fftplan.Measure, nil
	case "patient":
		return fftplan.Patient, nil
	case "exhaustive":
		return fftplan.Exhaustive, nil
	default:
		return 0, fmt.Errorf("unknown rigor %q", name)
	}
}

func parseSizes(list string) []int {
	var sizes []int

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}
