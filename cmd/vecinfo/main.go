// Command vecinfo prints the results of vector operations on one or two
// vectors given on the command line.
//
// Usage:
//
//	vecinfo [flags] <vector> [vector]
//
// Vectors are comma-separated components, optionally wrapped in brackets.
// Dimensions 2, 3 and 4 use the specialized forms and add cross products
// and swizzles; dimensions 1 and 5 through 16 use the generic form.
//
// Examples:
//
//	vecinfo 1,2,3 4,5,6
//	vecinfo -t 0.25 [1,2] [3,4]
//	vecinfo -int 1,2,3,4 5,6,7,8
//	vecinfo -cpu
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func main() {
	t := flag.Float64("t", 0.5, "interpolation parameter for lerp (integral with -int, default 1 there)")
	integer := flag.Bool("int", false, "use integer components instead of float64")
	showCPU := flag.Bool("cpu", false, "print the CPU features used by the block kernels and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags] <vector> [vector]\n\n")
		fmt.Fprintf(os.Stderr, "Prints norms, products, interpolation and swizzles of vectors.\n")
		fmt.Fprintf(os.Stderr, "Vectors are comma-separated components, e.g. 1,2,3 or [1,2,3].\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecinfo 1,2,3 4,5,6\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -t 0.25 [1,2] [3,4]\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -int 1,2,3,4 5,6,7,8\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -cpu\n")
	}
	flag.Parse()

	if *showCPU {
		fmt.Printf("%+v\n", cpu.DetectFeatures())
		return
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	var (
		result []row
		err    error
	)
	if *integer {
		tSet := false
		flag.Visit(func(f *flag.Flag) { tSet = tSet || f.Name == "t" })
		ti, perr := intLerpParam(*t, tSet)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", perr)
			os.Exit(2)
		}
		result, err = run(args, parseInts, ti)
	} else {
		result, err = run(args, parseFloats, *t)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printRows(result)
}

func printRows(rows []row) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Operation\tResult\n---------\t------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.op, r.result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
