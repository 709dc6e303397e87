// Command mvrppd is a one-shot CLI around the multi-vehicle routing
// problem with pickup and delivery solver: read an instance file, run the
// branch-and-bound optimizer under an iterated epsilon-constraint
// schedule, and write the resulting Pareto archive of solutions.
//
// A routing solve is a single invocation with no server lifecycle, so
// this entry point is a small cobra root command rather than a
// listen-and-serve loop.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
