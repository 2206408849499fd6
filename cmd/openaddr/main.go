// Command openaddr drives an open-addressing table from the terminal: an
// interactive menu, the prime sieve demo and a load benchmark.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
