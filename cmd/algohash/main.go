// Command algohash hashes field elements, byte streams and files with the
// instantiations shipped by github.com/vocdoni/algohash.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
