// Command teamctl inspects and edits the settings file of a guild, and
// dry-runs team splits against it, without connecting to the platform.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
