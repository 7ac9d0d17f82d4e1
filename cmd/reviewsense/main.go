// Command reviewsense classifies product reviews and corrects the verdicts
// with Hinglish and English keyword heuristics.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
