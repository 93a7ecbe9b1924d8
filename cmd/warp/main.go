// Package main provides the Warp ML Framework CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "version":
		fmt.Printf("Warp ML Framework %s\n", version)
	case "xor":
		if err := runXOR(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "warp xor: %v\n", err)
			os.Exit(1)
		}
	case "linreg":
		if err := runLinreg(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "warp linreg: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Println("Warp ML Framework - Flat-Buffer Tensors and Backprop for Go")
		fmt.Printf("Version: %s\n\n", version)
		fmt.Println("Commands:")
		fmt.Println("  version    Show version")
		fmt.Println("  xor        Train a small MLP on the XOR truth table")
		fmt.Println("  linreg     Fit a line to five points with gradient descent")
		fmt.Println("")
		fmt.Println("See examples/ for the tunable variants: xor, linreg, reconstruct, moons")
	}
}
