// rangecmp classifies values against a range given in interval notation.
//
//	rangecmp --range "[3, 10)" --type int 2 3 9 10
//
// prints one "<value> <Below|Inside|Above>" line per value.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
