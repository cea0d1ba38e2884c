// Command radix loads keys into a radix tree and queries it.
//
// Input files hold one key per line, optionally followed by a TAB and a
// value. Blank lines and lines starting with # are ignored. A file named
// "-" is read from standard input.
//
//	radix -f words.txt prefix lab
//	radix -f paths.txt list --delimiter / usr/
//	radix -f words.txt dump
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
