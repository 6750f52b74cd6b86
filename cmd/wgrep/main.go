package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes: 0 found, 1 not found, 2 any error.
const (
	exitFound    = 0
	exitNotFound = 1
	exitError    = 2
)

// errNoMatch is returned by the search command when the pattern does not
// occur. It is not printed.
var errNoMatch = errors.New("no match")

func main() {
	os.Exit(exitCode(Execute(), os.Stderr))
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitFound
	case errors.Is(err, errNoMatch):
		return exitNotFound
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}
