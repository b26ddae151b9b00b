// Package main is the admin CLI for the vlog site.
//
// There is no admin web UI; videos, comment moderation, and the Thanks-page
// acknowledgements are all managed from the command line against the same
// database file the server uses.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
