// Command timeline prints balance projections of profiles kept in a file
// store directory.
//
//	timeline [-dir DIR] [-tz ZONE] [-v] <command> [flags]
//
// Commands:
//
//	profiles                                   list stored profiles
//	points  [-profile P] [-timeline T] [-from D] [-to D] [-previous]
//	amount  [-profile P] [-timeline T] -date D
//	series  [-profile P] [-timeline T] -from D -to D [-step N]
//
// Dates are YYYY-MM-DD. Without -profile the default profile is used.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "timeline:", err)
		os.Exit(1)
	}
}
