// Command estatectl is the operator CLI: schema migrations, access tokens for
// testing, ledger checks and explicit role cleanup.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
