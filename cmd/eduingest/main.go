// Command eduingest extracts structure from educational documents and
// registers each source file exactly once in a durable content ledger.
package main

import (
	"fmt"
	"os"

	"github.com/ankr-labs/eduingest/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
