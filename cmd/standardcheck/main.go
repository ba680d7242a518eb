// Command standardcheck reports which filesystem portability rules the given
// paths break.
package main

import (
	"os"

	"github.com/leapstack-labs/standardcheck/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
