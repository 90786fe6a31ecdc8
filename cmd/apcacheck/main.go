// Where: cmd/apcacheck/main.go
// What: CLI entrypoint.
// Why: Run the credential check with production dependencies.
package main

import (
	"os"

	"github.com/poruru-code/apcacheck/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
