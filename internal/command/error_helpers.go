// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep usage-error output consistent.
package command

import (
	"fmt"
	"io"

	"github.com/poruru-code/apcacheck/internal/domain/credential"
)

// exitWithError prints an error message to the output writer and returns
// the client-error exit code.
func exitWithError(out io.Writer, err error) int {
	legacyUI(out).Warn(fmt.Sprintf("✗ %v", err))
	return credential.ExitClientError
}
