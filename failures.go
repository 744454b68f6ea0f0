package cubesync

import (
	"os"
	"strings"

	"github.com/agentstation/cubesync/pkg/constants"
	"github.com/agentstation/cubesync/pkg/errors"
)

// WriteFailures writes one name per line to path, replacing its contents.
// With no names it does nothing, so a report from an earlier run survives.
func WriteFailures(path string, names []string) error {
	if len(names) == 0 {
		return nil
	}
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
