// Package export stores admin faculty exports. A Sink receives a file
// name and the finished payload; where the bytes end up is up to the sink.
package export

import (
	"context"
	"fmt"
	"strings"
)

// Sink stores an export and reports where it went.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) (location string, err error)
}

// FileName is the name an export of the given faculty member is stored
// under. Path separators in the id are replaced.
func FileName(facultyID string) string {
	id := strings.NewReplacer("/", "_", `\`, "_", "..", "_").Replace(strings.TrimSpace(facultyID))
	return fmt.Sprintf("faculty_%s_export.json", id)
}
