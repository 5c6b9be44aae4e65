package ldif

import (
	"bytes"
	"fmt"
	"os"
	"path"

	"github.com/google/uuid"

	"github.com/GluuFederation/gluu-opendj/internal/topology"
)

// writeLines writes lines to filePath, each terminated by a newline. The
// document is assembled in memory first and written in a single pass; the
// file handle is released on every path. A failed write may leave a partial
// file behind.
func writeLines(operation, filePath string, lines []string) (err error) {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return NewFileAccessError(operation, filePath, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = NewFileAccessError(operation, filePath, closeErr)
		}
	}()

	if _, err := buf.WriteTo(f); err != nil {
		return NewFileAccessError(operation, filePath, err)
	}

	return nil
}

// TempPath returns a unique LDIF file name of the given kind in the temp
// directory of server, e.g. <dir>/temp/replication-config-1a2b3c4d.ldif.
func TempPath(server *topology.Server, kind string) string {
	shortUUID := uuid.New().String()[:8]
	return path.Join(server.TempDir(), fmt.Sprintf("%s-%s.ldif", kind, shortUUID))
}
