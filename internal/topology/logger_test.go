package topology

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/terraform-plugin-log/tflogtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTopology_MasksRootPassword(t *testing.T) {
	var output bytes.Buffer
	ctx := NewLogContext(tflogtest.RootLogger(context.Background(), &output))

	path := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testTopology), 0o600))

	_, err := LoadTopology(ctx, path, testResolver)
	require.NoError(t, err)

	raw := output.String()
	entries, err := tflogtest.MultilineJSONDecode(&output)
	require.NoError(t, err)

	var built int
	for _, entry := range entries {
		if entry["@message"] != "Server built from description" {
			continue
		}
		built++
		assert.Equal(t, "***", entry["root_password"])
		assert.NotEmpty(t, entry["root_dn"])
	}
	assert.Equal(t, 2, built)
	assert.NotContains(t, raw, "admin123")
}
