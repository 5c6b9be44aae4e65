package topology

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopology = `
servers:
  - hostname: localhost
    dir: /opt/ds/server1
    data_dir: /home/tester/data
    changelog_server:
      id: 1
      peers:
        - host2:8989
    synchronized_suffixes:
      - dn: dc=example,dc=com
        id: 2
        peers:
          - localhost:8989
          - host2:8989
      - dn: o=test
        id: 3
        peers:
          - localhost:8989
  - hostname: host2
    dir: /opt/ds/server2
    port: 2389
    admin_port: 5444
    ssl_port: 2636
    jmx_port: 2689
    root_dn: cn=admin
    root_password: admin123
    base_dn: o=test
    changelog_server:
      port: 9989
      id: 11
`

func TestParseDescription_Defaults(t *testing.T) {
	desc, err := ParseDescription([]byte(testTopology))
	require.NoError(t, err)
	require.Len(t, desc.Servers, 2)

	first := desc.Servers[0]
	assert.Equal(t, "localhost", first.Hostname)
	assert.Equal(t, 1389, first.Port)
	assert.Equal(t, 4444, first.AdminPort)
	assert.Equal(t, 1636, first.SSLPort)
	assert.Equal(t, 1689, first.JMXPort)
	assert.Equal(t, "cn=Directory Manager", first.RootDN)
	assert.Equal(t, "password", first.RootPassword)
	assert.Equal(t, "dc=example,dc=com", first.BaseDN)
	require.NotNil(t, first.ChangelogServer)
	assert.Equal(t, 8989, first.ChangelogServer.Port)

	second := desc.Servers[1]
	assert.Equal(t, 2389, second.Port)
	assert.Equal(t, 5444, second.AdminPort)
	assert.Equal(t, "cn=admin", second.RootDN)
	assert.Equal(t, "o=test", second.BaseDN)
	assert.Equal(t, 9989, second.ChangelogServer.Port)
	assert.Empty(t, second.Suffixes)
}

func TestParseDescription_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no servers",
			yaml: "servers: []\n",
		},
		{
			name: "unknown field",
			yaml: "servers:\n  - dir: /opt/ds\n    colour: blue\n",
		},
		{
			name: "missing dir",
			yaml: "servers:\n  - hostname: localhost\n",
		},
		{
			name: "changelog server without id",
			yaml: "servers:\n  - dir: /opt/ds\n    changelog_server:\n      port: 8989\n",
		},
		{
			name: "peer without port",
			yaml: "servers:\n  - dir: /opt/ds\n    changelog_server:\n      id: 1\n      peers: [host2]\n",
		},
		{
			name: "suffix with invalid dn",
			yaml: "servers:\n  - dir: /opt/ds\n    synchronized_suffixes:\n      - dn: not-a-dn\n        id: 2\n",
		},
		{
			name: "suffix with empty dn",
			yaml: "servers:\n  - dir: /opt/ds\n    synchronized_suffixes:\n      - id: 2\n",
		},
		{
			name: "suffix peer with bad port",
			yaml: "servers:\n  - dir: /opt/ds\n    synchronized_suffixes:\n      - dn: o=test\n        id: 2\n        peers: [host2:http]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescription([]byte(tt.yaml))

			require.Error(t, err)
			assert.True(t, IsConfigurationError(err), "unexpected error category: %v", err)
		})
	}
}

func TestLoadTopology(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testTopology), 0o600))

	registry, err := LoadTopology(context.Background(), path, testResolver)
	require.NoError(t, err)
	require.Equal(t, 2, registry.Len())

	servers := registry.Servers()

	first := servers[0]
	assert.Equal(t, "/home/tester/data", first.DataDir())
	require.NotNil(t, first.ChangelogServer())
	assert.Equal(t, 1, first.ChangelogServer().ID())
	assert.Equal(t, []string{"host2:8989"}, first.ChangelogServer().ChangelogServers())

	suffixes := first.SynchronizedSuffixes()
	require.Len(t, suffixes, 2)
	assert.Equal(t, "dc=example,dc=com", suffixes[0].SuffixDN())
	assert.Equal(t, 2, suffixes[0].ID())
	assert.Equal(t, []string{"localhost:8989", "host2:8989"}, suffixes[0].ChangelogServers())
	assert.Equal(t, "o=test", suffixes[1].SuffixDN())

	second := servers[1]
	assert.Equal(t, "/opt/ds/server2/testdata/data", second.DataDir())
	assert.True(t, second.IsOnlyReplServer())
	assert.Equal(t, 9989, second.ChangelogServer().Port())
}

func TestLoadTopology_MissingFile(t *testing.T) {
	_, err := LoadTopology(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), testResolver)

	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTopology_UnresolvableHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte("servers:\n  - hostname: nowhere.invalid\n    dir: /opt/ds\n"), 0o600))

	_, err := LoadTopology(context.Background(), path, testResolver)

	require.Error(t, err)
	assert.True(t, IsResolutionError(err))
}
