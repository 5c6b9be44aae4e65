package topology

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingResolver struct {
	err error
}

func (r failingResolver) LookupHost(context.Context, string) ([]string, error) {
	return nil, r.err
}

func TestHostIsLocal(t *testing.T) {
	resolver := StaticResolver{
		"localhost": {"127.0.0.1"},
		"loopback2": {"127.0.53.53"},
		"dualstack": {"::1", "127.0.0.1"},
		"remote":    {"192.168.1.10", "127.0.0.1"},
		"other127":  {"127.1.0.1"},
		"v6only":    {"::1"},
		"mappedv4":  {"::ffff:127.0.0.1"},
	}

	tests := []struct {
		name     string
		hostname string
		want     bool
		wantErr  bool
	}{
		{name: "localhost", hostname: "localhost", want: true},
		{name: "other 127.0 address", hostname: "loopback2", want: true},
		{name: "first IPv4 address decides", hostname: "dualstack", want: true},
		{name: "remote first address", hostname: "remote", want: false},
		{name: "loopback outside 127.0 prefix", hostname: "other127", want: false},
		{name: "IPv4-mapped loopback", hostname: "mappedv4", want: true},
		{name: "IP literal", hostname: "127.0.0.1", want: true},
		{name: "remote IP literal", hostname: "10.1.2.3", want: false},
		{name: "no IPv4 address", hostname: "v6only", wantErr: true},
		{name: "unknown host", hostname: "nonexistent.invalid", wantErr: true},
		{name: "empty hostname", hostname: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HostIsLocal(context.Background(), resolver, tt.hostname)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsResolutionError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHostIsLocal_PropagatesResolverError(t *testing.T) {
	cause := errors.New("temporary failure in name resolution")

	_, err := HostIsLocal(context.Background(), failingResolver{err: cause}, "host1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "host: host1")
}

func TestServer_HostIsLocal(t *testing.T) {
	s := newTestServer(t, "host2")

	local, err := s.HostIsLocal(context.Background(), "localhost")
	require.NoError(t, err)
	assert.True(t, local)

	local, err = s.HostIsLocal(context.Background(), "host2")
	require.NoError(t, err)
	assert.False(t, local)
}

func TestHostsAreSame(t *testing.T) {
	assert.True(t, HostsAreSame("host1", "host1"))
	assert.True(t, HostsAreSame("Host1.Example.com", "host1.example.com"))
	assert.False(t, HostsAreSame("host1", "host2"))
	assert.False(t, HostsAreSame("localhost", "127.0.0.1"))
}
