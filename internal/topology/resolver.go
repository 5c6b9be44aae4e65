package topology

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// loopbackPrefix identifies addresses in 127.0.0.0/8 the way the harness
// always has: by the leading "127.0" of the first IPv4 address.
const loopbackPrefix = "127.0"

// Resolver resolves hostnames to addresses. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// DefaultResolver performs real resolution through the system resolver.
var DefaultResolver Resolver = net.DefaultResolver

// StaticResolver is a map-backed Resolver for deterministic lookups.
// IP literals resolve to themselves.
type StaticResolver map[string][]string

func (r StaticResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	if addrs, ok := r[host]; ok {
		return addrs, nil
	}

	if net.ParseIP(host) != nil {
		return []string{host}, nil
	}

	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

// HostIsLocal reports whether hostname resolves to a loopback address.
// Only the first IPv4 address is considered. Resolution failures, including a
// host with no IPv4 address, are returned as resolution errors.
func HostIsLocal(ctx context.Context, resolver Resolver, hostname string) (bool, error) {
	if hostname == "" {
		return false, newResolutionError(hostname, fmt.Errorf("hostname cannot be empty"))
	}

	if resolver == nil {
		resolver = DefaultResolver
	}

	start := time.Now()
	addrs, err := resolver.LookupHost(ctx, hostname)
	if err != nil {
		tflog.SubsystemDebug(ctx, subsystem, "Host lookup failed", map[string]any{
			"hostname": hostname,
			"duration": time.Since(start).String(),
			"error":    err.Error(),
		})
		return false, newResolutionError(hostname, err)
	}

	addr, ok := firstIPv4(addrs)
	if !ok {
		return false, newResolutionError(hostname, fmt.Errorf("no IPv4 address among %v", addrs))
	}

	local := strings.HasPrefix(addr, loopbackPrefix)
	tflog.SubsystemTrace(ctx, subsystem, "Host lookup completed", map[string]any{
		"hostname": hostname,
		"address":  addr,
		"local":    local,
		"duration": time.Since(start).String(),
	})

	return local, nil
}

func firstIPv4(addrs []string) (string, bool) {
	for _, addr := range addrs {
		if ip4 := net.ParseIP(addr).To4(); ip4 != nil {
			return ip4.String(), true
		}
	}
	return "", false
}

// HostsAreSame reports whether two hostnames designate the same host. The
// comparison is purely textual and case-insensitive; no resolution happens.
func HostsAreSame(hostname1, hostname2 string) bool {
	return strings.EqualFold(hostname1, hostname2)
}
