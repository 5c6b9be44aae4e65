package topology

import (
	"context"
	"slices"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Registry is the ordered set of servers deployed for a test run.
// It is not safe for concurrent use.
type Registry struct {
	servers []*Server
}

// NewRegistry creates a registry holding servers in the given order.
func NewRegistry(servers ...*Server) *Registry {
	r := &Registry{}
	for _, s := range servers {
		r.Add(s)
	}
	return r
}

// Add registers a server. Nil servers are ignored.
func (r *Registry) Add(s *Server) {
	if s == nil {
		return
	}
	r.servers = append(r.servers, s)
}

// Servers returns all registered servers in registration order.
func (r *Registry) Servers() []*Server {
	return slices.Clone(r.servers)
}

func (r *Registry) Len() int {
	return len(r.servers)
}

// ReplicationServers returns the servers holding a changelog server.
func (r *Registry) ReplicationServers() []*Server {
	return r.filter(func(s *Server) bool { return s.changelogServer != nil })
}

// LDAPServers returns the servers replicating at least one suffix.
func (r *Registry) LDAPServers() []*Server {
	return r.filter(func(s *Server) bool { return len(s.suffixes) > 0 })
}

// SynchronizedServers returns the servers taking part in replication.
func (r *Registry) SynchronizedServers() []*Server {
	return r.filter((*Server).RequiresSynchronization)
}

// ServersOnHost returns the servers whose hostname designates hostname.
func (r *Registry) ServersOnHost(hostname string) []*Server {
	return r.filter(func(s *Server) bool { return HostsAreSame(s.hostname, hostname) })
}

func (r *Registry) filter(keep func(*Server) bool) []*Server {
	var out []*Server
	for _, s := range r.servers {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// SplitAll splits every server holding both the replication-server role and
// at least one suffix, registers the resulting replication servers and
// returns them in the order of the servers they were split from.
func (r *Registry) SplitAll(ctx context.Context) ([]*Server, error) {
	var split []*Server

	for _, s := range r.servers {
		if s.changelogServer == nil || len(s.suffixes) == 0 {
			continue
		}

		replServer, err := s.Split()
		if err != nil {
			return nil, err
		}

		tflog.SubsystemDebug(ctx, subsystem, "Replication server split off", serverFields(replServer))
		split = append(split, replServer)
	}

	r.servers = append(r.servers, split...)

	tflog.SubsystemInfo(ctx, subsystem, "Split replication servers", map[string]any{
		"split_count":  len(split),
		"server_count": len(r.servers),
	})

	return split, nil
}
