package topology

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/go-ldap/ldap/v3"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"gopkg.in/yaml.v2"
)

// Description is the on-disk description of a replication topology.
type Description struct {
	Servers []ServerDescription `yaml:"servers"`
}

// ServerDescription describes one server of a topology file.
type ServerDescription struct {
	Hostname        string                `yaml:"hostname" default:"localhost"`
	Dir             string                `yaml:"dir"`
	Port            int                   `yaml:"port" default:"1389"`
	AdminPort       int                   `yaml:"admin_port" default:"4444"`
	SSLPort         int                   `yaml:"ssl_port" default:"1636"`
	JMXPort         int                   `yaml:"jmx_port" default:"1689"`
	RootDN          string                `yaml:"root_dn" default:"cn=Directory Manager"`
	RootPassword    string                `yaml:"root_password" default:"password"`
	BaseDN          string                `yaml:"base_dn" default:"dc=example,dc=com"`
	DataDir         string                `yaml:"data_dir"`
	ChangelogServer *ChangelogDescription `yaml:"changelog_server"`
	Suffixes        []SuffixDescription   `yaml:"synchronized_suffixes"`
}

// ChangelogDescription describes the replication-server role of a server.
type ChangelogDescription struct {
	Port  int      `yaml:"port" default:"8989"`
	ID    int      `yaml:"id"`
	Peers []string `yaml:"peers"`
}

// SuffixDescription describes one replicated suffix of a server.
type SuffixDescription struct {
	DN    string   `yaml:"dn"`
	ID    int      `yaml:"id"`
	Peers []string `yaml:"peers"`
}

// ParseDescription decodes a topology description and applies defaults.
func ParseDescription(data []byte) (*Description, error) {
	desc := &Description{}

	if err := yaml.UnmarshalStrict(data, desc); err != nil {
		return nil, newConfigurationError("parse", "invalid topology description", err)
	}

	if err := defaults.Set(desc); err != nil {
		return nil, newConfigurationError("parse", "failed to set default values", err)
	}

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	return desc, nil
}

// Validate checks that every server of the description can be built.
func (d *Description) Validate() error {
	if len(d.Servers) == 0 {
		return newConfigurationError("validate", "topology has no servers", nil)
	}

	for i, s := range d.Servers {
		if s.Dir == "" {
			return newConfigurationError("validate", fmt.Sprintf("server %d: dir is required", i), nil)
		}

		if _, err := ldap.ParseDN(s.BaseDN); err != nil {
			return newConfigurationError("validate", fmt.Sprintf("server %d: invalid base_dn %q", i, s.BaseDN), err)
		}

		if cs := s.ChangelogServer; cs != nil {
			if cs.ID <= 0 {
				return newConfigurationError("validate", fmt.Sprintf("server %d: changelog_server id must be positive", i), nil)
			}
			for _, peer := range cs.Peers {
				if _, _, err := splitEndpoint(peer); err != nil {
					return newConfigurationError("validate", fmt.Sprintf("server %d: changelog_server peer %q", i, peer), err)
				}
			}
		}

		for j, suffix := range s.Suffixes {
			if _, err := ldap.ParseDN(suffix.DN); err != nil || suffix.DN == "" {
				return newConfigurationError("validate", fmt.Sprintf("server %d: suffix %d: invalid dn %q", i, j, suffix.DN), err)
			}
			if suffix.ID <= 0 {
				return newConfigurationError("validate", fmt.Sprintf("server %d: suffix %d: id must be positive", i, j), nil)
			}
			for _, peer := range suffix.Peers {
				if _, _, err := splitEndpoint(peer); err != nil {
					return newConfigurationError("validate", fmt.Sprintf("server %d: suffix %d: peer %q", i, j, peer), err)
				}
			}
		}
	}

	return nil
}

// Build creates the servers of the description and returns them in a registry.
func (d *Description) Build(ctx context.Context, resolver Resolver) (*Registry, error) {
	registry := NewRegistry()

	for _, desc := range d.Servers {
		server, err := NewServer(ctx, resolver, ServerConfig{
			Hostname:     desc.Hostname,
			Dir:          desc.Dir,
			Port:         desc.Port,
			AdminPort:    desc.AdminPort,
			SSLPort:      desc.SSLPort,
			JMXPort:      desc.JMXPort,
			RootDN:       desc.RootDN,
			RootPassword: desc.RootPassword,
			BaseDN:       desc.BaseDN,
			LocalDataDir: desc.DataDir,
		})
		if err != nil {
			return nil, err
		}

		if cs := desc.ChangelogServer; cs != nil {
			changelogServer := NewChangelogServer(cs.Port, cs.ID)
			for _, peer := range cs.Peers {
				host, port, err := splitEndpoint(peer)
				if err != nil {
					return nil, newConfigurationError("build", fmt.Sprintf("changelog_server peer %q", peer), err)
				}
				changelogServer.AddChangelogServer(host, port)
			}
			server.SetChangelogServer(changelogServer)
		}

		for _, sd := range desc.Suffixes {
			suffix := NewSynchronizedSuffix(sd.DN, sd.ID)
			for _, peer := range sd.Peers {
				host, port, err := splitEndpoint(peer)
				if err != nil {
					return nil, newConfigurationError("build", fmt.Sprintf("suffix peer %q", peer), err)
				}
				suffix.AddChangelogServer(host, port)
			}
			server.AddSynchronizedSuffix(suffix)
		}

		tflog.SubsystemDebug(ctx, subsystem, "Server built from description", serverFields(server))
		registry.Add(server)
	}

	return registry, nil
}

// LoadTopology reads the topology description at path and builds its servers.
func LoadTopology(ctx context.Context, path string, resolver Resolver) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newConfigurationError("load", fmt.Sprintf("cannot read %s", path), err)
	}

	desc, err := ParseDescription(data)
	if err != nil {
		return nil, err
	}

	registry, err := desc.Build(ctx, resolver)
	if err != nil {
		return nil, err
	}

	tflog.SubsystemInfo(ctx, subsystem, "Topology loaded", map[string]any{
		"path":         path,
		"server_count": registry.Len(),
	})

	return registry, nil
}

func splitEndpoint(endpoint string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		return "", 0, err
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("invalid port number: %s", portStr)
	}

	return host, port, nil
}
