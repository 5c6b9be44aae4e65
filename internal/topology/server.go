package topology

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strconv"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// replServerDirSuffix is appended to a server's directory when its
// replication-server role is split off into a separate instance.
const replServerDirSuffix = "-repl-server"

// ChangelogServer describes the replication-server role of a server.
type ChangelogServer struct {
	port  int
	id    int
	peers []string
}

// NewChangelogServer creates a changelog server listening on port with the given replication server id.
func NewChangelogServer(port, id int) *ChangelogServer {
	return &ChangelogServer{
		port: port,
		id:   id,
	}
}

// AddChangelogServer appends a peer replication server endpoint.
func (c *ChangelogServer) AddChangelogServer(hostname string, port int) {
	c.peers = append(c.peers, formatEndpoint(hostname, port))
}

func (c *ChangelogServer) Port() int {
	return c.port
}

func (c *ChangelogServer) ID() int {
	return c.id
}

// ChangelogServers returns the peer endpoints in the order they were added.
func (c *ChangelogServer) ChangelogServers() []string {
	return slices.Clone(c.peers)
}

// SynchronizedSuffix describes one naming context replicated by a server.
type SynchronizedSuffix struct {
	suffixDN string
	id       int
	peers    []string
}

// NewSynchronizedSuffix creates a replicated suffix with the given server id.
// The id lives in a namespace distinct from changelog server ids.
func NewSynchronizedSuffix(suffixDN string, id int) *SynchronizedSuffix {
	return &SynchronizedSuffix{
		suffixDN: suffixDN,
		id:       id,
	}
}

// AddChangelogServer appends a replication server endpoint the suffix connects to.
func (s *SynchronizedSuffix) AddChangelogServer(hostname string, port int) {
	s.peers = append(s.peers, formatEndpoint(hostname, port))
}

func (s *SynchronizedSuffix) SuffixDN() string {
	return s.suffixDN
}

func (s *SynchronizedSuffix) ID() int {
	return s.id
}

// ChangelogServers returns the peer endpoints in the order they were added.
func (s *SynchronizedSuffix) ChangelogServers() []string {
	return slices.Clone(s.peers)
}

// formatEndpoint renders host and port as an opaque "host:port" endpoint.
// IPv6 literals are not bracketed.
func formatEndpoint(hostname string, port int) string {
	return hostname + ":" + strconv.Itoa(port)
}

// ServerConfig holds the identity of a directory server under test.
type ServerConfig struct {
	Hostname     string // Host the server runs on
	Dir          string // Installation directory
	Port         int    // LDAP client port
	AdminPort    int    // Administration connector port
	SSLPort      int    // LDAPS port
	JMXPort      int    // Management (JMX) port
	RootDN       string // Root account DN
	RootPassword string // Root account password
	BaseDN       string // Base DN served by the instance
	LocalDataDir string // Test data directory used when the host is local
}

// Server is one directory server process under test.
type Server struct {
	hostname     string
	dir          string
	tempDir      string
	dataDir      string
	port         int
	adminPort    int
	sslPort      int
	jmxPort      int
	rootDN       string
	rootPassword string
	baseDN       string

	changelogServer *ChangelogServer
	suffixes        []*SynchronizedSuffix

	resolver Resolver
}

// NewServer creates a server from cfg. The data directory is cfg.LocalDataDir
// when cfg.Hostname resolves to loopback, <dir>/testdata/data otherwise.
// A nil resolver means DefaultResolver.
func NewServer(ctx context.Context, resolver Resolver, cfg ServerConfig) (*Server, error) {
	if resolver == nil {
		resolver = DefaultResolver
	}

	local, err := HostIsLocal(ctx, resolver, cfg.Hostname)
	if err != nil {
		return nil, fmt.Errorf("failed to derive data directory for %s: %w", cfg.Hostname, err)
	}

	dataDir := path.Join(cfg.Dir, "testdata", "data")
	if local {
		dataDir = cfg.LocalDataDir
	}

	s := newServer(cfg, dataDir, resolver)

	tflog.SubsystemDebug(ctx, subsystem, "Server created", map[string]any{
		"hostname": s.hostname,
		"dir":      s.dir,
		"data_dir": s.dataDir,
		"local":    local,
	})

	return s, nil
}

func newServer(cfg ServerConfig, dataDir string, resolver Resolver) *Server {
	return &Server{
		hostname:     cfg.Hostname,
		dir:          cfg.Dir,
		tempDir:      path.Join(cfg.Dir, "temp"),
		dataDir:      dataDir,
		port:         cfg.Port,
		adminPort:    cfg.AdminPort,
		sslPort:      cfg.SSLPort,
		jmxPort:      cfg.JMXPort,
		rootDN:       cfg.RootDN,
		rootPassword: cfg.RootPassword,
		baseDN:       cfg.BaseDN,
		resolver:     resolver,
	}
}

func (s *Server) String() string {
	return fmt.Sprintf("Server: hostname=%s, directory=%s", s.hostname, s.dir)
}

// SetChangelogServer gives the server the replication-server role.
func (s *Server) SetChangelogServer(cs *ChangelogServer) {
	s.changelogServer = cs
}

// AddSynchronizedSuffix appends a replicated suffix.
func (s *Server) AddSynchronizedSuffix(suffix *SynchronizedSuffix) {
	s.suffixes = append(s.suffixes, suffix)
}

func (s *Server) Hostname() string     { return s.hostname }
func (s *Server) Dir() string          { return s.dir }
func (s *Server) TempDir() string      { return s.tempDir }
func (s *Server) DataDir() string      { return s.dataDir }
func (s *Server) Port() int            { return s.port }
func (s *Server) AdminPort() int       { return s.adminPort }
func (s *Server) SSLPort() int         { return s.sslPort }
func (s *Server) JMXPort() int         { return s.jmxPort }
func (s *Server) RootDN() string       { return s.rootDN }
func (s *Server) RootPassword() string { return s.rootPassword }
func (s *Server) BaseDN() string       { return s.baseDN }

// ChangelogServer returns the attached changelog server, or nil.
func (s *Server) ChangelogServer() *ChangelogServer {
	return s.changelogServer
}

// SynchronizedSuffixes returns the replicated suffixes in the order they were added.
func (s *Server) SynchronizedSuffixes() []*SynchronizedSuffix {
	return slices.Clone(s.suffixes)
}

// RequiresSynchronization reports whether the server takes part in replication at all.
func (s *Server) RequiresSynchronization() bool {
	return s.changelogServer != nil || len(s.suffixes) > 0
}

// IsOnlyLDAPServer reports whether the server replicates suffixes without
// holding the replication-server role.
func (s *Server) IsOnlyLDAPServer() bool {
	return s.changelogServer == nil && len(s.suffixes) > 0
}

// IsOnlyReplServer reports whether the server holds the replication-server
// role without replicating any suffix.
func (s *Server) IsOnlyReplServer() bool {
	return s.changelogServer != nil && len(s.suffixes) == 0
}

// HostIsLocal reports whether hostname resolves to a loopback address using
// the server's resolver.
func (s *Server) HostIsLocal(ctx context.Context, hostname string) (bool, error) {
	return HostIsLocal(ctx, s.resolver, hostname)
}

// Split moves the replication-server role into a new server pinned to the
// adjacent ports (each port + 1) in <dir>-repl-server. The changelog server
// is detached from s and attached to the returned server; suffixes stay on s.
func (s *Server) Split() (*Server, error) {
	if s.changelogServer == nil {
		return nil, newInvalidRoleError("split", s)
	}

	replServer := newServer(ServerConfig{
		Hostname:     s.hostname,
		Dir:          s.dir + replServerDirSuffix,
		Port:         s.port + 1,
		AdminPort:    s.adminPort + 1,
		SSLPort:      s.sslPort + 1,
		JMXPort:      s.jmxPort + 1,
		RootDN:       s.rootDN,
		RootPassword: s.rootPassword,
		BaseDN:       s.baseDN,
	}, s.dataDir, s.resolver)

	replServer.changelogServer, s.changelogServer = s.changelogServer, nil

	return replServer, nil
}
