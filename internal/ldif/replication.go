package ldif

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-ldap/ldap/v3"

	"github.com/GluuFederation/gluu-opendj/internal/topology"
)

// Replication configuration entry DNs.
const (
	MultimasterSynchronizationDN = "cn=Multimaster Synchronization,cn=Synchronization Providers,cn=config"
	ReplicationServerDN          = "cn=Replication Server," + MultimasterSynchronizationDN
	DomainsDN                    = "cn=domains," + MultimasterSynchronizationDN

	replicationProviderClass = "org.opends.server.replication.plugin.MultimasterReplication"
)

// DomainName returns the name of the replication domain entry of the suffix
// at index in a server's suffix list.
func DomainName(index int) string {
	return fmt.Sprintf("SUFFIX-%d", index)
}

// DomainDN returns the DN of the replication domain entry of the suffix at index.
func DomainDN(index int) string {
	return "cn=" + DomainName(index) + "," + DomainsDN
}

// ReplicationConfigEntries builds the replication configuration entries of
// server in output order: the synchronization provider, the replication
// server (only with a changelog server), the domains branch and one domain
// per synchronized suffix.
func ReplicationConfigEntries(server *topology.Server) []*ldap.AddRequest {
	entries := []*ldap.AddRequest{synchronizationProviderEntry()}

	if cs := server.ChangelogServer(); cs != nil {
		entries = append(entries, replicationServerEntry(cs))
	}

	entries = append(entries, domainsEntry())

	for i, suffix := range server.SynchronizedSuffixes() {
		entries = append(entries, replicationDomainEntry(i, suffix))
	}

	return entries
}

func synchronizationProviderEntry() *ldap.AddRequest {
	entry := ldap.NewAddRequest(MultimasterSynchronizationDN, nil)
	entry.Attribute("objectClass", []string{
		"top",
		"ds-cfg-synchronization-provider",
		"ds-cfg-replication-synchronization-provider",
	})
	entry.Attribute("cn", []string{"Multimaster Synchronization"})
	entry.Attribute("ds-cfg-enabled", []string{"true"})
	entry.Attribute("ds-cfg-java-class", []string{replicationProviderClass})
	return entry
}

// replicationServerEntry lists the server id after the peer endpoints.
func replicationServerEntry(cs *topology.ChangelogServer) *ldap.AddRequest {
	entry := ldap.NewAddRequest(ReplicationServerDN, nil)
	entry.Attribute("objectClass", []string{"top", "ds-cfg-replication-server"})
	entry.Attribute("cn", []string{"Replication Server"})
	entry.Attribute("ds-cfg-replication-port", []string{strconv.Itoa(cs.Port())})
	entry.Attribute("ds-cfg-replication-server", cs.ChangelogServers())
	entry.Attribute("ds-cfg-replication-server-id", []string{strconv.Itoa(cs.ID())})
	return entry
}

func domainsEntry() *ldap.AddRequest {
	entry := ldap.NewAddRequest(DomainsDN, nil)
	entry.Attribute("objectClass", []string{"top", "ds-cfg-branch"})
	entry.Attribute("cn", []string{"domains"})
	return entry
}

// replicationDomainEntry lists the server id after the peer endpoints.
func replicationDomainEntry(index int, suffix *topology.SynchronizedSuffix) *ldap.AddRequest {
	entry := ldap.NewAddRequest(DomainDN(index), nil)
	entry.Attribute("objectClass", []string{"top", "ds-cfg-replication-domain"})
	entry.Attribute("cn", []string{DomainName(index)})
	entry.Attribute("ds-cfg-base-dn", []string{suffix.SuffixDN()})
	entry.Attribute("ds-cfg-replication-server", suffix.ChangelogServers())
	entry.Attribute("ds-cfg-server-id", []string{strconv.Itoa(suffix.ID())})
	entry.Attribute("ds-cfg-receive-status", []string{"true"})
	return entry
}

// WriteReplicationConfig writes the replication configuration of server to
// path. Every entry is preceded by a blank line.
func WriteReplicationConfig(ctx context.Context, path string, server *topology.Server) error {
	if server == nil {
		return NewValidationError("write_replication_config", "", "server cannot be nil")
	}

	fields := map[string]any{
		"path":     path,
		"hostname": server.Hostname(),
		"dir":      server.Dir(),
		"suffixes": len(server.SynchronizedSuffixes()),
	}

	return LogOperation(ctx, "write_replication_config", fields, func() error {
		lines := appendEntries(nil, ReplicationConfigEntries(server), true)
		return writeLines("write_replication_config", path, lines)
	})
}
