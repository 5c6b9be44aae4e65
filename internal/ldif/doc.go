/*
Package ldif writes the LDIF fixtures used to set up multi-master replication
tests against a directory server.

# Record Model

Every record is built in memory as a go-ldap request before it is rendered:

  - Entries (configuration and test data) are *ldap.AddRequest values
  - Modify change records are *ldap.ModifyRequest values
  - Rename change records are *ldap.ModifyDNRequest values

Attribute order within a request is the output order. The consuming server
bulk-loads the files, so the order is part of the contract.

# Writers

  - WriteReplicationConfig: synchronization provider, replication server,
    domains branch and one SUFFIX-<n> domain per synchronized suffix
  - WriteRootSuffixEntry, WriteSingleEntry, WriteMultipleEntries: test data
  - WriteModify, WriteModifyBinary, WriteRename: change records
  - WritePersonEntries: ad hoc inetOrgPerson entries

Each writer builds the whole document first and then writes it to the
destination in one pass. Failures are returned as *FixtureError values
categorized as file access or validation errors.

# Logging

Operations log through the "ldif" tflog subsystem. Call NewLogContext once on
the context handed to the writers; the level is read from
DS_REPL_FIXTURES_LOG_LDIF.

# Example Usage

	server, err := topology.NewServer(ctx, nil, topology.ServerConfig{...})
	if err != nil {
		return err
	}
	cs := topology.NewChangelogServer(8989, 1)
	cs.AddChangelogServer("host2", 8989)
	server.SetChangelogServer(cs)

	err = ldif.WriteReplicationConfig(ctx, ldif.TempPath(server, "replication-config"), server)
*/
package ldif
