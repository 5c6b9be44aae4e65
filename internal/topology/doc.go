// Package topology models the servers of a replication test topology: their
// identity, their replication-server role (ChangelogServer) and the suffixes
// they replicate (SynchronizedSuffix).
//
// A Server exclusively owns its changelog server and suffixes. Split moves the
// changelog server onto a new Server bound to the adjacent ports, so the
// replication server can run as a separate process.
package topology
