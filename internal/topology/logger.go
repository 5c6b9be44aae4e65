package topology

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

const subsystem = "topology"

// NewLogContext initializes the topology logging subsystem.
// Level is taken from DS_REPL_FIXTURES_LOG_TOPOLOGY.
func NewLogContext(ctx context.Context) context.Context {
	ctx = tflog.NewSubsystem(ctx, subsystem,
		tflog.WithLevelFromEnv("DS_REPL_FIXTURES_LOG_TOPOLOGY"))
	return tflog.SubsystemMaskFieldValuesWithFieldKeys(ctx, subsystem, "root_password")
}

// serverFields returns the log fields describing a server.
func serverFields(s *Server) map[string]any {
	fields := map[string]any{
		"hostname":      s.hostname,
		"dir":           s.dir,
		"port":          s.port,
		"root_dn":       s.rootDN,
		"root_password": s.rootPassword,
		"suffixes":      len(s.suffixes),
		"repl_role":     s.changelogServer != nil,
	}
	if s.changelogServer != nil {
		fields["changelog_port"] = s.changelogServer.port
		fields["changelog_id"] = s.changelogServer.id
	}
	return fields
}
