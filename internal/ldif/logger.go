package ldif

import (
	"context"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

const subsystem = "ldif"

// NewLogContext initializes the ldif logging subsystem.
// Level is taken from DS_REPL_FIXTURES_LOG_LDIF.
func NewLogContext(ctx context.Context) context.Context {
	return tflog.NewSubsystem(ctx, subsystem,
		tflog.WithLevelFromEnv("DS_REPL_FIXTURES_LOG_LDIF"))
}

// LogOperation is a helper function to log an operation with timing.
func LogOperation(ctx context.Context, operation string, fields map[string]any, fn func() error) error {
	start := time.Now()

	if fields == nil {
		fields = make(map[string]any)
	}
	fields["operation"] = operation

	tflog.SubsystemDebug(ctx, subsystem, "Starting operation", fields)

	err := fn()

	fields["duration_ms"] = time.Since(start).Milliseconds()

	if err != nil {
		fields["error"] = err.Error()
		fields["error_category"] = string(GetErrorCategory(err))
		tflog.SubsystemError(ctx, subsystem, "Operation failed", fields)
	} else {
		tflog.SubsystemDebug(ctx, subsystem, "Operation completed successfully", fields)
	}

	return err
}
