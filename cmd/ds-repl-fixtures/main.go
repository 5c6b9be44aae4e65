package main

import (
	"context"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/terraform-plugin-log/tfsdklog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GluuFederation/gluu-opendj/internal/ldif"
	"github.com/GluuFederation/gluu-opendj/internal/topology"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

type cmdGlobal struct {
	flagDebug   bool
	flagVerbose bool
	flagHelp    bool

	log *logrus.Logger
	ctx context.Context
}

// Setup configures console logging and the structured logging context shared
// by all sub-commands.
func (g *cmdGlobal) Setup(cmd *cobra.Command, args []string) error {
	if g.log == nil {
		g.log = logrus.New()
	}

	g.log.SetOutput(cmd.ErrOrStderr())
	g.log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	switch {
	case g.flagDebug:
		g.log.SetLevel(logrus.DebugLevel)
	case g.flagVerbose:
		g.log.SetLevel(logrus.InfoLevel)
	default:
		g.log.SetLevel(logrus.WarnLevel)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if g.flagDebug {
		ctx = tfsdklog.NewRootProviderLogger(ctx,
			tfsdklog.WithLogName("ds-repl-fixtures"),
			tfsdklog.WithLevel(hclog.Debug),
		)
	}

	ctx = topology.NewLogContext(ctx)
	ctx = ldif.NewLogContext(ctx)
	g.ctx = ctx

	return nil
}

// wrote reports a generated file on the console.
func (g *cmdGlobal) wrote(kind string, path string) {
	g.log.WithFields(logrus.Fields{"kind": kind, "path": path}).Info("LDIF written")
}

func (g *cmdGlobal) command() *cobra.Command {
	app := &cobra.Command{}
	app.Use = "ds-repl-fixtures"
	app.Short = "Generate LDIF fixtures for directory replication tests"
	app.Long = `Description:
  Generate LDIF fixtures for directory replication tests

  The replication configuration of a server is derived from a YAML topology
  file. The remaining commands produce canned test entries and change
  records for a given suffix or entry.
`
	app.SilenceUsage = true
	app.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}
	app.PersistentPreRunE = g.Setup

	// Global flags
	app.PersistentFlags().BoolVar(&g.flagDebug, "debug", false, "Show all debug messages")
	app.PersistentFlags().BoolVarP(&g.flagVerbose, "verbose", "v", false, "Show all information messages")
	app.PersistentFlags().BoolVarP(&g.flagHelp, "help", "h", false, "Print help")

	// Version handling
	app.SetVersionTemplate("{{.Version}}\n")
	app.Version = version

	// config sub-command
	configCmd := cmdConfig{global: g}
	app.AddCommand(configCmd.Command())

	// root-suffix, single and multiple sub-commands
	for _, kind := range []string{dataKindRootSuffix, dataKindSingle, dataKindMultiple} {
		dataCmd := cmdData{global: g, kind: kind}
		app.AddCommand(dataCmd.Command())
	}

	// modify sub-command
	modifyCmd := cmdModify{global: g}
	app.AddCommand(modifyCmd.Command())

	// modify-binary sub-command
	modifyBinaryCmd := cmdModifyBinary{global: g}
	app.AddCommand(modifyBinaryCmd.Command())

	// rename sub-command
	renameCmd := cmdRename{global: g}
	app.AddCommand(renameCmd.Command())

	return app
}

func main() {
	globalCmd := cmdGlobal{}
	app := globalCmd.command()

	// Run the main command and handle errors
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
