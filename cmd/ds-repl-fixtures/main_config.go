package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GluuFederation/gluu-opendj/internal/ldif"
	"github.com/GluuFederation/gluu-opendj/internal/topology"
)

type cmdConfig struct {
	global *cmdGlobal

	flagTopology string
	flagServer   int
	flagSplit    bool
	flagOutput   string
}

func (c *cmdConfig) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "config --topology FILE"
	cmd.Short = "Generate the replication configuration of a server"
	cmd.Long = `Description:
  Generate the replication configuration of a server

  The server is picked by its zero-based position in the topology file.
  With --split, every server holding both the replication server role and
  replicated suffixes is split first; the split-off replication servers
  follow the described servers in index order.

  Without --output the file is written to the server's temp directory and
  its path is printed.
`
	cmd.Args = cobra.NoArgs
	cmd.RunE = c.Run

	cmd.Flags().StringVarP(&c.flagTopology, "topology", "t", "", "YAML topology description"+"``")
	cmd.Flags().IntVarP(&c.flagServer, "server", "s", 0, "Index of the server in the topology"+"``")
	cmd.Flags().BoolVar(&c.flagSplit, "split", false, "Split dual-role servers before generating")
	cmd.Flags().StringVarP(&c.flagOutput, "output", "o", "", "Output LDIF file"+"``")
	_ = cmd.MarkFlagRequired("topology")

	return cmd
}

func (c *cmdConfig) Run(cmd *cobra.Command, args []string) error {
	ctx := c.global.ctx

	registry, err := topology.LoadTopology(ctx, c.flagTopology, topology.DefaultResolver)
	if err != nil {
		return err
	}

	if c.flagSplit {
		split, err := registry.SplitAll(ctx)
		if err != nil {
			return err
		}

		c.global.log.WithField("count", len(split)).Debug("Split replication servers")
	}

	servers := registry.Servers()
	if c.flagServer < 0 || c.flagServer >= len(servers) {
		return fmt.Errorf("Server index %d out of range, topology has %d servers", c.flagServer, len(servers))
	}

	server := servers[c.flagServer]
	c.global.log.WithFields(logrus.Fields{
		"hostname": server.Hostname(),
		"dir":      server.Dir(),
	}).Debug("Selected server")

	output := c.flagOutput
	if output == "" {
		output = ldif.TempPath(server, "replication-config")
	}

	err = ldif.WriteReplicationConfig(ctx, output, server)
	if err != nil {
		return err
	}

	c.global.wrote("replication-config", output)
	fmt.Fprintln(cmd.OutOrStdout(), output)

	return nil
}
