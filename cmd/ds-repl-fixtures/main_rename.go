package main

import (
	"github.com/spf13/cobra"

	"github.com/GluuFederation/gluu-opendj/internal/ldif"
)

type cmdRename struct {
	global *cmdGlobal

	flagOutput       string
	flagDeleteOldRDN bool
}

func (c *cmdRename) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "rename DN NEWRDN [NEWSUPERIOR] --output FILE"
	cmd.Short = "Generate a modrdn change record"
	cmd.Args = cobra.RangeArgs(2, 3)
	cmd.RunE = c.Run

	cmd.Flags().StringVarP(&c.flagOutput, "output", "o", "", "Output LDIF file"+"``")
	cmd.Flags().BoolVar(&c.flagDeleteOldRDN, "delete-old-rdn", false, "Remove the old RDN value from the entry")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *cmdRename) Run(cmd *cobra.Command, args []string) error {
	newSuperior := ""
	if len(args) == 3 {
		newSuperior = args[2]
	}

	err := ldif.WriteRename(c.global.ctx, c.flagOutput, args[0], args[1], newSuperior, c.flagDeleteOldRDN)
	if err != nil {
		return err
	}

	c.global.wrote("rename", c.flagOutput)

	return nil
}
