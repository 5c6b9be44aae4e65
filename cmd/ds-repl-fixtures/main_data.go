package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GluuFederation/gluu-opendj/internal/ldif"
)

const (
	dataKindRootSuffix = "root-suffix"
	dataKindSingle     = "single"
	dataKindMultiple   = "multiple"
)

var dataWriters = map[string]func(ctx context.Context, path string, suffixDN string) error{
	dataKindRootSuffix: ldif.WriteRootSuffixEntry,
	dataKindSingle:     ldif.WriteSingleEntry,
	dataKindMultiple:   ldif.WriteMultipleEntries,
}

var dataShort = map[string]string{
	dataKindRootSuffix: "Generate the root entry of a suffix",
	dataKindSingle:     "Generate a single test entry under a suffix",
	dataKindMultiple:   "Generate a small test tree under a suffix",
}

type cmdData struct {
	global *cmdGlobal
	kind   string

	flagOutput string
}

func (c *cmdData) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = c.kind + " SUFFIX --output FILE"
	cmd.Short = dataShort[c.kind]
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = c.Run

	cmd.Flags().StringVarP(&c.flagOutput, "output", "o", "", "Output LDIF file"+"``")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *cmdData) Run(cmd *cobra.Command, args []string) error {
	write, ok := dataWriters[c.kind]
	if !ok {
		return fmt.Errorf("Unknown data kind %q", c.kind)
	}

	err := write(c.global.ctx, c.flagOutput, args[0])
	if err != nil {
		return err
	}

	c.global.wrote(c.kind, c.flagOutput)

	return nil
}
