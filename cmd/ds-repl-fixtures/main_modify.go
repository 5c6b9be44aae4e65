package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GluuFederation/gluu-opendj/internal/ldif"
)

type cmdModify struct {
	global *cmdGlobal

	flagOutput string
}

func (c *cmdModify) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "modify DN MODTYPE ATTR [VALUE] --output FILE"
	cmd.Short = "Generate a modify change record"
	cmd.Long = `Description:
  Generate a modify change record

  MODTYPE is one of add, delete, replace or increment. Without VALUE the
  record carries no value line, which deletes every value of ATTR for a
  delete modification.
`
	cmd.Args = cobra.RangeArgs(3, 4)
	cmd.RunE = c.Run

	cmd.Flags().StringVarP(&c.flagOutput, "output", "o", "", "Output LDIF file"+"``")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *cmdModify) Run(cmd *cobra.Command, args []string) error {
	var value *string
	if len(args) == 4 {
		value = &args[3]
	}

	err := ldif.WriteModify(c.global.ctx, c.flagOutput, args[0], args[1], args[2], value)
	if err != nil {
		return err
	}

	c.global.log.WithFields(logrus.Fields{"dn": args[0], "attribute": args[2]}).Debug("Modify record generated")
	c.global.wrote("modify", c.flagOutput)

	return nil
}

type cmdModifyBinary struct {
	global *cmdGlobal

	flagOutput string
}

func (c *cmdModifyBinary) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "modify-binary DN MODTYPE ATTR VALUEFILE --output FILE"
	cmd.Short = "Generate a modify change record with a base64 value"
	cmd.Long = `Description:
  Generate a modify change record with a base64 value

  VALUEFILE holds the already base64-encoded value. Trailing line breaks
  are removed before it is written as an "ATTR:: VALUE" line.
`
	cmd.Args = cobra.ExactArgs(4)
	cmd.RunE = c.Run

	cmd.Flags().StringVarP(&c.flagOutput, "output", "o", "", "Output LDIF file"+"``")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *cmdModifyBinary) Run(cmd *cobra.Command, args []string) error {
	err := ldif.WriteModifyBinary(c.global.ctx, c.flagOutput, args[0], args[1], args[2], args[3])
	if err != nil {
		return err
	}

	c.global.wrote("modify-binary", c.flagOutput)

	return nil
}
