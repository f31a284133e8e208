package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type existsOpts struct {
	*rootOpts
	namespace string
}

func newExists(root *rootOpts) *existsOpts {
	return &existsOpts{rootOpts: root}
}

func (opts *existsOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists <kind> <name>",
		Short: "report whether a resource is present",
		RunE:  opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "",
		`namespace of the resource; "-" for no namespace scoping`)
	return cmd
}

func (opts *existsOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return newUsageError("please supply a kind and a name")
	}
	ops, err := opts.API.Resource(args[0])
	if err != nil {
		return err
	}
	present, err := ops.Exists(context.Background(), args[1], opts.namespace)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), present)
	return nil
}
