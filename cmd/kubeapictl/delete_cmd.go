package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type deleteOpts struct {
	*rootOpts
	namespace string
}

func newDelete(root *rootOpts) *deleteOpts {
	return &deleteOpts{rootOpts: root}
}

func (opts *deleteOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <kind> <name>",
		Short: "delete a resource",
		RunE:  opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "",
		`namespace of the resource; "-" for no namespace scoping`)
	return cmd
}

func (opts *deleteOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return newUsageError("please supply a kind and a name")
	}
	ops, err := opts.API.Resource(args[0])
	if err != nil {
		return err
	}
	if _, err := ops.Delete(context.Background(), args[1], opts.namespace); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %q deleted\n", args[0], args[1])
	return nil
}
