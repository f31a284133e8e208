package main

import (
	"context"

	"github.com/spf13/cobra"
)

type getOpts struct {
	*rootOpts
	namespace string
	output    string
}

func newGet(root *rootOpts) *getOpts {
	return &getOpts{rootOpts: root}
}

func (opts *getOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <kind> <name>",
		Short: "fetch a single resource",
		RunE:  opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "",
		`namespace of the resource; "-" for no namespace scoping`)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "yaml",
		"output format: yaml or json")
	return cmd
}

func (opts *getOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return newUsageError("please supply a kind and a name")
	}
	ops, err := opts.API.Resource(args[0])
	if err != nil {
		return err
	}
	doc, err := ops.Get(context.Background(), args[1], opts.namespace)
	if err != nil {
		return err
	}
	return writeDocument(cmd.OutOrStdout(), doc, opts.output)
}
