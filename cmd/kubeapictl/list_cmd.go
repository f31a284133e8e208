package main

import (
	"context"

	"github.com/spf13/cobra"
)

type listOpts struct {
	*rootOpts
	namespace string
	output    string
}

func newList(root *rootOpts) *listOpts {
	return &listOpts{rootOpts: root}
}

func (opts *listOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "list a resource collection",
		RunE:  opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "",
		`namespace to list in; "-" for no namespace scoping`)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "yaml",
		"output format: yaml or json")
	return cmd
}

func (opts *listOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return newUsageError("please supply a kind")
	}
	ops, err := opts.API.Resource(args[0])
	if err != nil {
		return err
	}
	doc, err := ops.List(context.Background(), opts.namespace)
	if err != nil {
		return err
	}
	return writeDocument(cmd.OutOrStdout(), doc, opts.output)
}
