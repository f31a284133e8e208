package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type applyOpts struct {
	*rootOpts
	file      string
	namespace string
}

func newApply(root *rootOpts) *applyOpts {
	return &applyOpts{rootOpts: root}
}

func (opts *applyOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "replace resources with the documents in a manifest file",
		RunE:  opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "manifest file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "",
		`namespace to apply in; "-" for no namespace scoping`)
	cmd.MarkFlagRequired("file")
	return cmd
}

func (opts *applyOpts) RunE(cmd *cobra.Command, args []string) error {
	docs, err := readManifest(opts.file)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		ops, err := opts.API.Resource(kindOf(doc))
		if err != nil {
			return err
		}
		if _, err := ops.Apply(context.Background(), doc, opts.namespace); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q applied\n", kindOf(doc), doc.Name())
	}
	return nil
}
