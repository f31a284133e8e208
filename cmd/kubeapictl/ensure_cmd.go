package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type ensureOpts struct {
	*rootOpts
	file      string
	namespace string
}

func newEnsure(root *rootOpts) *ensureOpts {
	return &ensureOpts{rootOpts: root}
}

func (opts *ensureOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "create or converge resources from a manifest file",
		RunE:  opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "manifest file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "",
		`namespace to ensure in; "-" for no namespace scoping`)
	cmd.MarkFlagRequired("file")
	return cmd
}

func (opts *ensureOpts) RunE(cmd *cobra.Command, args []string) error {
	docs, err := readManifest(opts.file)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		ops, err := opts.API.Resource(kindOf(doc))
		if err != nil {
			return err
		}
		if _, err := ops.Ensure(context.Background(), doc, opts.namespace); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q ensured\n", kindOf(doc), doc.Name())
	}
	return nil
}
