package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/weaveworks/kubeapi"
)

func writeDocument(w io.Writer, doc kubeapi.Document, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	return newUsageError(fmt.Sprintf("unknown output format %q", format))
}

type usageError struct {
	s string
}

func (e usageError) Error() string {
	return e.s
}

func newUsageError(s string) error {
	return usageError{s}
}
