package main

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"strings"

	jsonyaml "github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/weaveworks/kubeapi"
)

// readManifest reads a (possibly multi-document) YAML manifest file
// into resource documents. Each document is round-tripped through
// YAML→JSON so that what goes on the wire is exactly what a JSON
// manifest would have said.
func readManifest(path string) ([]kubeapi.Document, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var docs []kubeapi.Document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	for {
		var raw interface{}
		err := dec.Decode(&raw)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		if raw == nil {
			continue
		}
		chunk, err := yaml.Marshal(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "re-encoding %s", path)
		}
		jsonBytes, err := jsonyaml.YAMLToJSON(chunk)
		if err != nil {
			return nil, errors.Wrapf(err, "converting %s to JSON", path)
		}
		var doc kubeapi.Document
		if err := json.Unmarshal(jsonBytes, &doc); err != nil {
			return nil, errors.Wrapf(err, "decoding %s", path)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// kindOf maps a document's kind onto the descriptor table's naming,
// e.g. "Service" → "service".
func kindOf(doc kubeapi.Document) string {
	return strings.ToLower(doc.StringAt("kind"))
}
