package kubeapi

import (
	"encoding/json"

	"github.com/Jeffail/gabs"
	"github.com/pkg/errors"
)

// Document is a schema-less resource body, as sent to and returned by
// the API server. The client reads a handful of well-known fields and
// leaves everything else untouched.
type Document map[string]interface{}

func (d Document) container() *gabs.Container {
	c, _ := gabs.Consume(map[string]interface{}(d))
	return c
}

// GetPath looks up the value at a dotted path, e.g. "spec.clusterIP".
func (d Document) GetPath(path string) (interface{}, bool) {
	if d == nil {
		return nil, false
	}
	c := d.container()
	if !c.ExistsP(path) {
		return nil, false
	}
	return c.Path(path).Data(), true
}

// StringAt returns the string at a dotted path, or "" if the path is
// absent or not a string.
func (d Document) StringAt(path string) string {
	v, ok := d.GetPath(path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// SetPath sets the value at a dotted path, creating intermediate
// objects as needed.
func (d Document) SetPath(path string, value interface{}) error {
	if d == nil {
		return errors.New("cannot set a path on a nil document")
	}
	_, err := d.container().SetP(value, path)
	return errors.Wrapf(err, "setting %s", path)
}

func (d Document) Name() string            { return d.StringAt("metadata.name") }
func (d Document) Namespace() string       { return d.StringAt("metadata.namespace") }
func (d Document) ResourceVersion() string { return d.StringAt("metadata.resourceVersion") }

// Copy returns a deep copy via a JSON round trip, so that documents
// decoded from responses and documents built by hand copy the same
// way. The client copies on ingestion and never retains caller maps.
func (d Document) Copy() (Document, error) {
	if d == nil {
		return nil, nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "copying document")
	}
	var out Document
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, errors.Wrap(err, "copying document")
	}
	return out, nil
}
