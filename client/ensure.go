package client

import (
	"context"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"

	"github.com/weaveworks/kubeapi"
)

// Ensure converges the server's copy of a resource towards the desired
// document: create it if absent, otherwise replace it, carrying over
// the server's resourceVersion (and a server-allocated clusterIP the
// caller didn't set) so the replace isn't rejected. Repeated calls
// with an unchanged document converge to a no-op replace.
//
// The exists/get/apply steps are not transactional; a concurrent
// delete in between can make the final apply fail with a 404-class
// outcome. Callers needing stronger guarantees retry around Ensure.
func (r *resourceOps) Ensure(ctx context.Context, data kubeapi.Document, namespace string) (kubeapi.Document, error) {
	if err := r.writable(); err != nil {
		return nil, err
	}
	name := data.Name()
	if name == "" {
		return nil, kubeapi.ConfigErrorf("a metadata.name is required to ensure a %s", r.descriptor.Kind)
	}

	exists, err := r.Exists(ctx, name, namespace)
	if err != nil {
		return nil, err
	}
	if !exists {
		return r.Create(ctx, data, namespace)
	}

	current, err := r.Get(ctx, name, namespace)
	if err != nil {
		return nil, err
	}
	merged, err := mergeForReplace(data, current)
	if err != nil {
		return nil, err
	}
	return r.Apply(ctx, merged, namespace)
}

// mergeForReplace overlays the desired document's metadata onto the
// server's resourceVersion, and carries a server-allocated clusterIP
// forward when the desired spec leaves it unset. The resourceVersion
// always comes from the server copy, whatever the desired document
// says; clusterIP is the one server-assigned field treated this way.
func mergeForReplace(desired, current kubeapi.Document) (kubeapi.Document, error) {
	merged, err := desired.Copy()
	if err != nil {
		return nil, err
	}

	metadata := map[string]interface{}{
		"resourceVersion": current.ResourceVersion(),
	}
	if m, ok := merged["metadata"].(map[string]interface{}); ok {
		// mergo fills in only the keys metadata doesn't already have,
		// so the desired fields win everywhere except resourceVersion.
		if err := mergo.Merge(&metadata, m); err != nil {
			return nil, errors.Wrap(err, "merging metadata")
		}
	}
	merged["metadata"] = metadata

	if ip, ok := current.GetPath("spec.clusterIP"); ok {
		if _, set := merged.GetPath("spec.clusterIP"); !set {
			if err := merged.SetPath("spec.clusterIP", ip); err != nil {
				return nil, err
			}
		}
	}
	return merged, nil
}

// Update fetches a resource, rewrites the value at a dotted key path
// with the supplied transform, and applies the result. Not safe
// against concurrent writers beyond the version carried by the
// replace.
func (r *resourceOps) Update(ctx context.Context, name, namespace, keyPath string, transform func(interface{}) interface{}) (kubeapi.Document, error) {
	if err := r.writable(); err != nil {
		return nil, err
	}
	current, err := r.Get(ctx, name, namespace)
	if err != nil {
		return nil, err
	}
	updated, err := current.Copy()
	if err != nil {
		return nil, err
	}
	value, _ := updated.GetPath(keyPath)
	if err := updated.SetPath(keyPath, transform(value)); err != nil {
		return nil, err
	}
	return r.Apply(ctx, updated, namespace)
}
